package alphabet

import (
	"strings"

	"github.com/rivo/uniseg"
	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

// Letter is a single user-perceived character, possibly several bytes long.
type Letter string

// Split decomposes text into letters: NFC normalization followed by grapheme
// cluster segmentation. It is the only decomposition routine in the module.
func Split(text string) []Letter {
	if text == "" {
		return []Letter{}
	}
	out := make([]Letter, 0, len(text))
	g := uniseg.NewGraphemes(norm.NFC.String(text))
	for g.Next() {
		out = append(out, Letter(g.Str()))
	}
	return out
}

// Join concatenates letters back into a string.
func Join(letters []Letter) string {
	var sb strings.Builder
	for _, l := range letters {
		sb.WriteString(string(l))
	}
	return sb.String()
}

// Count returns the number of letters in text.
func Count(text string) int {
	return len(Split(text))
}

// KeyboardRows splits letters into at most rows rows of ceil(n/rows) letters,
// the last row taking the remainder.
func KeyboardRows(letters []Letter, rows int) [][]Letter {
	if len(letters) == 0 || rows <= 0 {
		return [][]Letter{}
	}
	perRow := (len(letters) + rows - 1) / rows
	return lo.Chunk(letters, perRow)
}
