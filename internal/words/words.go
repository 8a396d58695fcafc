// internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Load answer and allowed guess lists from a dictionary directory or fall
//     back to the embedded defaults.
//   - Maintain a set for quick lookups (answers ∪ allowed).
//   - Supply RandomWord, IsValidWord and SetLanguageAndWordLength for the engine.
//
// Word Lists (per language and length N):
//   - "<LANG>_DICTIONARY_<N>L.txt": answers, the pool targets are drawn from.
//   - "<LANG>_ALLOWED_<N>L.txt":    optional extra guesses (answers are always allowed).
//
// Constraints:
//   • Words must have exactly N letters, all from the language's alphabet.
//   • Lists are normalized to lower case; blank lines and # comments are skipped.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/robalobadob/wordle/apps/go-tui/assets"
	"github.com/robalobadob/wordle/apps/go-tui/internal/alphabet"
)

// ErrNoWords is returned when a word list yields no usable answers.
var ErrNoWords = errors.New("words: answers list is empty")

// ListDictionary keeps the word lists of one language/length in memory.
type ListDictionary struct {
	dir     string
	lang    alphabet.Language
	length  int
	answers []string
	allowed map[string]struct{}
}

// New loads the lists for lang/length. An empty dir selects the embedded lists.
func New(dir string, lang alphabet.Language, length int) (*ListDictionary, error) {
	d := &ListDictionary{dir: dir}
	if err := d.SetLanguageAndWordLength(lang, length); err != nil {
		return nil, err
	}
	return d, nil
}

// SetLanguageAndWordLength reloads the lists. On error the previous lists stay
// active.
func (d *ListDictionary) SetLanguageAndWordLength(lang alphabet.Language, length int) error {
	answers, allowed, err := Load(d.dir, lang, length)
	if err != nil {
		return err
	}
	d.lang, d.length = lang, length
	d.answers = answers
	d.allowed = toSet(answers)
	for _, w := range allowed {
		d.allowed[w] = struct{}{}
	}
	log.Debug().Str("language", lang.Name()).Int("length", length).
		Int("answers", len(d.answers)).Int("allowed", len(d.allowed)).Msg("word lists loaded")
	return nil
}

// RandomWord returns a uniformly chosen answer.
func (d *ListDictionary) RandomWord() (string, error) {
	if len(d.answers) == 0 {
		return "", ErrNoWords
	}
	return d.answers[frand.Intn(len(d.answers))], nil
}

// IsValidWord reports whether w is an answer or an allowed guess.
func (d *ListDictionary) IsValidWord(w string) bool {
	_, ok := d.allowed[alphabet.Lower(d.lang, w)]
	return ok
}

// Words returns a copy of the answers list.
func (d *ListDictionary) Words() ([]string, error) {
	return append([]string(nil), d.answers...), nil
}

// Stats returns counts of loaded words: (answers, allowed).
func (d *ListDictionary) Stats() (answersCount int, allowedCount int) {
	return len(d.answers), len(d.allowed)
}

// Language returns the active language.
func (d *ListDictionary) Language() alphabet.Language { return d.lang }

// WordLength returns the active word length.
func (d *ListDictionary) WordLength() int { return d.length }

// Load reads the answers and the optional allowed list for lang/length, from
// dir when set and from the embedded assets otherwise. A missing answers file
// is an error; a missing allowed file is not.
func Load(dir string, lang alphabet.Language, length int) (answers, allowed []string, err error) {
	if length <= 0 {
		return nil, nil, fmt.Errorf("words: invalid word length %d", length)
	}
	ansName := assets.DictionaryFile(lang.Name(), length)
	allowName := assets.AllowedFile(lang.Name(), length)

	var rawAns, rawAllow []string
	if dir == "" {
		if rawAns, err = assets.ReadLines(ansName); err != nil {
			return nil, nil, fmt.Errorf("words: no embedded list %s: %w", ansName, err)
		}
		if assets.Has(allowName) {
			if rawAllow, err = assets.ReadLines(allowName); err != nil {
				return nil, nil, fmt.Errorf("words: read %s: %w", allowName, err)
			}
		}
	} else {
		if rawAns, err = readWordFile(filepath.Join(dir, ansName)); err != nil {
			return nil, nil, fmt.Errorf("words: open dictionary: %w", err)
		}
		rawAllow, err = readWordFile(filepath.Join(dir, allowName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("words: open allowed list: %w", err)
		}
	}

	answers = normalize(rawAns, lang, length)
	if len(answers) == 0 {
		return nil, nil, fmt.Errorf("%w (%s, %d letters)", ErrNoWords, lang.Name(), length)
	}
	return answers, normalize(rawAllow, lang, length), nil
}

// readWordFile loads the non-empty, non-comment lines of a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// normalize lower-cases the lines and keeps only words of exactly length
// letters of lang's alphabet, dropping duplicates.
func normalize(lines []string, lang alphabet.Language, length int) []string {
	seen := make(map[string]struct{}, len(lines))
	var out []string
	for _, line := range lines {
		w := alphabet.Lower(lang, strings.TrimSpace(line))
		letters := alphabet.Split(w)
		if len(letters) != length || !allInAlphabet(lang, letters) {
			continue
		}
		w = alphabet.Join(letters)
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func allInAlphabet(lang alphabet.Language, letters []alphabet.Letter) bool {
	for _, l := range letters {
		if !alphabet.Contains(lang, l) {
			return false
		}
	}
	return true
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}
