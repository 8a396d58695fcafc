// Package assets embeds the default word lists so the game runs without a
// dictionary directory.
package assets

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed dictionaries/*.txt
var FS embed.FS

// DictionaryFile is the file name of the answer list for a language name
// (e.g. "ENGLISH") and word length.
func DictionaryFile(langName string, length int) string {
	return fmt.Sprintf("%s_DICTIONARY_%dL.txt", langName, length)
}

// AllowedFile is the file name of the optional extra-guesses list.
func AllowedFile(langName string, length int) string {
	return fmt.Sprintf("%s_ALLOWED_%dL.txt", langName, length)
}

// ReadLines returns the non-empty, non-comment lines of an embedded list.
func ReadLines(name string) ([]string, error) {
	f, err := FS.Open("dictionaries/" + name)
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

// Has reports whether an embedded list exists.
func Has(name string) bool {
	_, err := fs.Stat(FS, "dictionaries/"+name)
	return err == nil
}
