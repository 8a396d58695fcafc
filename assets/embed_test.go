package assets

import (
	"testing"

	"github.com/matryer/is"
)

func TestEmbeddedDictionaries(t *testing.T) {
	is := is.New(t)
	for _, lang := range []string{"ENGLISH", "RUSSIAN"} {
		name := DictionaryFile(lang, 5)
		is.True(Has(name))
		lines, err := ReadLines(name)
		is.NoErr(err)
		is.True(len(lines) > 0)
		for _, l := range lines {
			is.True(l[0] != '#')
		}
	}
	is.True(!Has(DictionaryFile("ENGLISH", 7)))
	_, err := ReadLines(DictionaryFile("ENGLISH", 7))
	is.True(err != nil)
}
