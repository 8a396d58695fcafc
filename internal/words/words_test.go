package words

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/robalobadob/wordle/apps/go-tui/internal/alphabet"
)

func writeList(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestEmbeddedDefaults(t *testing.T) {
	is := is.New(t)
	d, err := New("", alphabet.English, 5)
	is.NoErr(err)

	a, g := d.Stats()
	is.True(a > 0)
	is.Equal(a, g)
	is.True(d.IsValidWord("crane"))
	is.True(d.IsValidWord("CRANE"))
	is.True(!d.IsValidWord("xxxxx"))

	for i := 0; i < 20; i++ {
		w, err := d.RandomWord()
		is.NoErr(err)
		is.Equal(alphabet.Count(w), 5)
		is.True(d.IsValidWord(w))
	}
}

func TestEmbeddedRussian(t *testing.T) {
	is := is.New(t)
	d, err := New("", alphabet.Russian, 5)
	is.NoErr(err)
	is.True(d.IsValidWord("слово"))
	is.True(d.IsValidWord("СЛОВО"))
	w, err := d.RandomWord()
	is.NoErr(err)
	is.Equal(alphabet.Count(w), 5)
}

func TestLoadFromDirectory(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	writeList(t, dir, "ENGLISH_DICTIONARY_4L.txt", "# comment\nWORD\nfour\n\nfive5\ntoolong\nfour\nw@rd\n")
	writeList(t, dir, "ENGLISH_ALLOWED_4L.txt", "abcd\nxyz\n")

	d, err := New(dir, alphabet.English, 4)
	is.NoErr(err)
	ws, err := d.Words()
	is.NoErr(err)
	is.Equal(ws, []string{"word", "four"})
	is.True(d.IsValidWord("abcd"))
	is.True(!d.IsValidWord("xyz"))
	is.True(!d.IsValidWord("toolong"))

	a, g := d.Stats()
	is.Equal(a, 2)
	is.Equal(g, 3)
}

func TestAllowedListIsOptional(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	writeList(t, dir, "RUSSIAN_DICTIONARY_3L.txt", "кот\nёж\nдом\n")

	d, err := New(dir, alphabet.Russian, 3)
	is.NoErr(err)
	ws, err := d.Words()
	is.NoErr(err)
	is.Equal(ws, []string{"кот", "дом"})
}

func TestMissingDictionaryIsFatal(t *testing.T) {
	is := is.New(t)
	_, err := New(t.TempDir(), alphabet.English, 5)
	is.True(errors.Is(err, os.ErrNotExist))

	_, err = New("", alphabet.English, 9)
	is.True(err != nil)

	_, err = New("", alphabet.English, 0)
	is.True(err != nil)
}

func TestEmptyListIsAnError(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	writeList(t, dir, "ENGLISH_DICTIONARY_5L.txt", "# nothing here\nabc\n")
	_, err := New(dir, alphabet.English, 5)
	is.True(errors.Is(err, ErrNoWords))
}

func TestSetLanguageAndWordLength(t *testing.T) {
	is := is.New(t)
	d, err := New("", alphabet.English, 5)
	is.NoErr(err)

	is.NoErr(d.SetLanguageAndWordLength(alphabet.Russian, 5))
	is.Equal(d.Language(), alphabet.Russian)
	is.True(d.IsValidWord("слово"))
	is.True(!d.IsValidWord("crane"))

	// a failed switch keeps the previous lists
	is.True(d.SetLanguageAndWordLength(alphabet.English, 8) != nil)
	is.Equal(d.Language(), alphabet.Russian)
	is.Equal(d.WordLength(), 5)
	is.True(d.IsValidWord("слово"))
}
