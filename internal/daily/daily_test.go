package daily

import (
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/robalobadob/wordle/apps/go-tui/internal/alphabet"
)

type listSource struct {
	words []string
	lang  alphabet.Language
}

func (s *listSource) RandomWord() (string, error) { return s.words[0], nil }
func (s *listSource) IsValidWord(w string) bool {
	for _, x := range s.words {
		if x == w {
			return true
		}
	}
	return false
}
func (s *listSource) SetLanguageAndWordLength(lang alphabet.Language, _ int) error {
	s.lang = lang
	return nil
}
func (s *listSource) Words() ([]string, error) { return s.words, nil }

func TestDateKeyIsUTC(t *testing.T) {
	is := is.New(t)
	loc := time.FixedZone("UTC+10", 10*3600)
	is.Equal(DateKey(time.Date(2026, 3, 2, 5, 0, 0, 0, loc)), "2026-03-01")
}

func TestWordIndexIsDeterministic(t *testing.T) {
	is := is.New(t)
	day := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	later := time.Date(2026, 10, 19, 23, 59, 0, 0, time.UTC)

	i := WordIndex(day, "salt", 1000)
	is.True(i >= 0 && i < 1000)
	is.Equal(WordIndex(later, "salt", 1000), i)
	is.Equal(WordIndex(day, "salt", 0), 0)

	// a long salt is hashed into the key rather than rejected
	long := string(make([]byte, 200))
	j := WordIndex(day, long, 7)
	is.True(j >= 0 && j < 7)
}

func TestWordIndexVariesAcrossDaysAndSalts(t *testing.T) {
	is := is.New(t)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for d := 0; d < 30; d++ {
		seen[WordIndex(start.AddDate(0, 0, d), "salt", 1000)] = true
	}
	is.True(len(seen) > 1)

	differs := false
	for d := 0; d < 30 && !differs; d++ {
		day := start.AddDate(0, 0, d)
		differs = WordIndex(day, "a", 1000) != WordIndex(day, "b", 1000)
	}
	is.True(differs)
}

func TestDictionaryServesWordOfTheDay(t *testing.T) {
	is := is.New(t)
	src := &listSource{words: []string{"crane", "speed", "slate", "pious"}}
	day := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	d := New(src, "salt", func() time.Time { return day })

	w1, err := d.RandomWord()
	is.NoErr(err)
	w2, err := d.RandomWord()
	is.NoErr(err)
	is.Equal(w1, w2)
	is.Equal(w1, src.words[WordIndex(day, "salt", 4)])
	is.Equal(d.Today(), "2026-10-19")

	is.True(d.IsValidWord("slate"))
	is.NoErr(d.SetLanguageAndWordLength(alphabet.Russian, 5))
	is.Equal(src.lang, alphabet.Russian)
}

func TestDictionaryEmptySource(t *testing.T) {
	is := is.New(t)
	d := New(&listSource{}, "salt", nil)
	_, err := d.RandomWord()
	is.True(errors.Is(err, ErrNoWords))
}
