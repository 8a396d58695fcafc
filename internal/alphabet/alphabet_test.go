package alphabet

import (
	"testing"

	"github.com/matryer/is"
)

func TestSplit(t *testing.T) {
	is := is.New(t)

	is.Equal(Split("crane"), []Letter{"c", "r", "a", "n", "e"})
	is.Equal(len(Split("ёжики")), 5)
	is.Equal(Split(""), []Letter{})

	// e + combining acute is normalized to a single letter.
	is.Equal(Split("cafe\u0301"), []Letter{"c", "a", "f", "\u00e9"})
	// a decomposed й stays one letter.
	is.Equal(Split("\u0438\u0306ог"), []Letter{"й", "о", "г"})
}

func TestJoinInvertsSplit(t *testing.T) {
	is := is.New(t)
	for _, w := range []string{"speed", "слово", "ёлка", ""} {
		is.Equal(Join(Split(w)), w)
	}
}

func TestCount(t *testing.T) {
	is := is.New(t)
	is.Equal(Count("слово"), 5)
	is.Equal(len("слово"), 10)
}

func TestParse(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		in   string
		want Language
	}{
		{"en", English},
		{"EN", English},
		{"english", English},
		{"en-GB", English},
		{"ru", Russian},
		{"Russian", Russian},
		{"ru-RU", Russian},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		is.NoErr(err)
		is.Equal(got, c.want)
	}

	_, err := Parse("klingon!")
	is.True(err != nil)
}

func TestAlphabet(t *testing.T) {
	is := is.New(t)
	is.Equal(len(Alphabet(English)), 26)
	is.Equal(len(Alphabet(Russian)), 33)
	is.True(Contains(Russian, "ё"))
	is.True(!Contains(English, "ё"))
	is.True(!Contains(English, "A"))
	is.True(!Contains(English, ""))
}

func TestCaseMapping(t *testing.T) {
	is := is.New(t)
	is.Equal(Upper(Russian, "ёлка"), "ЁЛКА")
	is.Equal(Lower(English, "CRANE"), "crane")
}

func TestKeyboardRows(t *testing.T) {
	is := is.New(t)

	rows := KeyboardRows(Alphabet(English), 3)
	is.Equal(len(rows), 3)
	is.Equal(Join(rows[0]), "qwertyuio")
	is.Equal(Join(rows[2]), "lzxcvbnm")

	rows = KeyboardRows(Alphabet(Russian), 3)
	is.Equal(len(rows), 3)
	for _, r := range rows {
		is.Equal(len(r), 11)
	}

	is.Equal(len(KeyboardRows(nil, 3)), 0)
}

func TestNext(t *testing.T) {
	is := is.New(t)
	is.Equal(English.Next(), Russian)
	is.Equal(Russian.Next(), English)
}
