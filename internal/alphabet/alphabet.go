// internal/alphabet/alphabet.go
//
// Language catalog and letter handling shared by the engine, the dictionaries
// and the terminal front end.
//
// A Letter is one user-perceived character. Russian letters are two bytes in
// UTF-8 and a letter with a combining mark is several runes, so nothing in this
// module indexes words by byte or rune: every piece of text is decomposed once
// with Split and handled as []Letter from then on.

package alphabet

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Language identifies one of the supported alphabets / word lists.
type Language int

const (
	English Language = iota
	Russian
)

// ErrUnknownLanguage is returned by Parse for unsupported input.
var ErrUnknownLanguage = errors.New("alphabet: unknown language")

// Keyboard-ordered alphabets.
var alphabets = map[Language]string{
	English: "qwertyuiopasdfghjklzxcvbnm",
	Russian: "йцукеёнгшщзхъфывапролджэячсмитьбю",
}

var names = map[Language]string{
	English: "ENGLISH",
	Russian: "RUSSIAN",
}

var displayNames = map[Language]string{
	English: "English",
	Russian: "Русский",
}

var tags = map[Language]language.Tag{
	English: language.English,
	Russian: language.Russian,
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Russian})

// Languages lists every supported language in switch order.
func Languages() []Language { return []Language{English, Russian} }

// Name returns the upper-case identifier used in dictionary file names.
func (l Language) Name() string {
	if n, ok := names[l]; ok {
		return n
	}
	return fmt.Sprintf("LANGUAGE(%d)", int(l))
}

func (l Language) String() string { return l.Name() }

// DisplayName is the label shown to the player.
func (l Language) DisplayName() string { return displayNames[l] }

// Tag returns the BCP 47 tag used for case mapping.
func (l Language) Tag() language.Tag {
	if t, ok := tags[l]; ok {
		return t
	}
	return language.Und
}

// Next cycles to the following supported language.
func (l Language) Next() Language {
	all := Languages()
	for i, x := range all {
		if x == l {
			return all[(i+1)%len(all)]
		}
	}
	return English
}

// Parse accepts "en", "english", "ru", "russian" (any case) or a BCP 47 tag
// such as "en-GB" / "ru-RU".
func Parse(s string) (Language, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "english":
		return English, nil
	case "russian":
		return Russian, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return English, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	return Languages()[idx], nil
}

// Alphabet returns the letters of lang in keyboard order.
func Alphabet(lang Language) []Letter {
	return Split(alphabets[lang])
}

var letterSets = func() map[Language]map[Letter]struct{} {
	out := make(map[Language]map[Letter]struct{}, len(alphabets))
	for lang, s := range alphabets {
		set := make(map[Letter]struct{})
		for _, l := range Split(s) {
			set[l] = struct{}{}
		}
		out[lang] = set
	}
	return out
}()

// Contains reports whether l belongs to the alphabet of lang.
func Contains(lang Language, l Letter) bool {
	_, ok := letterSets[lang][l]
	return ok
}

// Lower maps s to lower case using the rules of lang.
func Lower(lang Language, s string) string {
	return cases.Lower(lang.Tag()).String(s)
}

// Upper maps s to upper case using the rules of lang.
func Upper(lang Language, s string) string {
	return cases.Upper(lang.Tag()).String(s)
}
