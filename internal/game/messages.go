package game

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/go-tui/internal/alphabet"
)

// messages holds the player-facing texts for one language.
type messages struct {
	lengthMismatch  string // %d = target length
	invalidLetter   string
	notInDictionary string
	win             string
	loss            string // %s = target word
}

var catalog = map[alphabet.Language]messages{
	alphabet.English: {
		lengthMismatch:  "Word must be %d letters long.",
		invalidLetter:   "Word contains characters outside the alphabet.",
		notInDictionary: "Word is not in the dictionary.",
		win:             "You guessed it!",
		loss:            "Out of attempts! The word was: %s",
	},
	alphabet.Russian: {
		lengthMismatch:  "Длина слова должна быть %d букв.",
		invalidLetter:   "Содержатся символы, не входящие в алфавит.",
		notInDictionary: "Такого слова нет в словаре.",
		win:             "Победа! Слово отгадано!",
		loss:            "Попытки закончились! Загаданное слово: %s",
	},
}

func messagesFor(lang alphabet.Language) messages {
	if m, ok := catalog[lang]; ok {
		return m
	}
	return catalog[alphabet.English]
}

// WinMessage is the final message shown after a won round.
func WinMessage(lang alphabet.Language) string { return messagesFor(lang).win }

// LossMessage is the final message shown after a lost round.
func LossMessage(lang alphabet.Language, target Word) string {
	return fmt.Sprintf(messagesFor(lang).loss, target.String())
}
