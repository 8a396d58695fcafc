// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - LetterStatus: ordered per-letter verdict (unused < absent < present < hit).
//   - Word / GuessResult: letter sequences and their scored form.
//   - State: read-only snapshot of a round handed to the front end.

package game

import (
	"maps"
	"slices"

	"github.com/robalobadob/wordle/apps/go-tui/internal/alphabet"
)

// LetterStatus is the verdict for one letter. The order is significant: the
// on-screen keyboard only ever moves a letter to a higher status.
type LetterStatus int

const (
	NotUsed           LetterStatus = iota // never guessed this round
	NotInWord                             // absent from the target
	PresentWrongPlace                     // in the target, elsewhere
	CorrectPlace                          // in the target at this position
)

func (s LetterStatus) String() string {
	switch s {
	case NotUsed:
		return "not_used"
	case NotInWord:
		return "not_in_word"
	case PresentWrongPlace:
		return "present"
	case CorrectPlace:
		return "correct"
	}
	return "unknown"
}

// Upgrade returns the better of two statuses.
func Upgrade(current, next LetterStatus) LetterStatus {
	return max(current, next)
}

// Word is an ordered sequence of letters. Its length is a letter count.
type Word []alphabet.Letter

// NewWord decomposes text into a Word.
func NewWord(text string) Word { return Word(alphabet.Split(text)) }

func (w Word) Len() int { return len(w) }

func (w Word) String() string { return alphabet.Join(w) }

// Equal reports letter-by-letter equality.
func (w Word) Equal(o Word) bool { return slices.Equal(w, o) }

// LetterResult is the verdict for a single guessed position.
type LetterResult struct {
	Letter alphabet.Letter
	Status LetterStatus
}

// GuessResult holds one LetterResult per position of a guess.
type GuessResult []LetterResult

// Statuses returns just the statuses, position by position.
func (g GuessResult) Statuses() []LetterStatus {
	out := make([]LetterStatus, len(g))
	for i, r := range g {
		out[i] = r.Status
	}
	return out
}

// State is a snapshot of one round. Engine.State returns a deep copy, so the
// front end may keep or modify it without affecting the game.
type State struct {
	RoundID        string                           // uuid of the round, for logs
	Language       alphabet.Language                // active alphabet / messages
	TargetWord     Word                             // hidden word
	MaxAttempts    int                              // guesses allowed per round
	Alphabet       []alphabet.Letter                // keyboard-ordered alphabet
	CurrentInput   Word                             // in-progress guess
	GuessHistory   []Word                           // committed guesses
	GuessResults   []GuessResult                    // parallel to GuessHistory
	KeyboardStatus map[alphabet.Letter]LetterStatus // best verdict per letter
	IsFinished     bool                             // won or out of attempts
	FinalMessage   string                           // win/loss text once finished
	LastError      string                           // last validation failure
}

// AttemptsLeft is the number of guesses still available.
func (s State) AttemptsLeft() int { return s.MaxAttempts - len(s.GuessHistory) }

// clone deep-copies the state.
func (s State) clone() State {
	out := s
	out.TargetWord = slices.Clone(s.TargetWord)
	out.Alphabet = slices.Clone(s.Alphabet)
	out.CurrentInput = slices.Clone(s.CurrentInput)
	out.GuessHistory = make([]Word, len(s.GuessHistory))
	for i, w := range s.GuessHistory {
		out.GuessHistory[i] = slices.Clone(w)
	}
	out.GuessResults = make([]GuessResult, len(s.GuessResults))
	for i, r := range s.GuessResults {
		out.GuessResults[i] = slices.Clone(r)
	}
	out.KeyboardStatus = maps.Clone(s.KeyboardStatus)
	return out
}
