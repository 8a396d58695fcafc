// internal/game/engine.go
//
// Core game engine for a single-player Wordle session.
// Responsibilities:
//   - Start rounds with a target drawn from the injected Dictionary.
//   - Hold the in-progress input as a sequence of letters.
//   - Validate a finished guess (length, alphabet, dictionary), in that order.
//   - Score guesses with the two-pass algorithm and keep the cumulative
//     keyboard status.
//   - Track state transitions: in progress → finished (won/lost) → new round.
//
// Notes:
//   - The engine is the only writer of its State; the front end reads copies.
//   - Validation failures are reported as bool + State.LastError, never as
//     errors, so the per-keystroke path stays error free.
//   - The engine is not safe for concurrent use.

package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/go-tui/internal/alphabet"
)

const DefaultMaxAttempts = 6

var (
	// ErrGameFinished is returned by CheckInputWord once the round is over.
	ErrGameFinished = errors.New("game finished")
	// ErrInvalidInput is returned by CheckInputWord for input that does not
	// pass IsValidInput.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyWord is returned when the dictionary hands out an empty target.
	ErrEmptyWord = errors.New("dictionary returned an empty word")
)

// Dictionary is the word source the engine needs.
type Dictionary interface {
	// RandomWord returns a word of the configured language and length.
	RandomWord() (string, error)
	// IsValidWord reports whether candidate is an entry of the word list.
	IsValidWord(candidate string) bool
}

// Engine owns one GameState and enforces the rules on it.
type Engine struct {
	lang        alphabet.Language
	dict        Dictionary
	maxAttempts int
	letters     []alphabet.Letter
	inAlphabet  map[alphabet.Letter]struct{}
	msgs        messages
	st          State
}

// NewEngine constructs an engine and starts its first round.
// A non-positive maxAttempts falls back to DefaultMaxAttempts.
func NewEngine(lang alphabet.Language, dict Dictionary, maxAttempts int) (*Engine, error) {
	if dict == nil {
		return nil, errors.New("game: nil dictionary")
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	letters := alphabet.Alphabet(lang)
	e := &Engine{
		lang:        lang,
		dict:        dict,
		maxAttempts: maxAttempts,
		letters:     letters,
		inAlphabet:  lo.SliceToMap(letters, func(l alphabet.Letter) (alphabet.Letter, struct{}) { return l, struct{}{} }),
		msgs:        messagesFor(lang),
	}
	if err := e.StartNewGame(); err != nil {
		return nil, err
	}
	return e, nil
}

// StartNewGame replaces the round with a fresh one: a new target word, empty
// input and history, every keyboard letter back to NotUsed.
func (e *Engine) StartNewGame() error {
	raw, err := e.dict.RandomWord()
	if err != nil {
		return fmt.Errorf("game: draw target word: %w", err)
	}
	target := NewWord(alphabet.Lower(e.lang, raw))
	if target.Len() == 0 {
		return ErrEmptyWord
	}

	kb := make(map[alphabet.Letter]LetterStatus, len(e.letters))
	for _, l := range e.letters {
		kb[l] = NotUsed
	}
	e.st = State{
		RoundID:        uuid.NewString(),
		Language:       e.lang,
		TargetWord:     target,
		MaxAttempts:    e.maxAttempts,
		Alphabet:       e.letters,
		CurrentInput:   Word{},
		GuessHistory:   []Word{},
		GuessResults:   []GuessResult{},
		KeyboardStatus: kb,
	}
	log.Debug().Str("round", e.st.RoundID).Str("language", e.lang.Name()).
		Int("length", target.Len()).Msg("round started")
	return nil
}

// ModifyCurrentInput replaces the in-progress guess with the letters of text.
// Input longer than the target is truncated to the target length, so the
// input never outgrows the grid row; no other validation happens here.
func (e *Engine) ModifyCurrentInput(text string) {
	in := NewWord(text)
	if n := e.st.TargetWord.Len(); in.Len() > n {
		in = in[:n]
	}
	e.st.CurrentInput = in
}

// IsValidInput reports whether the current input may be submitted. On
// failure LastError holds the message of the first failing check.
func (e *Engine) IsValidInput() bool {
	msg := e.validate(e.st.CurrentInput)
	e.st.LastError = msg
	return msg == ""
}

// validate returns the message of the first failing check, or "".
func (e *Engine) validate(in Word) string {
	if in.Len() != e.st.TargetWord.Len() {
		return fmt.Sprintf(e.msgs.lengthMismatch, e.st.TargetWord.Len())
	}
	for _, l := range in {
		if _, ok := e.inAlphabet[l]; !ok {
			return e.msgs.invalidLetter
		}
	}
	if !e.dict.IsValidWord(in.String()) {
		return e.msgs.notInDictionary
	}
	return ""
}

// CheckInputWord commits the current input as a guess, scores it and updates
// the keyboard and termination state. The input itself is left in place; the
// caller clears it with ModifyCurrentInput("").
//
// Calling it on a finished round or with input that fails validation leaves
// the state untouched and returns ErrGameFinished / ErrInvalidInput.
func (e *Engine) CheckInputWord() error {
	if e.st.IsFinished {
		return ErrGameFinished
	}
	if msg := e.validate(e.st.CurrentInput); msg != "" {
		return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
	}

	guess := Word(append([]alphabet.Letter(nil), e.st.CurrentInput...))
	res := Score(guess, e.st.TargetWord)

	e.st.GuessHistory = append(e.st.GuessHistory, guess)
	e.st.GuessResults = append(e.st.GuessResults, res)
	applyKeyboard(e.st.KeyboardStatus, res)

	if e.IsGameOver() {
		e.st.IsFinished = true
		if e.IsUserWin() {
			e.st.FinalMessage = e.msgs.win
		} else {
			e.st.FinalMessage = LossMessage(e.lang, e.st.TargetWord)
		}
		log.Info().Str("round", e.st.RoundID).Bool("won", e.IsUserWin()).
			Int("guesses", len(e.st.GuessHistory)).Msg("round finished")
	}
	return nil
}

// IsGameOver reports whether attempts are exhausted or the target was guessed.
func (e *Engine) IsGameOver() bool {
	return len(e.st.GuessHistory) == e.maxAttempts || e.IsUserWin()
}

// IsUserWin reports whether the most recent guess scored all hits.
func (e *Engine) IsUserWin() bool {
	n := len(e.st.GuessResults)
	return n > 0 && allCorrect(e.st.GuessResults[n-1])
}

// State returns a snapshot of the current round.
func (e *Engine) State() State { return e.st.clone() }

// Language returns the engine's language.
func (e *Engine) Language() alphabet.Language { return e.lang }

// MaxAttempts returns the configured number of guesses per round.
func (e *Engine) MaxAttempts() int { return e.maxAttempts }
