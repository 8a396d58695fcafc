package game

import (
	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/go-tui/internal/alphabet"
)

// Score implements the standard two-pass Wordle scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as CorrectPlace and consume them from the multiset
//     of target letters.
//
// Pass 2:
//   - For each remaining guess letter: if the multiset still holds that
//     letter, mark PresentWrongPlace and consume one; otherwise NotInWord.
//
// A letter is therefore never credited more often than it occurs in the
// target. The result always has one entry per target position; positions
// beyond a shorter guess are reported as empty NotInWord entries.
func Score(guess, target Word) GuessResult {
	n := len(target)
	res := make(GuessResult, n)
	remaining := lo.CountValues(target)
	scored := make([]bool, n)

	for i := 0; i < n && i < len(guess); i++ {
		res[i].Letter = guess[i]
		if guess[i] == target[i] {
			res[i].Status = CorrectPlace
			remaining[guess[i]]--
			scored[i] = true
		}
	}

	for i := 0; i < n; i++ {
		if scored[i] {
			continue
		}
		if i >= len(guess) {
			res[i].Status = NotInWord
			continue
		}
		l := guess[i]
		if remaining[l] > 0 {
			res[i].Status = PresentWrongPlace
			remaining[l]--
		} else {
			res[i].Status = NotInWord
		}
	}
	return res
}

// applyKeyboard upgrades the cumulative keyboard status with every position of
// a scored guess. It runs after scoring is complete so repeated letters are
// judged by their best position.
func applyKeyboard(kb map[alphabet.Letter]LetterStatus, res GuessResult) {
	for _, r := range res {
		if _, ok := kb[r.Letter]; !ok {
			continue
		}
		kb[r.Letter] = Upgrade(kb[r.Letter], r.Status)
	}
}

// allCorrect reports whether every position is a hit.
func allCorrect(res GuessResult) bool {
	return len(res) > 0 && lo.EveryBy(res, func(r LetterResult) bool { return r.Status == CorrectPlace })
}
