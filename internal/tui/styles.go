package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordle/apps/go-tui/internal/alphabet"
	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
)

var (
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleInput   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleOverlay = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
)

// statusStyle colours a tile or key by its verdict.
func statusStyle(s game.LetterStatus) tcell.Style {
	switch s {
	case game.CorrectPlace:
		return tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorWhite).Bold(true)
	case game.PresentWrongPlace:
		return tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack).Bold(true)
	case game.NotInWord:
		return tcell.StyleDefault.Background(tcell.ColorDimGray).Foreground(tcell.ColorWhite)
	}
	return tcell.StyleDefault.Background(tcell.ColorLightGray).Foreground(tcell.ColorBlack)
}

// uiText holds the front end's own strings for one language.
type uiText struct {
	title      string
	titleLine  string // title, language, attempts left
	help       string
	restart    string
	tooSmall   string
	statsLine  string // played, win %, streak, max streak
	switchFail string
}

var texts = map[alphabet.Language]uiText{
	alphabet.English: {
		title:      "WORDLE",
		titleLine:  "%s · %s · %d left",
		help:       "ENTER submit · BACKSPACE erase · F2 language · F3 debug · ESC quit",
		restart:    "Press ENTER for a new game",
		tooSmall:   "Window too small",
		statsLine:  "Played %d · Win %d%% · Streak %d · Best %d",
		switchFail: "Cannot switch language: %v",
	},
	alphabet.Russian: {
		title:      "ВОРДЛИ",
		titleLine:  "%s · %s · осталось %d",
		help:       "ENTER ввод · BACKSPACE стереть · F2 язык · F3 отладка · ESC выход",
		restart:    "Нажмите ENTER для новой игры",
		tooSmall:   "Окно слишком маленькое",
		statsLine:  "Игр %d · Побед %d%% · Серия %d · Лучшая %d",
		switchFail: "Не удалось сменить язык: %v",
	},
}

func textFor(lang alphabet.Language) uiText {
	if t, ok := texts[lang]; ok {
		return t
	}
	return texts[alphabet.English]
}
