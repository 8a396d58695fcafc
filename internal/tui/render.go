package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/robalobadob/wordle/apps/go-tui/internal/alphabet"
	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
)

// Draw renders one frame from the engine snapshot.
func (a *App) Draw() {
	start := time.Now()
	s := a.screen
	s.Clear()

	st := a.engine.State()
	txt := textFor(st.Language)
	m := a.metrics

	if m.TooSmall {
		drawCentered(s, m.Width, m.Height/2, styleError, txt.tooSmall)
		s.Show()
		return
	}

	drawCentered(s, m.Width, 0, styleTitle,
		fmt.Sprintf(txt.titleLine, txt.title, st.Language.DisplayName(), st.AttemptsLeft()))
	a.drawGrid(st)
	a.drawKeyboard(st)

	switch {
	case a.notice != "":
		drawCentered(s, m.Width, m.MessageY, styleError, a.notice)
	case a.showError && st.LastError != "":
		drawCentered(s, m.Width, m.MessageY, styleError, st.LastError)
	}
	if m.FooterY < m.Height {
		drawCentered(s, m.Width, m.FooterY, styleDim, txt.help)
	}
	if st.IsFinished {
		a.drawOverlay(st, txt)
	}

	a.frames++
	a.frameTime = time.Since(start)
	if a.debug {
		a.drawDebug()
	}
	s.Show()
}

// drawGrid draws guessed rows, the current input row and the empty rows
// below it.
func (a *App) drawGrid(st game.State) {
	m := a.metrics
	n := st.TargetWord.Len()
	for row := 0; row < st.MaxAttempts; row++ {
		y := m.GridY + row*m.TileH
		for col := 0; col < n; col++ {
			x := m.GridX + col*(m.TileW+hgap)
			switch {
			case row < len(st.GuessResults):
				r := st.GuessResults[row][col]
				drawTile(a.screen, x, y, m.TileW, m.TileH, statusStyle(r.Status), a.label(r.Letter), false)
			case row == len(st.GuessHistory) && !st.IsFinished && col < st.CurrentInput.Len():
				drawTile(a.screen, x, y, m.TileW, m.TileH, styleInput, a.label(st.CurrentInput[col]), true)
			default:
				drawTile(a.screen, x, y, m.TileW, m.TileH, styleBorder, "", true)
			}
		}
	}
}

func (a *App) drawKeyboard(st game.State) {
	m := a.metrics
	for i, row := range m.KeyRows {
		y := m.KeyboardY + i*m.KeyH
		x := m.RowX(len(row))
		for _, l := range row {
			drawTile(a.screen, x, y, m.KeyW, m.KeyH, statusStyle(st.KeyboardStatus[l]), a.label(l), false)
			x += m.KeyW + hgap
		}
	}
}

// drawOverlay shows the final message, the session tally and the restart hint
// over the middle of the grid.
func (a *App) drawOverlay(st game.State, txt uiText) {
	m := a.metrics
	lines := []string{
		st.FinalMessage,
		"",
		fmt.Sprintf(txt.statsLine, a.tally.GamesPlayed, a.tally.WinRate(), a.tally.CurrentStreak, a.tally.MaxStreak),
		"",
		txt.restart,
	}
	w := 0
	for _, l := range lines {
		w = max(w, uniseg.StringWidth(l))
	}
	w = min(w+4, m.Width)
	h := len(lines) + 2
	x := (m.Width - w) / 2
	y := max(m.GridY+(m.GridH-h)/2, 0)

	fill(a.screen, x, y, w, h, styleOverlay)
	for i, l := range lines {
		drawCentered(a.screen, m.Width, y+1+i, styleOverlay, l)
	}
}

func (a *App) drawDebug() {
	line := fmt.Sprintf("frame %s · #%d · %dx%d tile %dx%d",
		a.frameTime.Round(time.Microsecond), a.frames, a.metrics.Width, a.metrics.Height,
		a.metrics.TileW, a.metrics.TileH)
	drawText(a.screen, max(a.metrics.Width-uniseg.StringWidth(line), 0), a.metrics.Height-1, styleDim, line)
}

func (a *App) label(l alphabet.Letter) string {
	return alphabet.Upper(a.engine.Language(), string(l))
}

// drawTile paints a w×h box with label in its centre. Boxes at least three
// rows tall get a border when outlined is set.
func drawTile(s tcell.Screen, x, y, w, h int, style tcell.Style, label string, outlined bool) {
	if outlined && h >= 3 {
		drawBox(s, x, y, w, h, style)
	} else {
		fill(s, x, y, w, h, style)
	}
	if label == "" {
		return
	}
	drawText(s, x+(w-uniseg.StringWidth(label))/2, y+h/2, style, label)
}

func drawBox(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for i := 1; i < w-1; i++ {
		s.SetContent(x+i, y, tcell.RuneHLine, nil, style)
		s.SetContent(x+i, y+h-1, tcell.RuneHLine, nil, style)
	}
	for j := 1; j < h-1; j++ {
		s.SetContent(x, y+j, tcell.RuneVLine, nil, style)
		s.SetContent(x+w-1, y+j, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, style)
	s.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	s.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	s.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}

func fill(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			s.SetContent(x+i, y+j, ' ', nil, style)
		}
	}
}

// drawText writes text one grapheme cluster per cell group and returns the
// x after the last cluster.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		rs := g.Runes()
		s.SetContent(x, y, rs[0], rs[1:], style)
		x += max(g.Width(), 1)
	}
	return x
}

func drawCentered(s tcell.Screen, width, y int, style tcell.Style, text string) {
	drawText(s, max((width-uniseg.StringWidth(text))/2, 0), y, style, text)
}
