package tui

import (
	"github.com/robalobadob/wordle/apps/go-tui/internal/alphabet"
)

const (
	keyboardRows = 3
	hgap         = 1
	headerRows   = 2 // title + blank
	messageRows  = 3 // blank + message + blank
	footerRows   = 1
)

// tileSize is one candidate scale for the grid and keyboard.
type tileSize struct {
	tileW, tileH int
	keyW, keyH   int
}

// sizes are tried from largest to smallest on every resize.
var sizes = []tileSize{
	{tileW: 7, tileH: 3, keyW: 5, keyH: 3},
	{tileW: 5, tileH: 3, keyW: 3, keyH: 1},
	{tileW: 3, tileH: 1, keyW: 3, keyH: 1},
}

// Metrics is the screen layout for one terminal size.
type Metrics struct {
	Width, Height int
	TooSmall      bool

	TileW, TileH int
	GridX, GridY int
	GridW, GridH int

	KeyW, KeyH int
	KeyRows    [][]alphabet.Letter
	KeyboardY  int

	MessageY int
	FooterY  int
}

// Layout picks the largest tile size for which the grid, the message line and
// the keyboard fit in a width×height terminal.
func Layout(width, height, wordLen, attempts int, letters []alphabet.Letter) Metrics {
	m := Metrics{Width: width, Height: height, KeyRows: alphabet.KeyboardRows(letters, keyboardRows)}
	widest := 0
	for _, row := range m.KeyRows {
		widest = max(widest, len(row))
	}

	for _, sz := range sizes {
		gridW := span(wordLen, sz.tileW)
		gridH := attempts * sz.tileH
		kbW := span(widest, sz.keyW)
		kbH := len(m.KeyRows) * sz.keyH
		needW := max(gridW, kbW)
		needH := headerRows + gridH + messageRows + kbH + footerRows
		if needW > width || needH > height {
			continue
		}
		m.TileW, m.TileH = sz.tileW, sz.tileH
		m.KeyW, m.KeyH = sz.keyW, sz.keyH
		m.GridW, m.GridH = gridW, gridH
		m.GridX = (width - gridW) / 2
		m.GridY = headerRows
		m.MessageY = m.GridY + gridH + 1
		m.KeyboardY = m.MessageY + 2
		m.FooterY = m.KeyboardY + kbH
		return m
	}
	m.TooSmall = true
	return m
}

// RowX returns the x of the first key of a keyboard row with n keys.
func (m Metrics) RowX(n int) int {
	return (m.Width - span(n, m.KeyW)) / 2
}

// span is the width of n boxes of size w separated by hgap.
func span(n, w int) int {
	if n <= 0 {
		return 0
	}
	return n*w + (n-1)*hgap
}
