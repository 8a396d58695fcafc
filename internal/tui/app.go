// Package tui is the terminal front end: it turns key presses into engine
// calls and draws the engine's state after every event.
package tui

import (
	"fmt"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-tui/internal/alphabet"
	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
	"github.com/robalobadob/wordle/apps/go-tui/internal/stats"
)

// Dictionary is a game.Dictionary that can be re-pointed at another language.
type Dictionary interface {
	game.Dictionary
	SetLanguageAndWordLength(lang alphabet.Language, length int) error
}

// Options are the knobs main passes through from the config.
type Options struct {
	WordLength   int
	MaxAttempts  int
	DebugOverlay bool
}

// App owns the screen and the active engine.
type App struct {
	screen tcell.Screen
	dict   Dictionary
	engine *game.Engine
	tally  *stats.Tally
	opts   Options

	metrics   Metrics
	showError bool
	notice    string
	debug     bool
	quit      bool

	frames    int
	frameTime time.Duration
}

// New wires an initialised screen to an engine. The screen's lifecycle stays
// with the caller.
func New(screen tcell.Screen, dict Dictionary, engine *game.Engine, opts Options) *App {
	return &App{
		screen: screen,
		dict:   dict,
		engine: engine,
		tally:  stats.New(),
		opts:   opts,
		debug:  opts.DebugOverlay,
	}
}

// Run draws the first frame and processes events until the player quits or the
// screen is finalised.
func (a *App) Run() {
	w, h := a.screen.Size()
	a.layout(w, h)
	a.Draw()
	for !a.quit {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		a.HandleEvent(ev)
		if !a.quit {
			a.Draw()
		}
	}
}

// HandleEvent applies one terminal event.
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.layout(ev.Size())
	case *tcell.EventKey:
		a.handleKey(ev)
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	a.showError = false
	a.notice = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quit = true
	case tcell.KeyF2:
		a.switchLanguage()
	case tcell.KeyF3:
		a.debug = !a.debug
	case tcell.KeyEnter:
		a.submit()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.erase()
	case tcell.KeyRune:
		a.typeRune(ev.Rune())
	}
}

// typeRune appends one lower-cased character while the row has room.
func (a *App) typeRune(r rune) {
	if a.engine.IsGameOver() || !unicode.IsPrint(r) {
		return
	}
	st := a.engine.State()
	if st.CurrentInput.Len() >= st.TargetWord.Len() {
		return
	}
	a.engine.ModifyCurrentInput(alphabet.Lower(st.Language, st.CurrentInput.String()+string(r)))
}

func (a *App) erase() {
	in := a.engine.State().CurrentInput
	if len(in) == 0 {
		return
	}
	a.engine.ModifyCurrentInput(alphabet.Join(in[:len(in)-1]))
}

// submit checks a full row, or starts the next round once this one is over.
// A rejected full row is cleared; a short one is kept so the player can finish
// typing it.
func (a *App) submit() {
	if a.engine.IsGameOver() {
		a.newRound()
		return
	}
	st := a.engine.State()
	if !a.engine.IsValidInput() {
		a.showError = true
		if st.CurrentInput.Len() == st.TargetWord.Len() {
			a.engine.ModifyCurrentInput("")
		}
		return
	}
	if err := a.engine.CheckInputWord(); err != nil {
		log.Warn().Err(err).Msg("guess rejected")
		return
	}
	a.engine.ModifyCurrentInput("")

	if a.engine.IsGameOver() {
		a.tally.Record(a.engine.IsUserWin(), len(a.engine.State().GuessHistory))
	}
}

func (a *App) newRound() {
	if err := a.engine.StartNewGame(); err != nil {
		log.Error().Err(err).Msg("cannot start a new round")
		a.notice = err.Error()
	}
}

// switchLanguage moves the dictionary and a fresh engine to the next language.
// On failure the current round carries on untouched.
func (a *App) switchLanguage() {
	cur := a.engine.Language()
	next := cur.Next()
	fail := func(err error) {
		log.Error().Err(err).Str("language", next.Name()).Msg("language switch failed")
		a.notice = fmt.Sprintf(textFor(cur).switchFail, err)
	}

	if err := a.dict.SetLanguageAndWordLength(next, a.opts.WordLength); err != nil {
		fail(err)
		return
	}
	eng, err := game.NewEngine(next, a.dict, a.opts.MaxAttempts)
	if err != nil {
		fail(err)
		if err := a.dict.SetLanguageAndWordLength(cur, a.opts.WordLength); err != nil {
			log.Error().Err(err).Str("language", cur.Name()).Msg("cannot restore dictionary")
		}
		return
	}
	a.engine = eng
	a.layout(a.metrics.Width, a.metrics.Height)
	log.Info().Str("language", next.Name()).Msg("language switched")
}

func (a *App) layout(w, h int) {
	st := a.engine.State()
	a.metrics = Layout(w, h, st.TargetWord.Len(), st.MaxAttempts, st.Alphabet)
	log.Debug().Int("width", w).Int("height", h).Int("tile", a.metrics.TileW).
		Bool("too_small", a.metrics.TooSmall).Msg("layout")
}

// State exposes the active engine's snapshot.
func (a *App) State() game.State { return a.engine.State() }

// Tally returns the session statistics.
func (a *App) Tally() *stats.Tally { return a.tally }
