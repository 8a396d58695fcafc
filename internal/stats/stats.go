// Package stats keeps the session tally shown on the finish overlay.
// It lives only as long as the process.
package stats

// Tally counts finished rounds.
type Tally struct {
	GamesPlayed   int
	Wins          int
	CurrentStreak int
	MaxStreak     int
	Distribution  map[int]int // guesses used -> wins
}

// New returns an empty tally.
func New() *Tally {
	return &Tally{Distribution: make(map[int]int)}
}

// Record adds one finished round. A loss resets the current streak.
func (t *Tally) Record(won bool, guesses int) {
	t.GamesPlayed++
	if !won {
		t.CurrentStreak = 0
		return
	}
	t.Wins++
	t.CurrentStreak++
	t.MaxStreak = max(t.MaxStreak, t.CurrentStreak)
	t.Distribution[guesses]++
}

// WinRate returns wins as a percentage of games played.
func (t *Tally) WinRate() int {
	if t.GamesPlayed == 0 {
		return 0
	}
	return t.Wins * 100 / t.GamesPlayed
}
