package stats

import (
	"testing"

	"github.com/matryer/is"
)

func TestRecord(t *testing.T) {
	is := is.New(t)
	s := New()
	is.Equal(s.WinRate(), 0)

	s.Record(true, 3)
	s.Record(true, 4)
	s.Record(false, 6)
	s.Record(true, 3)

	is.Equal(s.GamesPlayed, 4)
	is.Equal(s.Wins, 3)
	is.Equal(s.CurrentStreak, 1)
	is.Equal(s.MaxStreak, 2)
	is.Equal(s.Distribution[3], 2)
	is.Equal(s.Distribution[4], 1)
	is.Equal(s.Distribution[6], 0)
	is.Equal(s.WinRate(), 75)
}
