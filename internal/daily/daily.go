// Package daily picks a deterministic word of the day from a word list.
package daily

import (
	"encoding/binary"
	"errors"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/go-tui/internal/alphabet"
)

// ErrNoWords is returned when the underlying list is empty.
var ErrNoWords = errors.New("daily: word list is empty")

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date: keyed BLAKE2b of the
// date key, first 8 bytes mod n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	key := blake2b.Sum256([]byte(salt))
	h, _ := blake2b.New256(key[:]) // a 32-byte key is always accepted
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Source is a dictionary that can list its answers.
type Source interface {
	RandomWord() (string, error)
	IsValidWord(candidate string) bool
	SetLanguageAndWordLength(lang alphabet.Language, length int) error
	Words() ([]string, error)
}

// Dictionary serves the word of the day as its "random" word and delegates
// everything else to the wrapped source.
type Dictionary struct {
	src  Source
	salt string
	now  func() time.Time
}

// New wraps src. now may be nil to use the wall clock.
func New(src Source, salt string, now func() time.Time) *Dictionary {
	if now == nil {
		now = time.Now
	}
	return &Dictionary{src: src, salt: salt, now: now}
}

// RandomWord returns today's word.
func (d *Dictionary) RandomWord() (string, error) {
	ws, err := d.src.Words()
	if err != nil {
		return "", err
	}
	if len(ws) == 0 {
		return "", ErrNoWords
	}
	return ws[WordIndex(d.now(), d.salt, len(ws))], nil
}

// IsValidWord delegates to the source.
func (d *Dictionary) IsValidWord(w string) bool { return d.src.IsValidWord(w) }

// SetLanguageAndWordLength delegates to the source.
func (d *Dictionary) SetLanguageAndWordLength(lang alphabet.Language, length int) error {
	return d.src.SetLanguageAndWordLength(lang, length)
}

// Words delegates to the source.
func (d *Dictionary) Words() ([]string, error) { return d.src.Words() }

// Today returns the date key the current word belongs to.
func (d *Dictionary) Today() string { return DateKey(d.now()) }
