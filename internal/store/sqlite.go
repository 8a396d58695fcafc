// internal/store/sqlite.go
//
// SQLite-backed implementation of the engine's Dictionary.
// Word lists are imported into a single `words` table and queried with SQL,
// so RandomWord / IsValidWord do not keep the lists in Go memory.
//
// Characteristics:
//   - Default DSN is ":memory:"; nothing outlives the process unless a file
//     DSN is configured (it is then only a cache of the word lists).
//   - One open connection: an in-memory SQLite database is per connection.
//   - Lists are imported lazily on SetLanguageAndWordLength through a Loader.
//   - Not safe for concurrent SetLanguageAndWordLength calls.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-tui/internal/alphabet"
)

// ErrNoWords is returned when the active language/length has no answers.
var ErrNoWords = errors.New("store: no answers for the active word list")

// Loader supplies the answers and allowed lists for a language and length.
type Loader func(lang alphabet.Language, length int) (answers, allowed []string, err error)

// SQLDictionary answers dictionary queries from SQLite.
type SQLDictionary struct {
	db     *sql.DB
	load   Loader
	lang   alphabet.Language
	length int
}

const schema = `
CREATE TABLE IF NOT EXISTS words (
	lang   TEXT    NOT NULL,
	length INTEGER NOT NULL,
	word   TEXT    NOT NULL,
	answer INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (lang, length, word)
);
CREATE INDEX IF NOT EXISTS words_answers ON words(lang, length, answer);`

// Open opens (and creates if missing) the database at dsn and applies the
// schema. load may be nil when every list is imported explicitly.
func Open(dsn string, load Loader) (*SQLDictionary, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &SQLDictionary{db: db, load: load, length: -1}, nil
}

// openDB opens a SQLite database with a busy timeout and foreign keys on.
// File DSNs get their parent directory created and WAL journaling.
func openDB(dsn string) (*sql.DB, error) {
	memory := dsn == "" || dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
	if dsn == "" {
		dsn = ":memory:"
	}
	if !memory {
		dir := filepath.Dir(dsn)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("store: mkdir %s: %w", dir, err)
			}
		}
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite3", dsn+sep+"_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	pragmas := `PRAGMA foreign_keys = ON;`
	if !memory {
		pragmas += ` PRAGMA journal_mode = WAL;`
	}
	if _, err := db.Exec(pragmas); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set pragmas: %w", err)
	}
	return db, nil
}

// Import stores the lists for lang/length in one transaction. Answers are
// always valid guesses; a word imported as an answer stays one.
func (s *SQLDictionary) Import(lang alphabet.Language, length int, answers, allowed []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT INTO words (lang, length, word, answer) VALUES (?, ?, ?, ?)
		ON CONFLICT(lang, length, word) DO UPDATE SET answer = MAX(answer, excluded.answer)`)
	if err != nil {
		return fmt.Errorf("store: prepare import: %w", err)
	}
	defer stmt.Close()

	for _, w := range answers {
		if _, err := stmt.Exec(lang.Name(), length, w, 1); err != nil {
			return fmt.Errorf("store: import %q: %w", w, err)
		}
	}
	for _, w := range allowed {
		if _, err := stmt.Exec(lang.Name(), length, w, 0); err != nil {
			return fmt.Errorf("store: import %q: %w", w, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit import: %w", err)
	}
	log.Debug().Str("language", lang.Name()).Int("length", length).
		Int("answers", len(answers)).Int("allowed", len(allowed)).Msg("word lists imported")
	return nil
}

// SetLanguageAndWordLength switches the active list, importing it through the
// loader when the database does not hold it yet. On error the previous list
// stays active.
func (s *SQLDictionary) SetLanguageAndWordLength(lang alphabet.Language, length int) error {
	n, err := s.countAnswers(lang, length)
	if err != nil {
		return err
	}
	if n == 0 {
		if s.load == nil {
			return fmt.Errorf("%w (%s, %d letters)", ErrNoWords, lang.Name(), length)
		}
		answers, allowed, err := s.load(lang, length)
		if err != nil {
			return err
		}
		if err := s.Import(lang, length, answers, allowed); err != nil {
			return err
		}
		if n, err = s.countAnswers(lang, length); err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w (%s, %d letters)", ErrNoWords, lang.Name(), length)
		}
	}
	s.lang, s.length = lang, length
	return nil
}

func (s *SQLDictionary) countAnswers(lang alphabet.Language, length int) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(1) FROM words WHERE lang=? AND length=? AND answer=1`,
		lang.Name(), length).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("store: count answers: %w", err)
	}
	return n, nil
}

// RandomWord returns a random answer of the active list.
func (s *SQLDictionary) RandomWord() (string, error) {
	var w string
	err := s.db.QueryRow(`SELECT word FROM words WHERE lang=? AND length=? AND answer=1
		ORDER BY RANDOM() LIMIT 1`, s.lang.Name(), s.length).Scan(&w)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoWords
	}
	if err != nil {
		return "", fmt.Errorf("store: random word: %w", err)
	}
	return w, nil
}

// IsValidWord reports whether w is an answer or allowed guess of the active list.
func (s *SQLDictionary) IsValidWord(w string) bool {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM words WHERE lang=? AND length=? AND word=?`,
		s.lang.Name(), s.length, alphabet.Lower(s.lang, w)).Scan(&one)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Warn().Err(err).Msg("store: lookup word")
	}
	return err == nil
}

// Words returns the answers of the active list in alphabetical order.
func (s *SQLDictionary) Words() ([]string, error) {
	rows, err := s.db.Query(`SELECT word FROM words WHERE lang=? AND length=? AND answer=1 ORDER BY word`,
		s.lang.Name(), s.length)
	if err != nil {
		return nil, fmt.Errorf("store: list words: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Language returns the active language.
func (s *SQLDictionary) Language() alphabet.Language { return s.lang }

// WordLength returns the active word length.
func (s *SQLDictionary) WordLength() int { return s.length }

// Close closes the database.
func (s *SQLDictionary) Close() error { return s.db.Close() }
