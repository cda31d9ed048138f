// Package excache is the persistent example store. Each annotation run
// collects example sentences per rule label; teachers grading a class
// set accumulate them here so later reports can show how the same rule
// breaks across many essays. The store is a single SQLite file using
// the pure Go driver, so the tool stays CGO-free.
package excache

import (
	"database/sql"

	"github.com/zeebo/blake3"
	_ "modernc.org/sqlite"

	"github.com/vysti/marker/core/errors"
	"github.com/vysti/marker/core/summary"
)

const schema = `
CREATE TABLE IF NOT EXISTS examples (
	key      BLOB PRIMARY KEY,
	label    TEXT NOT NULL,
	sentence TEXT NOT NULL,
	added_at TEXT NOT NULL DEFAULT (datetime('now'))
);
CREATE INDEX IF NOT EXISTS examples_label ON examples(label);
`

// Store is a SQLite-backed example archive. Safe for concurrent use;
// database/sql serializes access.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store at path. Use ":memory:" for an
// ephemeral store in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.NewIO("migrate", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// key derives the dedup key for a (label, sentence) pair, matching the
// in-run dedup scheme of the summary collector.
func key(label, sentence string) []byte {
	sum := blake3.Sum256([]byte(label + "\x00" + sentence))
	return sum[:]
}

// Put stores one example sentence for a label. Re-inserting the same
// pair is a no-op.
func (s *Store) Put(label, sentence string) error {
	if label == "" || sentence == "" {
		return errors.NewValidation("example", "label and sentence must be non-empty")
	}
	_, err := s.db.Exec(
		`INSERT INTO examples (key, label, sentence) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO NOTHING`,
		key(label, sentence), label, sentence)
	if err != nil {
		return errors.Wrap(err, "put example")
	}
	return nil
}

// PutReport stores every example carried by a run report.
func (s *Store) PutReport(rep *summary.Report) error {
	for _, row := range rep.Rows {
		for _, ex := range row.Examples {
			if err := s.Put(row.Label, ex); err != nil {
				return err
			}
		}
	}
	return nil
}

// Examples returns up to limit stored sentences for a label, oldest
// first. A limit of 0 or less returns all of them.
func (s *Store) Examples(label string, limit int) ([]string, error) {
	q := `SELECT sentence FROM examples WHERE label = ? ORDER BY added_at, sentence`
	args := []any{label}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query examples")
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var sentence string
		if err := rows.Scan(&sentence); err != nil {
			return nil, errors.Wrap(err, "scan example")
		}
		out = append(out, sentence)
	}
	return out, rows.Err()
}

// Labels returns the distinct labels in the store with their stored
// example counts.
func (s *Store) Labels() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT label, COUNT(*) FROM examples GROUP BY label`)
	if err != nil {
		return nil, errors.Wrap(err, "query labels")
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var label string
		var n int
		if err := rows.Scan(&label, &n); err != nil {
			return nil, errors.Wrap(err, "scan label")
		}
		out[label] = n
	}
	return out, rows.Err()
}
