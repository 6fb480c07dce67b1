// internal/history/sqlite.go
package history

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS coupons (
	code  TEXT NOT NULL,
	brand TEXT NOT NULL,
	PRIMARY KEY (code, brand)
);
CREATE TABLE IF NOT EXISTS processed (
	source_id TEXT PRIMARY KEY
);
`

// SQLiteStore is the database history backend for long-running deployments
// where the JSON file gets unwieldy. Lookups hit an in-memory index loaded
// at open; writes accumulate in one transaction that Flush commits.
type SQLiteStore struct {
	db        *sql.DB
	tx        *sql.Tx
	seen      map[string]struct{}
	processed map[string]struct{}
}

// OpenSQLite opens or creates the history database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}

	s := &SQLiteStore{
		db:        db,
		seen:      make(map[string]struct{}),
		processed: make(map[string]struct{}),
	}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) load() error {
	rows, err := s.db.Query(`SELECT code, brand FROM coupons`)
	if err != nil {
		return fmt.Errorf("loading coupon history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var code, brand string
		if err := rows.Scan(&code, &brand); err != nil {
			return fmt.Errorf("scanning coupon history: %w", err)
		}
		s.seen[Pair{Code: code, Brand: brand}.Key()] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading coupon history: %w", err)
	}

	ids, err := s.db.Query(`SELECT source_id FROM processed`)
	if err != nil {
		return fmt.Errorf("loading processed history: %w", err)
	}
	defer ids.Close()
	for ids.Next() {
		var id string
		if err := ids.Scan(&id); err != nil {
			return fmt.Errorf("scanning processed history: %w", err)
		}
		s.processed[id] = struct{}{}
	}
	return ids.Err()
}

func (s *SQLiteStore) begin() (*sql.Tx, error) {
	if s.tx != nil {
		return s.tx, nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("starting history transaction: %w", err)
	}
	s.tx = tx
	return tx, nil
}

func (s *SQLiteStore) IsDuplicate(p Pair) bool {
	_, ok := s.seen[p.Key()]
	return ok
}

func (s *SQLiteStore) Commit(p Pair) {
	key := p.Key()
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}

	tx, err := s.begin()
	if err != nil {
		return
	}
	tx.Exec(`INSERT OR IGNORE INTO coupons (code, brand) VALUES (?, ?)`, p.Code, p.Brand)
}

func (s *SQLiteStore) IsProcessed(sourceID string) bool {
	_, ok := s.processed[sourceID]
	return ok
}

func (s *SQLiteStore) MarkProcessed(sourceID string) {
	if _, ok := s.processed[sourceID]; ok {
		return
	}
	s.processed[sourceID] = struct{}{}

	tx, err := s.begin()
	if err != nil {
		return
	}
	tx.Exec(`INSERT OR IGNORE INTO processed (source_id) VALUES (?)`, sourceID)
}

// Flush commits the pending transaction, if any.
func (s *SQLiteStore) Flush() error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit()
	s.tx = nil
	if err != nil {
		return fmt.Errorf("committing history: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if err := s.Flush(); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}
