package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS objects (
	tbl  TEXT NOT NULL,
	id   TEXT NOT NULL,
	data BLOB NOT NULL,
	PRIMARY KEY (tbl, id)
);`

// SQLite is a Handler storing objects in a single table of an SQLite
// database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens or creates the SQLite database file at the path passed.
func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("open sqlite: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	for _, stmt := range []string{"PRAGMA journal_mode=WAL;", "PRAGMA synchronous=NORMAL;", schema} {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init sqlite: %w", err)
		}
	}
	return &SQLite{db: db}, nil
}

// Load ...
func (s *SQLite) Load(table, id string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM objects WHERE tbl = ? AND id = ?`, table, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %v/%v: %w", table, id, err)
	}
	return data, nil
}

// LoadAll ...
func (s *SQLite) LoadAll(table string) ([][]byte, error) {
	rows, err := s.db.Query(`SELECT data FROM objects WHERE tbl = ? ORDER BY id`, table)
	if err != nil {
		return nil, fmt.Errorf("query %v: %w", table, err)
	}
	defer rows.Close()

	var all [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan %v: %w", table, err)
		}
		all = append(all, data)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query %v: %w", table, err)
	}
	return all, nil
}

// Save ...
func (s *SQLite) Save(table, id string, data []byte) error {
	_, err := s.db.Exec(`INSERT INTO objects (tbl, id, data) VALUES (?, ?, ?)
		ON CONFLICT (tbl, id) DO UPDATE SET data = excluded.data`, table, id, data)
	if err != nil {
		return fmt.Errorf("save %v/%v: %w", table, id, err)
	}
	return nil
}

// Exists ...
func (s *SQLite) Exists(table, id string) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM objects WHERE tbl = ? AND id = ?`, table, id).Scan(&n); err != nil {
		return false, fmt.Errorf("check %v/%v: %w", table, id, err)
	}
	return n > 0, nil
}

// Delete ...
func (s *SQLite) Delete(table, id string) error {
	if _, err := s.db.Exec(`DELETE FROM objects WHERE tbl = ? AND id = ?`, table, id); err != nil {
		return fmt.Errorf("delete %v/%v: %w", table, id, err)
	}
	return nil
}

// Close ...
func (s *SQLite) Close() error {
	return s.db.Close()
}
