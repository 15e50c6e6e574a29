// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cases

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists flattened case rows to a SQLite database. A few hot
// columns are pulled out for indexed lookups; the full row travels as JSON.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the case database at path and ensures the
// schema exists.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening case database: %w", err)
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS cases (
			case_id TEXT PRIMARY KEY,
			submitter_id TEXT,
			project_id TEXT,
			row TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cases_project_id ON cases(project_id)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put inserts or replaces the row for caseID.
func (s *Store) Put(caseID string, row map[string]any) error {
	encoded, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encoding row for %s: %w", caseID, err)
	}
	submitterID, _ := row["submitter_id"].(string)
	projectID, _ := row["project_id"].(string)

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO cases (case_id, submitter_id, project_id, row) VALUES (?, ?, ?, ?)`,
		caseID, submitterID, projectID, string(encoded),
	)
	if err != nil {
		return fmt.Errorf("storing case %s: %w", caseID, err)
	}
	return nil
}

// PutTable stores every row of t in one transaction.
func (s *Store) PutTable(t *Table) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	stmt, err := tx.Prepare(
		`INSERT OR REPLACE INTO cases (case_id, submitter_id, project_id, row) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, id := range t.IDs() {
		row := t.Row(id)
		encoded, err := json.Marshal(row)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("encoding row for %s: %w", id, err)
		}
		submitterID, _ := row["submitter_id"].(string)
		projectID, _ := row["project_id"].(string)
		if _, err := stmt.Exec(id, submitterID, projectID, string(encoded)); err != nil {
			tx.Rollback()
			return fmt.Errorf("storing case %s: %w", id, err)
		}
	}
	return tx.Commit()
}

// Get returns the row for caseID, or sql.ErrNoRows when absent.
func (s *Store) Get(caseID string) (map[string]any, error) {
	var encoded string
	err := s.db.QueryRow(`SELECT row FROM cases WHERE case_id = ?`, caseID).Scan(&encoded)
	if err != nil {
		return nil, err
	}
	var row map[string]any
	if err := json.Unmarshal([]byte(encoded), &row); err != nil {
		return nil, fmt.Errorf("decoding row for %s: %w", caseID, err)
	}
	return row, nil
}

// Count returns the number of stored cases.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT count(*) FROM cases`).Scan(&n)
	return n, err
}
