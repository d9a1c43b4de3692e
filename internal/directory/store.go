// Package directory is the SQLite-backed store of candidates and companies
// that palette searches draw from.
package directory

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"hiredesk/internal/entity"
	"hiredesk/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS candidates (
	id         TEXT PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name  TEXT NOT NULL,
	position   TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS companies (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	industry       TEXT NOT NULL DEFAULT '',
	contact_person TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_candidates_name ON candidates(last_name, first_name);
CREATE INDEX IF NOT EXISTS idx_companies_name ON companies(name);
`

// Store wraps the directory database.
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// Open initializes the SQLite database at the given path, creating the
// parent directory and schema as needed.
func Open(path string) (*Store, error) {
	timer := logging.StartTimer(logging.CategoryDirectory, "directory.Open")
	defer timer.Stop()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logging.Directory("directory opened at %s", path)
	return &Store{db: db, dbPath: path}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// AddCandidate inserts a candidate, generating an id when absent.
func (s *Store) AddCandidate(ctx context.Context, c entity.Candidate) (entity.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO candidates (id, first_name, last_name, position, email) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.FirstName, c.LastName, c.Position, c.Email)
	if err != nil {
		return entity.Candidate{}, fmt.Errorf("failed to insert candidate: %w", err)
	}
	return c, nil
}

// AddCompany inserts a company, generating an id when absent.
func (s *Store) AddCompany(ctx context.Context, c entity.Company) (entity.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO companies (id, name, industry, contact_person) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, c.Industry, c.ContactPerson)
	if err != nil {
		return entity.Company{}, fmt.Errorf("failed to insert company: %w", err)
	}
	return c, nil
}

// ListCandidates returns all candidates ordered by name.
func (s *Store) ListCandidates(ctx context.Context) ([]entity.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, position, email FROM candidates ORDER BY last_name, first_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var out []entity.Candidate
	for rows.Next() {
		var c entity.Candidate
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Position, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListCompanies returns all companies ordered by name.
func (s *Store) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, industry, contact_person FROM companies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var out []entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Industry, &c.ContactPerson); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SearchCandidates matches the term case-insensitively against name, email,
// and position. An empty term returns everything.
func (s *Store) SearchCandidates(ctx context.Context, term string) ([]entity.Candidate, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.ListCandidates(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	pattern := "%" + strings.ToLower(term) + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, position, email FROM candidates
		 WHERE lower(first_name || ' ' || last_name) LIKE ?
		    OR lower(email) LIKE ?
		    OR lower(position) LIKE ?
		 ORDER BY last_name, first_name`,
		pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search candidates: %w", err)
	}
	defer rows.Close()

	var out []entity.Candidate
	for rows.Next() {
		var c entity.Candidate
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Position, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SearchCompanies matches the term case-insensitively against name and
// industry. An empty term returns everything.
func (s *Store) SearchCompanies(ctx context.Context, term string) ([]entity.Company, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.ListCompanies(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	pattern := "%" + strings.ToLower(term) + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, industry, contact_person FROM companies
		 WHERE lower(name) LIKE ? OR lower(industry) LIKE ?
		 ORDER BY name`,
		pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search companies: %w", err)
	}
	defer rows.Close()

	var out []entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Industry, &c.ContactPerson); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Counts returns the number of candidates and companies.
func (s *Store) Counts(ctx context.Context) (candidates, companies int, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&candidates); err != nil {
		return 0, 0, err
	}
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies`).Scan(&companies); err != nil {
		return 0, 0, err
	}
	return candidates, companies, nil
}
