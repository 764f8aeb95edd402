// Package store caches rendered documents keyed by the sha256 hash of
// their source, the way periwiki's db package keyed article revisions
// by a content hash to avoid re-rendering unchanged markdown.
package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a hash has no cached revision.
var ErrNotFound = errors.New("store: revision not found")

const schema = `
CREATE TABLE IF NOT EXISTS revision (
	hash       TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	html       TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// Store caches rendered HTML alongside the rST source it came from.
type Store struct {
	conn             *sqlx.DB
	selectByHashStmt *sqlx.Stmt
}

// Open connects to (creating if necessary) the sqlite database at
// path and ensures its schema exists.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(schema); err != nil {
		return nil, err
	}

	s := &Store{conn: conn}
	s.selectByHashStmt, err = conn.Preparex(`SELECT hash, source, html FROM revision WHERE hash = ?`)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Revision is one cached render of an rST document.
type Revision struct {
	Hash   string `db:"hash"`
	Source string `db:"source"`
	HTML   string `db:"html"`
}

// Hash returns the content-addressed key for a piece of source text.
func Hash(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Put caches a rendered document, returning its content hash. Writing
// the same source twice is a no-op past the first insert.
func (s *Store) Put(source, html string) (string, error) {
	hash := Hash(source)
	_, err := s.conn.Exec(
		`INSERT OR IGNORE INTO revision (hash, source, html) VALUES (?, ?, ?)`,
		hash, source, html,
	)
	if err != nil {
		return "", err
	}
	return hash, nil
}

// Get retrieves a cached revision by its content hash.
func (s *Store) Get(hash string) (*Revision, error) {
	rev := &Revision{}
	err := s.selectByHashStmt.Get(rev, hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rev, nil
}
