package playink

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store is the build manifest: a SQLite table of every file the last build
// wrote, with its content hash. Builds use it to skip unchanged files and
// remove files that are no longer produced.
type Store struct {
	db *sql.DB
}

// ManifestEntry is one recorded build output.
type ManifestEntry struct {
	Path    string
	Hash    string
	BuiltAt time.Time
}

// NewStore opens (or creates) the manifest database at path, ensures its
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One builder writes at a time; WAL plus a busy timeout keeps a
	// concurrent reader (another build listing outputs) from failing.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(1)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS outputs (
    path TEXT PRIMARY KEY,
    hash TEXT NOT NULL,
    built_at TEXT NOT NULL
);
`)
	return err
}

// Get returns the recorded entry for path. ok is false when the path was
// never recorded.
func (s *Store) Get(path string) (entry ManifestEntry, ok bool, err error) {
	var builtAt string
	err = s.db.QueryRow(`SELECT path, hash, built_at FROM outputs WHERE path = ?`, path).
		Scan(&entry.Path, &entry.Hash, &builtAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ManifestEntry{}, false, nil
	}
	if err != nil {
		return ManifestEntry{}, false, err
	}
	entry.BuiltAt, _ = time.Parse(time.RFC3339, builtAt)
	return entry, true, nil
}

// Record inserts or updates the entry for path.
func (s *Store) Record(path, hash string, builtAt time.Time) error {
	_, err := s.db.Exec(`
INSERT INTO outputs (path, hash, built_at) VALUES (?, ?, ?)
ON CONFLICT(path) DO UPDATE SET hash = excluded.hash, built_at = excluded.built_at
`, path, hash, builtAt.UTC().Format(time.RFC3339))
	return err
}

// Forget removes the entry for path.
func (s *Store) Forget(path string) error {
	_, err := s.db.Exec(`DELETE FROM outputs WHERE path = ?`, path)
	return err
}

// Paths returns every recorded output path, sorted.
func (s *Store) Paths() ([]string, error) {
	rows, err := s.db.Query(`SELECT path FROM outputs ORDER BY path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}
