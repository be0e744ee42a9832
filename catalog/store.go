// Package catalog indexes extracted replay metadata in SQLite so hosts can
// list and query replays without decoding them again.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/chazu/replayinfo/games"
	"github.com/chazu/replayinfo/plugin"
)

// ErrNotFound indicates the requested replay is not in the catalog.
var ErrNotFound = errors.New("replay not found")

// Entry is the catalog row of one replay file.
type Entry struct {
	Path   string
	Game   games.ID
	Status plugin.Status
	Fields []Field
	ScanID string
}

// Value returns the stored value of a column by short name.
func (e Entry) Value(column string) string {
	for _, f := range e.Fields {
		if f.Column == column {
			return f.Value
		}
	}
	return ""
}

// Store is a SQLite-backed catalog.
type Store struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

const schema = `
CREATE TABLE IF NOT EXISTS replays (
	path    TEXT PRIMARY KEY,
	game    TEXT NOT NULL,
	status  INTEGER NOT NULL,
	record  BLOB,
	scan_id TEXT
);
CREATE INDEX IF NOT EXISTS replays_game ON replays (game);
CREATE TABLE IF NOT EXISTS scans (
	id         TEXT PRIMARY KEY,
	started_at INTEGER NOT NULL,
	files      INTEGER NOT NULL DEFAULT 0,
	failures   INTEGER NOT NULL DEFAULT 0,
	complete   INTEGER NOT NULL DEFAULT 0
);`

// Open opens or creates the catalog at path. ":memory:" opens a private
// in-memory catalog.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Put stores or replaces the entry for e.Path.
func (s *Store) Put(e Entry) error {
	var blob []byte
	if e.Fields != nil {
		var err error
		blob, err = MarshalFields(e.Fields)
		if err != nil {
			return fmt.Errorf("encoding fields of %s: %w", e.Path, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO replays (path, game, status, record, scan_id) VALUES (?, ?, ?, ?, ?)",
		e.Path, string(e.Game), int(e.Status), blob, e.ScanID,
	)
	if err != nil {
		return fmt.Errorf("saving %s: %w", e.Path, err)
	}
	return nil
}

// Get returns the entry for path.
func (s *Store) Get(path string) (Entry, error) {
	row := s.db.QueryRow("SELECT path, game, status, record, scan_id FROM replays WHERE path = ?", path)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return e, err
}

// List returns the entries of one game, or of all games when id is empty,
// ordered by path.
func (s *Store) List(id games.ID) ([]Entry, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if id == "" {
		rows, err = s.db.Query("SELECT path, game, status, record, scan_id FROM replays ORDER BY path")
	} else {
		rows, err = s.db.Query("SELECT path, game, status, record, scan_id FROM replays WHERE game = ? ORDER BY path", string(id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying replays: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Delete removes the entry for path.
func (s *Store) Delete(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.Exec("DELETE FROM replays WHERE path = ?", path)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", path, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(r rowScanner) (Entry, error) {
	var (
		e      Entry
		game   string
		status int
		blob   []byte
		scanID sql.NullString
	)
	if err := r.Scan(&e.Path, &game, &status, &blob, &scanID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("reading replay row: %w", err)
	}
	e.Game = games.ID(game)
	e.Status = plugin.Status(status)
	e.ScanID = scanID.String
	if len(blob) > 0 {
		fields, err := UnmarshalFields(blob)
		if err != nil {
			return Entry{}, fmt.Errorf("%s: %w", e.Path, err)
		}
		e.Fields = fields
	}
	return e, nil
}

// ---------------------------------------------------------------------------
// Scans
// ---------------------------------------------------------------------------

// Scan is the bookkeeping row of one indexing run. Files counts the entries
// stored by the run. Complete is false for a run that aborted or is still
// going.
type Scan struct {
	ID        string
	StartedAt time.Time
	Files     int
	Failures  int
	Complete  bool
}

func (s *Store) beginScan(id string, started time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("INSERT INTO scans (id, started_at) VALUES (?, ?)", id, started.Unix())
	if err != nil {
		return fmt.Errorf("recording scan: %w", err)
	}
	return nil
}

func (s *Store) finishScan(id string, files, failures int, complete bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("UPDATE scans SET files = ?, failures = ?, complete = ? WHERE id = ?",
		files, failures, complete, id)
	if err != nil {
		return fmt.Errorf("updating scan %s: %w", id, err)
	}
	return nil
}

// Scans returns all recorded runs, newest first.
func (s *Store) Scans() ([]Scan, error) {
	rows, err := s.db.Query("SELECT id, started_at, files, failures, complete FROM scans ORDER BY started_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("querying scans: %w", err)
	}
	defer rows.Close()

	var out []Scan
	for rows.Next() {
		var (
			sc      Scan
			started int64
		)
		if err := rows.Scan(&sc.ID, &started, &sc.Files, &sc.Failures, &sc.Complete); err != nil {
			return nil, fmt.Errorf("reading scan row: %w", err)
		}
		sc.StartedAt = time.Unix(started, 0)
		out = append(out, sc)
	}
	return out, rows.Err()
}
