// SPDX-License-Identifier: MIT

// Package store persists named pit parameter sets in a SQLite database.
//
// Each preset is stored as the canonical JSON produced by pit.EncodeJSON and
// decoded with the same strict codec on the way out, so a stored preset is
// exactly as valid as a file on disk. Built-in preset names are reserved.
package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/tokapit/pit"
)

// Sentinel errors.
var (
	ErrNotFound    = errors.New("store: preset not found")
	ErrReserved    = errors.New("store: name is reserved for a built-in preset")
	ErrInvalidName = errors.New("store: invalid preset name")
)

// Entry is one stored preset without its parameters.
type Entry struct {
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is a SQLite-backed preset store. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS presets (
	name       TEXT PRIMARY KEY,
	params     TEXT NOT NULL,
	updated_at DATETIME NOT NULL
)`

// Open opens or creates the database at path. Use ":memory:" for a
// throwaway store.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// One connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		schema,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: init %s: %w", path, err)
		}
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts or replaces the preset called name.
func (s *Store) Save(ctx context.Context, name string, p pit.Params) error {
	if err := checkName(name); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := pit.EncodeJSON(&buf, p); err != nil {
		return fmt.Errorf("store: save %q: %w", name, err)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO presets (name, params, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET params = excluded.params, updated_at = excluded.updated_at`,
		name, buf.String(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("store: save %q: %w", name, err)
	}

	return nil
}

// Get returns the preset called name, or ErrNotFound.
func (s *Store) Get(ctx context.Context, name string) (pit.Params, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT params FROM presets WHERE name = ?", name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return pit.Params{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return pit.Params{}, fmt.Errorf("store: get %q: %w", name, err)
	}

	p, err := pit.DecodeJSON(strings.NewReader(raw))
	if err != nil {
		return pit.Params{}, fmt.Errorf("store: get %q: %w", name, err)
	}

	return p, nil
}

// List returns every stored preset ordered by name.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, updated_at FROM presets ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	out := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("store: list: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}

	return out, nil
}

// Delete removes the preset called name, or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM presets WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("store: delete %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return nil
}

// Resolve returns the built-in preset called name, falling back to the
// store. A nil store resolves built-ins only.
func (s *Store) Resolve(ctx context.Context, name string) (pit.Params, error) {
	if pit.IsBuiltin(name) {
		return pit.Preset(name)
	}
	if s == nil {
		return pit.Params{}, fmt.Errorf("%w: %q", pit.ErrUnknownPreset, name)
	}

	return s.Get(ctx, name)
}

func checkName(name string) error {
	switch {
	case strings.TrimSpace(name) == "" || name != strings.TrimSpace(name):
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, "/\\\n\t"):
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case pit.IsBuiltin(name):
		return fmt.Errorf("%w: %q", ErrReserved, name)
	}

	return nil
}
