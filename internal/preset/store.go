// Package preset persists named rule presets. Presets carry the public
// string ids for every enum so files stay readable and stable across
// internal refactors; grid contents are never stored.
package preset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"topolife/internal/kernel"
)

// Preset is one saved settings bundle.
type Preset struct {
	Name         string
	Rule         string
	Boundary     string
	Neighborhood string
	Vitality     string

	Threshold        float64
	GhostFactor      float64
	SigmoidSharpness float64
	DecayPower       float64
}

// Config maps the preset onto a simulation config. Enum ids are carried
// verbatim; kernel.Build resolves them leniently.
func (p Preset) Config(w, h int) kernel.Config {
	c := kernel.DefaultConfig()
	c.Width = w
	c.Height = h
	c.Rule = p.Rule
	c.Boundary = p.Boundary
	c.Neighborhood = p.Neighborhood
	c.Vitality = p.Vitality
	return c
}

// Store is a SQLite-backed preset store.
type Store struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewStore creates a store for the given database path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Init opens the database and creates the schema if needed.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("preset: database path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// Save inserts or replaces a preset by name.
func (s *Store) Save(ctx context.Context, p Preset) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}
	if p.Name == "" {
		return errors.New("preset: name is required")
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO presets (name, rule, boundary, neighborhood, vitality,
			threshold, ghost_factor, sigmoid_sharpness, decay_power)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			rule = excluded.rule,
			boundary = excluded.boundary,
			neighborhood = excluded.neighborhood,
			vitality = excluded.vitality,
			threshold = excluded.threshold,
			ghost_factor = excluded.ghost_factor,
			sigmoid_sharpness = excluded.sigmoid_sharpness,
			decay_power = excluded.decay_power
	`, p.Name, p.Rule, p.Boundary, p.Neighborhood, p.Vitality,
		p.Threshold, p.GhostFactor, p.SigmoidSharpness, p.DecayPower)
	return err
}

// Get looks a preset up by name, reporting whether it exists.
func (s *Store) Get(ctx context.Context, name string) (Preset, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return Preset{}, false, err
	}

	var p Preset
	err = db.QueryRowContext(ctx, `
		SELECT name, rule, boundary, neighborhood, vitality,
			threshold, ghost_factor, sigmoid_sharpness, decay_power
		FROM presets WHERE name = ?
	`, name).Scan(&p.Name, &p.Rule, &p.Boundary, &p.Neighborhood, &p.Vitality,
		&p.Threshold, &p.GhostFactor, &p.SigmoidSharpness, &p.DecayPower)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Preset{}, false, nil
		}
		return Preset{}, false, fmt.Errorf("preset: load %s: %w", name, err)
	}
	return p, true, nil
}

// List returns all presets ordered by name.
func (s *Store) List(ctx context.Context) ([]Preset, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT name, rule, boundary, neighborhood, vitality,
			threshold, ghost_factor, sigmoid_sharpness, decay_power
		FROM presets ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Preset
	for rows.Next() {
		var p Preset
		if err := rows.Scan(&p.Name, &p.Rule, &p.Boundary, &p.Neighborhood, &p.Vitality,
			&p.Threshold, &p.GhostFactor, &p.SigmoidSharpness, &p.DecayPower); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes a preset by name, reporting whether it existed.
func (s *Store) Delete(ctx context.Context, name string) (bool, error) {
	db, err := s.getDB()
	if err != nil {
		return false, err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM presets WHERE name = ?`, name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("preset: store is not initialized")
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS presets (
			name TEXT PRIMARY KEY,
			rule TEXT NOT NULL,
			boundary TEXT NOT NULL,
			neighborhood TEXT NOT NULL,
			vitality TEXT NOT NULL,
			threshold REAL NOT NULL,
			ghost_factor REAL NOT NULL,
			sigmoid_sharpness REAL NOT NULL,
			decay_power REAL NOT NULL
		);
	`)
	return err
}
