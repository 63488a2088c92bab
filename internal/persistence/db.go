// Package persistence keeps a SQLite ledger of generated maps: which seed
// and profile produced them, how consistent they came out, and their
// terrain distribution.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hexfront/internal/world"
)

// ErrRunNotFound is returned for a run ID the ledger has never seen.
var ErrRunNotFound = errors.New("persistence: run not found")

// DB wraps a SQLite connection for the generation ledger.
type DB struct {
	conn *sqlx.DB
}

// Generation is one synthesized map as recorded in the ledger.
type Generation struct {
	RunID      string  `db:"run_id"`
	Seed       int64   `db:"seed"`
	Profile    string  `db:"profile"`
	Width      int     `db:"width"`
	Height     int     `db:"height"`
	TileCount  int     `db:"tile_count"`
	Violations int     `db:"violations"`
	Closure    float64 `db:"closure"`
	CreatedAt  int64   `db:"created_at"` // unix nanoseconds

	Counts      map[world.TerrainKind]int `db:"-"`
	Settlements []world.SettlementSeed    `db:"-"`
}

// Created returns CreatedAt as a time.
func (g Generation) Created() time.Time {
	return time.Unix(0, g.CreatedAt)
}

// SettlementRow is a settlement stored alongside a run.
type SettlementRow struct {
	RunID string `db:"run_id"`
	ID    uint64 `db:"id"`
	Name  string `db:"name"`
	Col   int    `db:"pos_col"`
	Row   int    `db:"pos_row"`
	Size  string `db:"size"`
}

// Summarize builds a ledger record for a freshly synthesized map under a
// new run ID.
func Summarize(m *world.Map, cfg world.GenConfig, settlements []world.SettlementSeed) Generation {
	profile := cfg.Profile.Name
	if profile == "" {
		profile = world.DefaultRegistry().Default().Name
	}
	return Generation{
		RunID:       uuid.NewString(),
		Seed:        cfg.Seed,
		Profile:     profile,
		Width:       m.Bounds.Width,
		Height:      m.Bounds.Height,
		TileCount:   m.TileCount(),
		Violations:  len(world.AdjacencyViolations(m)),
		Closure:     world.InteriorClosure(m),
		CreatedAt:   time.Now().UnixNano(),
		Counts:      world.TerrainCounts(m),
		Settlements: settlements,
	}
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS generations (
		run_id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		profile TEXT NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		tile_count INTEGER NOT NULL,
		violations INTEGER NOT NULL,
		closure REAL NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS terrain_counts (
		run_id TEXT NOT NULL REFERENCES generations(run_id),
		kind TEXT NOT NULL,
		count INTEGER NOT NULL,
		PRIMARY KEY (run_id, kind)
	);

	CREATE TABLE IF NOT EXISTS settlements (
		run_id TEXT NOT NULL REFERENCES generations(run_id),
		id INTEGER NOT NULL,
		name TEXT NOT NULL,
		pos_col INTEGER NOT NULL,
		pos_row INTEGER NOT NULL,
		size TEXT NOT NULL,
		PRIMARY KEY (run_id, id)
	);

	CREATE TABLE IF NOT EXISTS ledger_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_generations_created ON generations(created_at);
	CREATE INDEX IF NOT EXISTS idx_generations_profile ON generations(profile);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// RecordGeneration writes a run, its terrain counts and its settlements
// in one transaction.
func (db *DB) RecordGeneration(g Generation) error {
	if g.RunID == "" {
		return fmt.Errorf("record generation: empty run id")
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.NamedExec(`INSERT INTO generations
		(run_id, seed, profile, width, height, tile_count, violations, closure, created_at)
		VALUES (:run_id, :seed, :profile, :width, :height, :tile_count, :violations, :closure, :created_at)`, g)
	if err != nil {
		return fmt.Errorf("insert generation %s: %w", g.RunID, err)
	}

	stmt, err := tx.Preparex("INSERT INTO terrain_counts (run_id, kind, count) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, k := range world.SortedKinds(g.Counts) {
		if _, err := stmt.Exec(g.RunID, k.String(), g.Counts[k]); err != nil {
			return fmt.Errorf("insert terrain count %s: %w", k, err)
		}
	}

	for _, s := range g.Settlements {
		_, err := tx.Exec(
			"INSERT INTO settlements (run_id, id, name, pos_col, pos_row, size) VALUES (?, ?, ?, ?, ?, ?)",
			g.RunID, s.ID, s.Name, s.Coord.Col, s.Coord.Row, s.Size.String(),
		)
		if err != nil {
			return fmt.Errorf("insert settlement %d: %w", s.ID, err)
		}
	}

	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO ledger_meta (key, value) VALUES ('last_run', ?)", g.RunID,
	); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Info("generation recorded", "run", g.RunID, "seed", g.Seed, "profile", g.Profile, "tiles", g.TileCount)
	return nil
}

// ListGenerations returns the most recent runs, newest first. A limit of
// zero or less returns every run. Counts and Settlements are not loaded.
func (db *DB) ListGenerations(limit int) ([]Generation, error) {
	if limit <= 0 {
		limit = -1
	}
	var gens []Generation
	err := db.conn.Select(&gens,
		`SELECT run_id, seed, profile, width, height, tile_count, violations, closure, created_at
		FROM generations ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	return gens, nil
}

// LastRun returns the ID of the most recently recorded run.
func (db *DB) LastRun() (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM ledger_meta WHERE key = 'last_run'")
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrRunNotFound
	}
	return value, err
}

// TerrainCounts returns the per-kind tile counts recorded for a run.
func (db *DB) TerrainCounts(runID string) (map[world.TerrainKind]int, error) {
	if err := db.requireRun(runID); err != nil {
		return nil, err
	}

	var rows []struct {
		Kind  string `db:"kind"`
		Count int    `db:"count"`
	}
	if err := db.conn.Select(&rows, "SELECT kind, count FROM terrain_counts WHERE run_id = ?", runID); err != nil {
		return nil, fmt.Errorf("terrain counts %s: %w", runID, err)
	}

	counts := make(map[world.TerrainKind]int, len(rows))
	for _, r := range rows {
		k, err := world.ParseTerrainKind(r.Kind)
		if err != nil {
			return nil, fmt.Errorf("terrain counts %s: %w", runID, err)
		}
		counts[k] = r.Count
	}
	return counts, nil
}

// Settlements returns the settlements recorded for a run, by ID.
func (db *DB) Settlements(runID string) ([]SettlementRow, error) {
	if err := db.requireRun(runID); err != nil {
		return nil, err
	}
	var rows []SettlementRow
	err := db.conn.Select(&rows,
		"SELECT run_id, id, name, pos_col, pos_row, size FROM settlements WHERE run_id = ? ORDER BY id",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("settlements %s: %w", runID, err)
	}
	return rows, nil
}

func (db *DB) requireRun(runID string) error {
	var n int
	if err := db.conn.Get(&n, "SELECT COUNT(*) FROM generations WHERE run_id = ?", runID); err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}
