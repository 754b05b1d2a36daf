// Package store persists a road network snapshot in SQLite so the binary and
// the HTTP facade can start without re-parsing the route file.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/multiroute/network"
	_ "modernc.org/sqlite"
)

// ErrEmptySnapshot is returned by Load when no cities were saved.
var ErrEmptySnapshot = errors.New("store: snapshot is empty")

// Store wraps a SQLite database connection.
type Store struct {
	sql    *sql.DB
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for migration and snapshot messages.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open opens (or creates) the SQLite database at path and runs migrations.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	s := &Store{sql: sqlDB, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.migrate(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	s.logger.Debug("store opened", "path", path)

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.sql.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	version := 0
	// Missing table on a fresh file leaves version at 0.
	_ = s.sql.QueryRowContext(ctx, "SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := s.sql.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS cities (
				id   INTEGER PRIMARY KEY,
				name TEXT NOT NULL UNIQUE
			);

			CREATE TABLE IF NOT EXISTS roads (
				city_a   INTEGER NOT NULL REFERENCES cities(id),
				city_b   INTEGER NOT NULL REFERENCES cities(id),
				distance INTEGER NOT NULL CHECK (distance >= 0),
				time     INTEGER NOT NULL CHECK (time >= 0),
				cost     INTEGER NOT NULL CHECK (cost >= 0),
				PRIMARY KEY (city_a, city_b)
			);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
		s.logger.Info("applied migration", "version", 1)
	}

	return nil
}

// Save replaces the stored snapshot with n's cities and roads in a single
// transaction.
func (s *Store) Save(ctx context.Context, n *network.Network) error {
	if n == nil {
		return errors.New("store: nil network")
	}
	cities, roads := n.Cities(), n.Roads()

	tx, err := s.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM roads"); err != nil {
		return fmt.Errorf("clear roads: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM cities"); err != nil {
		return fmt.Errorf("clear cities: %w", err)
	}

	cityStmt, err := tx.PrepareContext(ctx, "INSERT INTO cities (id, name) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare cities: %w", err)
	}
	defer cityStmt.Close()
	for _, c := range cities {
		if _, err := cityStmt.ExecContext(ctx, c.ID, c.Name); err != nil {
			return fmt.Errorf("insert city %d: %w", c.ID, err)
		}
	}

	roadStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO roads (city_a, city_b, distance, time, cost) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare roads: %w", err)
	}
	defer roadStmt.Close()
	for _, r := range roads {
		if _, err := roadStmt.ExecContext(ctx, r.A, r.B, r.Distance, r.Time, r.Cost); err != nil {
			return fmt.Errorf("insert road %d-%d: %w", r.A, r.B, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.logger.Info("snapshot saved", "cities", len(cities), "roads", len(roads))

	return nil
}

// Load rebuilds a network from the stored snapshot. opts are passed to
// network.Build.
func (s *Store) Load(ctx context.Context, opts ...network.Option) (*network.Network, error) {
	cities, err := s.loadCities(ctx)
	if err != nil {
		return nil, err
	}
	if len(cities) == 0 {
		return nil, ErrEmptySnapshot
	}
	roads, err := s.loadRoads(ctx)
	if err != nil {
		return nil, err
	}

	n, err := network.Build(cities, roads, opts...)
	if err != nil {
		return nil, fmt.Errorf("store: rebuild network: %w", err)
	}
	s.logger.Debug("snapshot loaded", "cities", len(cities), "roads", len(roads))

	return n, nil
}

func (s *Store) loadCities(ctx context.Context) ([]network.City, error) {
	rows, err := s.sql.QueryContext(ctx, "SELECT id, name FROM cities ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query cities: %w", err)
	}
	defer rows.Close()

	var out []network.City
	for rows.Next() {
		var c network.City
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (s *Store) loadRoads(ctx context.Context) ([]network.Road, error) {
	rows, err := s.sql.QueryContext(ctx,
		"SELECT city_a, city_b, distance, time, cost FROM roads ORDER BY city_a, city_b")
	if err != nil {
		return nil, fmt.Errorf("query roads: %w", err)
	}
	defer rows.Close()

	var out []network.Road
	for rows.Next() {
		var r network.Road
		if err := rows.Scan(&r.A, &r.B, &r.Distance, &r.Time, &r.Cost); err != nil {
			return nil, fmt.Errorf("scan road: %w", err)
		}
		out = append(out, r)
	}

	return out, rows.Err()
}
