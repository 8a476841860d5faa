package cache

import (
	"bytes"
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/areanav/core"
	"github.com/katalvlaran/areanav/grid"
	"github.com/katalvlaran/areanav/navmap"
	"github.com/katalvlaran/areanav/portal"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store is a SQLite-backed bundle cache.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Open opens (creating if needed) the database at path and migrates it to
// the latest schema.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open cache %s: %w", path, err)
	}
	if err := s.migrateUp(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) newMigrate() (*migrate.Migrate, error) {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create sqlite driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	m.Log = &migrateLogger{log: s.log.Sugar()}

	return m, nil
}

// migrateUp applies pending migrations. The migrate instance is not closed:
// that would close the shared database handle.
func (s *Store) migrateUp() error {
	m, err := s.newMigrate()
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}

	return nil
}

// SchemaVersion returns the applied schema version.
func (s *Store) SchemaVersion() (uint, bool, error) {
	m, err := s.newMigrate()
	if err != nil {
		return 0, false, err
	}
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	return v, dirty, err
}

// Save stores the derived state of m, replacing any bundle with the same
// digest.
func (s *Store) Save(ctx context.Context, m *navmap.Map) (err error) {
	snap := m.Snapshot()
	id := m.Digest()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = deleteBundle(ctx, tx, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO maps (map_id, name, width, height, terrain, areas, area_count) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, m.Name(), m.Width(), m.Height(), m.Source().Terrain.Values(), encodeLabels(snap.Areas), snap.AreaCount,
	); err != nil {
		return fmt.Errorf("save map %s: %w", m.Name(), err)
	}

	for _, g := range snap.Groups {
		if _, err = tx.ExecContext(ctx, `INSERT INTO portal_groups (map_id, group_id) VALUES (?, ?)`, id, g.ID()); err != nil {
			return err
		}
		for seq, p := range g.Portals() {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO portals (map_id, group_id, seq, x1, y1, area1, x2, y2, area2) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				id, g.ID(), seq,
				p.Cells[0].X, p.Cells[0].Y, p.Areas[0],
				p.Cells[1].X, p.Cells[1].Y, p.Areas[1],
			); err != nil {
				return err
			}
		}
	}
	for seq, e := range snap.AreaEdges {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO area_edges (map_id, seq, area_a, area_b) VALUES (?, ?, ?, ?)`,
			id, seq, e.From, e.To,
		); err != nil {
			return err
		}
	}
	for seq, e := range snap.GroupEdges {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO portal_edges (map_id, seq, group_a, group_b, distance) VALUES (?, ?, ?, ?, ?)`,
			id, seq, e.A, e.B, e.Distance,
		); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	s.log.Debug("bundle saved",
		zap.String("map", m.Name()),
		zap.String("digest", id),
		zap.Int("groups", len(snap.Groups)),
	)

	return nil
}

// Load installs the cached bundle for m's digest. It reports false when no
// usable bundle exists. A bundle whose terrain differs from m's or that fails
// verification is logged, deleted and reported as a miss.
func (s *Store) Load(ctx context.Context, m *navmap.Map) (bool, error) {
	snap, err := s.read(ctx, m)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err == nil {
		err = m.Restore(snap)
	}
	if err != nil {
		s.log.Warn("discarding cached bundle", zap.String("map", m.Name()), zap.Error(err))
		if derr := s.Delete(ctx, m.Digest()); derr != nil {
			return false, derr
		}
		return false, nil
	}
	s.log.Debug("bundle loaded", zap.String("map", m.Name()), zap.Int("areas", snap.AreaCount))

	return true, nil
}

// LoadOrCompute loads m from the cache or computes and saves it. It reports
// whether the cache was hit.
func (s *Store) LoadOrCompute(ctx context.Context, m *navmap.Map) (bool, error) {
	hit, err := s.Load(ctx, m)
	if err != nil || hit {
		return hit, err
	}
	if err := m.ComputeMap(); err != nil {
		return false, err
	}

	return false, s.Save(ctx, m)
}

// Delete removes the bundle with the given digest.
func (s *Store) Delete(ctx context.Context, digest string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := deleteBundle(ctx, tx, digest); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// Digests lists the cached map digests.
func (s *Store) Digests(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT map_id FROM maps ORDER BY map_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}

	return out, rows.Err()
}

func deleteBundle(ctx context.Context, tx *sql.Tx, id string) error {
	for _, table := range []string{"portal_edges", "area_edges", "portals", "portal_groups", "maps"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE map_id = ?`, id); err != nil {
			return fmt.Errorf("delete from %s: %w", table, err)
		}
	}

	return nil
}

// read assembles a snapshot for m from the stored rows.
func (s *Store) read(ctx context.Context, m *navmap.Map) (*navmap.Snapshot, error) {
	id := m.Digest()
	var (
		width, height, count int
		terrain, labels      []byte
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT width, height, terrain, areas, area_count FROM maps WHERE map_id = ?`, id,
	).Scan(&width, &height, &terrain, &labels, &count)
	if err != nil {
		return nil, err
	}
	if width != m.Width() || height != m.Height() || !bytes.Equal(terrain, m.Source().Terrain.Values()) {
		return nil, fmt.Errorf("%w: %s", ErrMismatch, m.Name())
	}
	areas, err := decodeLabels(labels, width, height)
	if err != nil {
		return nil, err
	}

	groups, err := s.readGroups(ctx, id)
	if err != nil {
		return nil, err
	}
	areaEdges, err := s.readAreaEdges(ctx, id)
	if err != nil {
		return nil, err
	}
	groupEdges, err := s.readGroupEdges(ctx, id)
	if err != nil {
		return nil, err
	}

	ids := make([]int, count)
	for i := range ids {
		ids[i] = i + 1
	}

	return &navmap.Snapshot{
		Areas:      areas,
		AreaCount:  count,
		AreaIDs:    ids,
		AreaEdges:  areaEdges,
		Groups:     groups,
		GroupEdges: groupEdges,
	}, nil
}

func (s *Store) readGroups(ctx context.Context, id string) ([]*portal.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT group_id, x1, y1, area1, x2, y2, area2 FROM portals WHERE map_id = ? ORDER BY group_id, seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		groups  []*portal.Group
		current []portal.Portal
		gid     = -1
	)
	flush := func() error {
		if gid < 0 {
			return nil
		}
		g, err := portal.RestoreGroup(gid, current)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		groups = append(groups, g)
		current = nil

		return nil
	}
	for rows.Next() {
		var (
			g      int
			c1, c2 grid.Cell
			a1, a2 int
		)
		if err := rows.Scan(&g, &c1.X, &c1.Y, &a1, &c2.X, &c2.Y, &a2); err != nil {
			return nil, err
		}
		if g != gid {
			if err := flush(); err != nil {
				return nil, err
			}
			gid = g
		}
		p, err := portal.NewPortal(c1, c2, a1, a2)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		current = append(current, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return groups, nil
}

func (s *Store) readAreaEdges(ctx context.Context, id string) ([]core.Pair[int], error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT area_a, area_b FROM area_edges WHERE map_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []core.Pair[int]
	for rows.Next() {
		var e core.Pair[int]
		if err := rows.Scan(&e.From, &e.To); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

func (s *Store) readGroupEdges(ctx context.Context, id string) ([]portal.GroupEdge, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT group_a, group_b, distance FROM portal_edges WHERE map_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []portal.GroupEdge
	for rows.Next() {
		var e portal.GroupEdge
		if err := rows.Scan(&e.A, &e.B, &e.Distance); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// migrateLogger routes migrate output to zap.
type migrateLogger struct {
	log *zap.SugaredLogger
}

func (l *migrateLogger) Printf(format string, v ...interface{}) {
	l.log.Debugf("[migrate] "+format, v...)
}

func (l *migrateLogger) Verbose() bool { return false }
