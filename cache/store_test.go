package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/areanav/grid"
	"github.com/katalvlaran/areanav/mapfile"
	"github.com/katalvlaran/areanav/navmap"
)

var corridor = []string{
	"..........",
	"..........",
	"..........",
	"..........",
	"@@.@@@@@@@",
	"..........",
	"..........",
	"..........",
	"@@@@@@@.@@",
	"..........",
	"..........",
}

func openStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "cache.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func fresh(t *testing.T, rows ...string) *navmap.Map {
	t.Helper()
	src, err := mapfile.FromRows("corridor", rows...)
	require.NoError(t, err)
	m, err := navmap.New(src)
	require.NoError(t, err)

	return m
}

func groupStrings(m *navmap.Map) []string {
	var out []string
	for _, g := range m.Groups() {
		out = append(out, g.String())
	}

	return out
}

func TestOpen_Migrates(t *testing.T) {
	s := openStore(t)
	v, dirty, err := s.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), v)
	assert.False(t, dirty)

	// reopening an existing database is a no-op migration
	path := filepath.Join(t.TempDir(), "again.db")
	s1, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())
	s2, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	want := fresh(t, corridor...)
	hit, err := s.LoadOrCompute(ctx, want)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 3, want.AreaCount())

	digests, err := s.Digests(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{want.Digest()}, digests)

	got := fresh(t, corridor...)
	hit, err = s.LoadOrCompute(ctx, got)
	require.NoError(t, err)
	assert.True(t, hit)

	assert.Equal(t, want.Areas().Values(), got.Areas().Values())
	assert.Equal(t, want.AreaCount(), got.AreaCount())
	assert.Equal(t, groupStrings(want), groupStrings(got))
	assert.Equal(t, want.AreaGraph().Edges(), got.AreaGraph().Edges())
	assert.Equal(t, want.Snapshot().GroupEdges, got.Snapshot().GroupEdges)
	assert.ElementsMatch(t, want.PortalSquares(), got.PortalSquares())
}

func TestStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	m := fresh(t, corridor...)
	require.NoError(t, m.ComputeMap())

	require.NoError(t, s.Save(ctx, m))
	require.NoError(t, s.Save(ctx, m))

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM portals WHERE map_id = ?`, m.Digest()).Scan(&n))
	total := 0
	for _, g := range m.Groups() {
		total += g.Len()
	}
	assert.Equal(t, total, n)
}

func TestStore_Miss(t *testing.T) {
	s := openStore(t)
	hit, err := s.Load(context.Background(), fresh(t, corridor...))
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestStore_DiscardsCorruptBundle(t *testing.T) {
	ctx := context.Background()
	obs, logs := observer.New(zapcore.WarnLevel)
	s := openStore(t, WithLogger(zap.New(obs)))

	m := fresh(t, corridor...)
	_, err := s.LoadOrCompute(ctx, m)
	require.NoError(t, err)

	_, err = s.db.Exec(`UPDATE portals SET area1 = 99 WHERE map_id = ?`, m.Digest())
	require.NoError(t, err)

	hit, err := s.Load(ctx, fresh(t, corridor...))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 1, logs.FilterMessage("discarding cached bundle").Len())

	digests, err := s.Digests(ctx)
	require.NoError(t, err)
	assert.Empty(t, digests)
}

func TestStore_DiscardsBadLabels(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	m := fresh(t, corridor...)
	_, err := s.LoadOrCompute(ctx, m)
	require.NoError(t, err)

	_, err = s.db.Exec(`UPDATE maps SET areas = ? WHERE map_id = ?`, []byte{1, 2}, m.Digest())
	require.NoError(t, err)

	hit, err := s.Load(ctx, fresh(t, corridor...))
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestStore_Mismatch(t *testing.T) {
	ctx := context.Background()
	obs, logs := observer.New(zapcore.WarnLevel)
	s := openStore(t, WithLogger(zap.New(obs)))
	m := fresh(t, corridor...)
	_, err := s.LoadOrCompute(ctx, m)
	require.NoError(t, err)

	// same digest, different terrain
	terrain := m.Source().Terrain.Clone()
	terrain.SetAt(grid.C(0, 0), '@')
	other, err := navmap.New(&mapfile.Map{Name: "forged", Terrain: terrain, Digest: m.Digest()})
	require.NoError(t, err)

	hit, err := s.LoadOrCompute(ctx, other)
	require.NoError(t, err)
	assert.False(t, hit)
	require.Equal(t, 1, logs.Len())
	assert.ErrorIs(t, logs.All()[0].Context[1].Interface.(error), ErrMismatch)
	assert.Equal(t, 0, other.Area(grid.C(0, 0)))

	// the forged map now owns the digest
	hit, err = s.Load(ctx, fresh(t, corridor...))
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	m := fresh(t, corridor...)
	_, err := s.LoadOrCompute(ctx, m)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, m.Digest()))
	require.NoError(t, s.Delete(ctx, "absent"))
	hit, err := s.Load(ctx, fresh(t, corridor...))
	require.NoError(t, err)
	assert.False(t, hit)
}
