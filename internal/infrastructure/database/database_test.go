package database

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tscatalog/internal/infrastructure/database/sqlc_generated"
	"tscatalog/internal/ports/output"
)

var errBoom = errors.New("boom")

// fakeDB records Exec calls and fails every query.
type fakeDB struct {
	execs [][]any
}

func (f *fakeDB) Exec(_ context.Context, _ string, args ...interface{}) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, args)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeDB) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, errBoom
}

func (f *fakeDB) QueryRow(context.Context, string, ...interface{}) pgx.Row {
	return nil
}

func TestSnapshotMapping(t *testing.T) {
	taken := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	in := output.CoverageSnapshot{Locale: "de_DE", Context: "awattar", Total: 16, Finished: 15, Unfinished: 1, TakenAt: taken}

	params := snapshotToParams(in)
	assert.Equal(t, int32(16), params.Total)
	assert.True(t, params.TakenAt.Valid)

	row := sqlc_generated.CoverageSnapshot{
		ID: 7, Locale: params.Locale, Context: params.Context,
		Total: params.Total, Finished: params.Finished, Unfinished: params.Unfinished,
		Stale: params.Stale, TakenAt: params.TakenAt,
	}
	assert.Equal(t, in, snapshotToDomain(row))
}

func TestTimestampMapping(t *testing.T) {
	assert.False(t, timeToPgtype(time.Time{}).Valid)
	assert.True(t, pgtypeTimestamptzToTime(pgtype.Timestamptz{}).IsZero())
}

func TestMissRepositoryRecordMiss(t *testing.T) {
	db := &fakeDB{}
	repo := NewMissRepository(sqlc_generated.New(db))

	require.NoError(t, repo.RecordMiss(context.Background(), "de_DE", "awattar", "Offline"))
	require.Len(t, db.execs, 1)
	assert.Equal(t, []any{"de_DE", "awattar", "Offline"}, db.execs[0])
}

func TestMissRepositoryTopMisses(t *testing.T) {
	repo := NewMissRepository(sqlc_generated.New(&fakeDB{}))

	got, err := repo.TopMisses(context.Background(), "de_DE", 0)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = repo.TopMisses(context.Background(), "de_DE", 10)
	assert.ErrorIs(t, err, errBoom)
}

func TestCoverageRepositoryLatestError(t *testing.T) {
	repo := NewCoverageRepository(nil, sqlc_generated.New(&fakeDB{}))

	_, err := repo.LatestSnapshots(context.Background(), "de_DE")
	assert.ErrorIs(t, err, errBoom)
	assert.NoError(t, repo.SaveSnapshots(context.Background(), nil))
}

// TestPostgresRoundTrip needs a disposable database in TEST_DATABASE_URL.
func TestPostgresRoundTrip(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	_, file, _, _ := runtime.Caller(0)
	migrations := filepath.Join(filepath.Dir(file), "..", "..", "..", "migrations")
	require.NoError(t, RunMigrations(dsn, migrations, logger))

	pool, err := NewPool(ctx, dsn, logger)
	require.NoError(t, err)
	defer pool.Close()
	_, err = pool.Exec(ctx, "TRUNCATE coverage_snapshots, lookup_misses")
	require.NoError(t, err)

	q := sqlc_generated.New(pool)
	coverage := NewCoverageRepository(pool, q)
	misses := NewMissRepository(q)

	older := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(24 * time.Hour)
	require.NoError(t, coverage.SaveSnapshots(ctx, []output.CoverageSnapshot{
		{Locale: "de_DE", Context: "awattar", Total: 16, Finished: 10, Unfinished: 6, TakenAt: older},
		{Locale: "de_DE", Context: "awattar", Total: 16, Finished: 15, Unfinished: 1, TakenAt: newer},
		{Locale: "de_DE", Context: "DevicePluginAwattar", Total: 4, Finished: 4, TakenAt: newer},
	}))
	latest, err := coverage.LatestSnapshots(ctx, "de_DE")
	require.NoError(t, err)
	require.Len(t, latest, 2)
	finished := map[string]int{}
	for _, s := range latest {
		finished[s.Context] = s.Finished
		assert.True(t, s.TakenAt.Equal(newer))
	}
	assert.Equal(t, map[string]int{"awattar": 15, "DevicePluginAwattar": 4}, finished)

	for i := 0; i < 3; i++ {
		require.NoError(t, misses.RecordMiss(ctx, "de_DE", "awattar", "Offline"))
	}
	require.NoError(t, misses.RecordMiss(ctx, "de_DE", "awattar", "Standby"))
	top, err := misses.TopMisses(ctx, "de_DE", 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Offline", top[0].Source)
	assert.Equal(t, int64(3), top[0].Hits)
}
