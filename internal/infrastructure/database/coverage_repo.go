package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"tscatalog/internal/infrastructure/database/sqlc_generated"
	"tscatalog/internal/ports/output"
)

var _ output.CoverageRepository = (*CoverageRepository)(nil)

// TxBeginner is satisfied by *pgxpool.Pool and pgx.Tx.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type CoverageRepository struct {
	db TxBeginner
	q  *sqlc_generated.Queries
}

func NewCoverageRepository(db TxBeginner, q *sqlc_generated.Queries) *CoverageRepository {
	return &CoverageRepository{db: db, q: q}
}

// SaveSnapshots stores all snapshots in one transaction so a report is
// either complete or absent.
func (r *CoverageRepository) SaveSnapshots(ctx context.Context, snapshots []output.CoverageSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		qtx := r.q.WithTx(tx)
		for _, s := range snapshots {
			if err := qtx.InsertCoverageSnapshot(ctx, snapshotToParams(s)); err != nil {
				return fmt.Errorf("insert %s/%s: %w", s.Locale, s.Context, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save coverage snapshots: %w", err)
	}
	return nil
}

func (r *CoverageRepository) LatestSnapshots(ctx context.Context, locale string) ([]output.CoverageSnapshot, error) {
	rows, err := r.q.LatestCoverageSnapshots(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("latest coverage snapshots: %w", err)
	}
	out := make([]output.CoverageSnapshot, len(rows))
	for i := range rows {
		out[i] = snapshotToDomain(rows[i])
	}
	return out, nil
}
