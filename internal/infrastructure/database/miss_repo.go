package database

import (
	"context"
	"fmt"
	"math"

	"tscatalog/internal/infrastructure/database/sqlc_generated"
	"tscatalog/internal/ports/output"
)

var _ output.MissRepository = (*MissRepository)(nil)

type MissRepository struct {
	q *sqlc_generated.Queries
}

func NewMissRepository(q *sqlc_generated.Queries) *MissRepository {
	return &MissRepository{q: q}
}

func (r *MissRepository) RecordMiss(ctx context.Context, locale, contextName, source string) error {
	err := r.q.RecordMiss(ctx, sqlc_generated.RecordMissParams{
		Locale:  locale,
		Context: contextName,
		Source:  source,
	})
	if err != nil {
		return fmt.Errorf("record miss: %w", err)
	}
	return nil
}

// TopMisses returns the most frequent misses for locale. A non-positive
// limit yields nothing.
func (r *MissRepository) TopMisses(ctx context.Context, locale string, limit int) ([]output.Miss, error) {
	if limit <= 0 {
		return nil, nil
	}
	if limit > math.MaxInt32 {
		limit = math.MaxInt32
	}
	rows, err := r.q.TopMisses(ctx, sqlc_generated.TopMissesParams{Locale: locale, Limit: int32(limit)})
	if err != nil {
		return nil, fmt.Errorf("top misses: %w", err)
	}
	out := make([]output.Miss, len(rows))
	for i := range rows {
		out[i] = missToDomain(rows[i])
	}
	return out, nil
}
