package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"tscatalog/internal/infrastructure/database/sqlc_generated"
	"tscatalog/internal/ports/output"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtype(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func snapshotToDomain(s sqlc_generated.CoverageSnapshot) output.CoverageSnapshot {
	return output.CoverageSnapshot{
		Locale:     s.Locale,
		Context:    s.Context,
		Total:      int(s.Total),
		Finished:   int(s.Finished),
		Unfinished: int(s.Unfinished),
		Stale:      int(s.Stale),
		TakenAt:    pgtypeTimestamptzToTime(s.TakenAt),
	}
}

func snapshotToParams(s output.CoverageSnapshot) sqlc_generated.InsertCoverageSnapshotParams {
	return sqlc_generated.InsertCoverageSnapshotParams{
		Locale:     s.Locale,
		Context:    s.Context,
		Total:      int32(s.Total),
		Finished:   int32(s.Finished),
		Unfinished: int32(s.Unfinished),
		Stale:      int32(s.Stale),
		TakenAt:    timeToPgtype(s.TakenAt),
	}
}

func missToDomain(m sqlc_generated.LookupMiss) output.Miss {
	return output.Miss{
		Locale:    m.Locale,
		Context:   m.Context,
		Source:    m.Source,
		Hits:      m.Hits,
		FirstSeen: pgtypeTimestamptzToTime(m.FirstSeen),
		LastSeen:  pgtypeTimestamptzToTime(m.LastSeen),
	}
}
