package output

import (
	"context"
	"time"
)

// CoverageSnapshot is one context's translation progress at a point in time.
type CoverageSnapshot struct {
	Locale     string
	Context    string
	Total      int
	Finished   int
	Unfinished int
	Stale      int
	TakenAt    time.Time
}

type CoverageRepository interface {
	SaveSnapshots(ctx context.Context, snapshots []CoverageSnapshot) error
	LatestSnapshots(ctx context.Context, locale string) ([]CoverageSnapshot, error)
}

// Miss counts lookups of a (context, source) pair that has no catalog entry.
type Miss struct {
	Locale    string
	Context   string
	Source    string
	Hits      int64
	FirstSeen time.Time
	LastSeen  time.Time
}

type MissRepository interface {
	RecordMiss(ctx context.Context, locale, contextName, source string) error
	TopMisses(ctx context.Context, locale string, limit int) ([]Miss, error)
}
