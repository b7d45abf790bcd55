package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"tscatalog/internal/domain"
	"tscatalog/internal/domain/entities"
	"tscatalog/internal/ports/input"
	"tscatalog/internal/ports/output"
)

var _ input.CatalogUseCase = (*CatalogService)(nil)

// CatalogService answers lookups and coverage questions. The repositories are
// optional; without them misses are only logged and snapshots not kept.
type CatalogService struct {
	registry     *Registry
	coverageRepo output.CoverageRepository
	missRepo     output.MissRepository
	logger       *slog.Logger
	now          func() time.Time
}

func NewCatalogService(
	registry *Registry,
	coverageRepo output.CoverageRepository,
	missRepo output.MissRepository,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		registry:     registry,
		coverageRepo: coverageRepo,
		missRepo:     missRepo,
		logger:       logger.With("module", "catalog"),
		now:          time.Now,
	}
}

func (s *CatalogService) Translate(ctx context.Context, locale, contextName, source string) string {
	text, _ := s.Lookup(ctx, locale, contextName, source)
	return text
}

func (s *CatalogService) Lookup(ctx context.Context, locale, contextName, source string) (string, error) {
	idx := s.registry.Index(locale)
	text, err := idx.Lookup(contextName, source)
	if err != nil {
		s.recordMiss(ctx, idx, contextName, source)
	}
	return text, err
}

func (s *CatalogService) Message(ctx context.Context, locale, contextName, source string) (*entities.Message, error) {
	idx := s.registry.Index(locale)
	m, err := idx.Find(contextName, source)
	if err != nil {
		s.recordMiss(ctx, idx, contextName, source)
		return nil, err
	}
	return m, nil
}

func (s *CatalogService) recordMiss(ctx context.Context, idx *CatalogIndex, contextName, source string) {
	locale := idx.Catalog().Locale
	s.logger.Debug("lookup miss",
		slog.String("locale", locale),
		slog.String("context", contextName),
		slog.String("source", source))
	if s.missRepo == nil {
		return
	}
	if err := s.missRepo.RecordMiss(ctx, locale, contextName, source); err != nil {
		s.logger.Warn("failed to record lookup miss", slog.Any("error", err))
	}
}

func (s *CatalogService) Coverage(ctx context.Context, locale string) (entities.CoverageReport, error) {
	idx, ok := s.registry.Resolve(locale)
	if !ok {
		return entities.CoverageReport{}, fmt.Errorf("coverage %q: %w", locale, domain.ErrLocaleNotFound)
	}
	return BuildCoverage(idx.Catalog()), nil
}

// ContextCoverage narrows Coverage to one context.
func (s *CatalogService) ContextCoverage(ctx context.Context, locale, contextName string) (entities.ContextCoverage, error) {
	report, err := s.Coverage(ctx, locale)
	if err != nil {
		return entities.ContextCoverage{}, err
	}
	if only, ok := report.Only(contextName); ok {
		return only.Totals, nil
	}
	return entities.ContextCoverage{}, fmt.Errorf("coverage %q in %s: %w", contextName, report.Locale, domain.ErrContextUnknown)
}

// SnapshotCoverage builds a report for every locale and stores it when a
// coverage repository is configured.
func (s *CatalogService) SnapshotCoverage(ctx context.Context) ([]entities.CoverageReport, error) {
	takenAt := s.now()
	reports := make([]entities.CoverageReport, 0, len(s.registry.Locales()))
	var snapshots []output.CoverageSnapshot
	for _, tag := range s.registry.Locales() {
		idx, ok := s.registry.Resolve(tag.String())
		if !ok {
			continue
		}
		report := BuildCoverage(idx.Catalog())
		reports = append(reports, report)
		for _, c := range report.Contexts {
			snapshots = append(snapshots, output.CoverageSnapshot{
				Locale:     report.Locale,
				Context:    c.Name,
				Total:      c.Total,
				Finished:   c.Finished,
				Unfinished: c.Unfinished,
				Stale:      c.Stale,
				TakenAt:    takenAt,
			})
		}
	}
	if s.coverageRepo == nil || len(snapshots) == 0 {
		return reports, nil
	}
	for i := range reports {
		reports[i].Previous = s.previousTotals(ctx, reports[i].Locale)
	}
	if err := s.coverageRepo.SaveSnapshots(ctx, snapshots); err != nil {
		return reports, fmt.Errorf("save coverage snapshots: %w", err)
	}
	return reports, nil
}

// previousTotals sums the latest stored snapshot of locale, nil when none is
// stored or it cannot be read.
func (s *CatalogService) previousTotals(ctx context.Context, locale string) *entities.ContextCoverage {
	snapshots, err := s.coverageRepo.LatestSnapshots(ctx, locale)
	if err != nil {
		s.logger.Warn("failed to read previous coverage", slog.String("locale", locale), slog.Any("error", err))
		return nil
	}
	if len(snapshots) == 0 {
		return nil
	}
	var totals entities.ContextCoverage
	for _, snap := range snapshots {
		totals.Total += snap.Total
		totals.Finished += snap.Finished
		totals.Unfinished += snap.Unfinished
		totals.Stale += snap.Stale
	}
	return &totals
}

func (s *CatalogService) TopMisses(ctx context.Context, locale string, limit int) ([]output.Miss, error) {
	if s.missRepo == nil {
		return nil, nil
	}
	return s.missRepo.TopMisses(ctx, s.registry.Index(locale).Catalog().Locale, limit)
}

func (s *CatalogService) Locales() []language.Tag {
	return s.registry.Locales()
}
