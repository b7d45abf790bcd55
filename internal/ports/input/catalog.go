package input

import (
	"context"

	"golang.org/x/text/language"

	"tscatalog/internal/domain/entities"
	"tscatalog/internal/ports/output"
)

type CatalogUseCase interface {
	// Translate always returns something displayable; misses fall back to source.
	Translate(ctx context.Context, locale, contextName, source string) string
	Lookup(ctx context.Context, locale, contextName, source string) (string, error)
	Message(ctx context.Context, locale, contextName, source string) (*entities.Message, error)
	Coverage(ctx context.Context, locale string) (entities.CoverageReport, error)
	ContextCoverage(ctx context.Context, locale, contextName string) (entities.ContextCoverage, error)
	SnapshotCoverage(ctx context.Context) ([]entities.CoverageReport, error)
	TopMisses(ctx context.Context, locale string, limit int) ([]output.Miss, error)
	Locales() []language.Tag
}
