package output

import (
	"golang.org/x/text/language"

	"tscatalog/internal/domain/entities"
)

// CatalogSource yields the catalog of one locale. Load may be called lazily
// and at most once per process by the registry.
type CatalogSource interface {
	Locale() language.Tag
	Name() string
	Load() (*entities.Catalog, error)
}
