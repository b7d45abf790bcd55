package application

import (
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/text/language"

	"tscatalog/internal/domain/entities"
	"tscatalog/internal/ports/output"
)

// Registry maps locales to catalogs. Sources sharing a locale (one file per
// plugin) are merged into one index. Each locale is loaded at most once,
// lazily on first use or up front through Preload; afterwards the registry
// is read-only.
type Registry struct {
	logger  *slog.Logger
	entries []*registryEntry
	tags    []language.Tag
	matcher language.Matcher
}

type registryEntry struct {
	tag     language.Tag
	sources []output.CatalogSource

	once  sync.Once
	index *CatalogIndex
	err   error
}

func NewRegistry(logger *slog.Logger, sources []output.CatalogSource) *Registry {
	r := &Registry{logger: logger.With("module", "registry")}
	byTag := make(map[language.Tag]*registryEntry)
	for _, src := range sources {
		tag := src.Locale()
		e, ok := byTag[tag]
		if !ok {
			e = &registryEntry{tag: tag}
			byTag[tag] = e
			r.entries = append(r.entries, e)
			r.tags = append(r.tags, tag)
		}
		e.sources = append(e.sources, src)
	}
	if len(r.tags) > 0 {
		r.matcher = language.NewMatcher(r.tags)
	}
	return r
}

// Locales lists the locales with at least one catalog source.
func (r *Registry) Locales() []language.Tag {
	return append([]language.Tag(nil), r.tags...)
}

// Resolve returns the index of the best matching catalog, e.g. "de_DE" for a
// "de-AT" request. ok is false when no catalog matches at all.
func (r *Registry) Resolve(locale string) (idx *CatalogIndex, ok bool) {
	e := r.match(locale)
	if e == nil {
		return nil, false
	}
	return e.load(r.logger), true
}

// Index is Resolve with a fallback: an unmatched locale gets an empty index,
// whose lookups miss and show the source text.
func (r *Registry) Index(locale string) *CatalogIndex {
	if idx, ok := r.Resolve(locale); ok {
		return idx
	}
	return emptyIndex(locale)
}

// Preload loads every locale now. Failed catalogs stay registered as empty;
// the returned error joins their load errors.
func (r *Registry) Preload() error {
	var errs []error
	for _, e := range r.entries {
		e.load(r.logger)
		if e.err != nil {
			errs = append(errs, e.err)
		}
	}
	return errors.Join(errs...)
}

func (r *Registry) match(locale string) *registryEntry {
	if r.matcher == nil {
		return nil
	}
	tag := entities.ParseLocale(locale)
	if tag == language.Und {
		return nil
	}
	_, i, confidence := r.matcher.Match(tag)
	if confidence == language.No {
		return nil
	}
	return r.entries[i]
}

func (e *registryEntry) load(logger *slog.Logger) *CatalogIndex {
	e.once.Do(func() {
		var (
			catalogs []*entities.Catalog
			errs     []error
		)
		for _, src := range e.sources {
			cat, err := src.Load()
			if err != nil {
				logger.Error("catalog not loaded, source text will be shown",
					slog.String("catalog", src.Name()), slog.Any("error", err))
				errs = append(errs, err)
				continue
			}
			catalogs = append(catalogs, cat)
		}
		cat := merge(e.tag, catalogs)
		e.index = NewIndex(cat)
		e.err = errors.Join(errs...)
		logger.Info("catalog ready",
			slog.String("locale", cat.Locale),
			slog.Int("contexts", len(cat.Contexts)),
			slog.Int("messages", cat.MessageCount()))
	})
	return e.index
}

func merge(tag language.Tag, catalogs []*entities.Catalog) *entities.Catalog {
	if len(catalogs) == 1 {
		return catalogs[0]
	}
	merged := &entities.Catalog{Locale: tag.String()}
	for i, c := range catalogs {
		if i == 0 {
			merged.Locale = c.Locale
			merged.Version = c.Version
			merged.SourceLanguage = c.SourceLanguage
		}
		merged.Contexts = append(merged.Contexts, c.Contexts...)
	}
	return merged
}
