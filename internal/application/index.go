package application

import (
	"golang.org/x/text/language"

	"tscatalog/internal/domain"
	"tscatalog/internal/domain/entities"
)

// CatalogIndex resolves (context, source) pairs of one catalog. It is built
// once and never modified, so any number of goroutines may read it.
type CatalogIndex struct {
	catalog  *entities.Catalog
	messages map[string]map[string]*entities.Message
}

// NewIndex indexes c. When a context repeats a source text the first message
// wins; see entities.Context.Duplicates.
func NewIndex(c *entities.Catalog) *CatalogIndex {
	idx := &CatalogIndex{
		catalog:  c,
		messages: make(map[string]map[string]*entities.Message, len(c.Contexts)),
	}
	for _, ctx := range c.Contexts {
		bySource, ok := idx.messages[ctx.Name]
		if !ok {
			bySource = make(map[string]*entities.Message, len(ctx.Messages))
			idx.messages[ctx.Name] = bySource
		}
		for _, m := range ctx.Messages {
			if _, dup := bySource[m.Source]; !dup {
				bySource[m.Source] = m
			}
		}
	}
	return idx
}

// emptyIndex answers every lookup with a miss, which displays source text.
func emptyIndex(locale string) *CatalogIndex {
	return NewIndex(&entities.Catalog{Locale: locale})
}

func (i *CatalogIndex) Catalog() *entities.Catalog { return i.catalog }

func (i *CatalogIndex) Tag() language.Tag { return i.catalog.Tag() }

// Find returns the message for (context, source) or a *domain.LookupMissError.
func (i *CatalogIndex) Find(context, source string) (*entities.Message, error) {
	if m, ok := i.messages[context][source]; ok {
		return m, nil
	}
	return nil, &domain.LookupMissError{Locale: i.catalog.Locale, Context: context, Source: source}
}

// Lookup returns the display string for (context, source). On a miss it
// still returns the source text, together with the miss.
func (i *CatalogIndex) Lookup(context, source string) (string, error) {
	m, err := i.Find(context, source)
	if err != nil {
		return source, err
	}
	return m.Display(), nil
}
