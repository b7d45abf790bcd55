package application

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"tscatalog/internal/domain"
	"tscatalog/internal/domain/entities"
	"tscatalog/internal/ports/output"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubSource struct {
	tag   language.Tag
	name  string
	cat   *entities.Catalog
	err   error
	loads atomic.Int32
}

func (s *stubSource) Locale() language.Tag { return s.tag }
func (s *stubSource) Name() string         { return s.name }
func (s *stubSource) Load() (*entities.Catalog, error) {
	s.loads.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.cat, nil
}

func germanCatalog() *entities.Catalog {
	return &entities.Catalog{
		Version: "2.1",
		Locale:  "de_DE",
		Contexts: []*entities.Context{
			{Name: "awattar", Messages: []*entities.Message{
				{Source: "Online", Translation: entities.Translation{Text: "Verbunden", Present: true}},
				{Source: "valid until", Translation: entities.Translation{Type: entities.TranslationUnfinished, Present: true}},
				{Source: "Online", Translation: entities.Translation{Text: "Zweiter", Present: true}},
				{Source: "old", Translation: entities.Translation{Text: "alt", Type: entities.TranslationObsolete, Present: true}},
			}},
			{Name: "DevicePluginAwattar", Messages: []*entities.Message{
				{Source: "This token is not valid."},
			}},
		},
	}
}

func TestIndexLookup(t *testing.T) {
	idx := NewIndex(germanCatalog())

	text, err := idx.Lookup("awattar", "Online")
	require.NoError(t, err)
	assert.Equal(t, "Verbunden", text, "first duplicate wins")

	text, err = idx.Lookup("awattar", "valid until")
	require.NoError(t, err)
	assert.Equal(t, "valid until", text)

	text, err = idx.Lookup("DevicePluginAwattar", "This token is not valid.")
	require.NoError(t, err)
	assert.Equal(t, "This token is not valid.", text)

	text, err = idx.Lookup("awattar", "not there")
	assert.Equal(t, "not there", text)
	assert.ErrorIs(t, err, domain.ErrLookupMiss)
	var miss *domain.LookupMissError
	require.ErrorAs(t, err, &miss)
	assert.Equal(t, "de_DE", miss.Locale)
	assert.Equal(t, "awattar", miss.Context)

	// the source alone is not a key; the context has to match too
	_, err = idx.Lookup("DevicePluginAwattar", "Online")
	assert.ErrorIs(t, err, domain.ErrLookupMiss)
}

func TestBuildCoverage(t *testing.T) {
	report := BuildCoverage(germanCatalog())
	assert.Equal(t, "de_DE", report.Locale)
	require.Len(t, report.Contexts, 2)
	assert.Equal(t, entities.ContextCoverage{Name: "awattar", Total: 4, Finished: 3, Unfinished: 1, Stale: 1}, report.Contexts[0])
	assert.Equal(t, entities.ContextCoverage{Name: "DevicePluginAwattar", Total: 1, Unfinished: 1}, report.Contexts[1])
	assert.Equal(t, 5, report.Totals.Total)
	assert.Equal(t, 3, report.Totals.Finished)
	assert.InDelta(t, 60.0, report.Percent(), 0.001)

	empty := BuildCoverage(&entities.Catalog{})
	assert.Equal(t, 100.0, empty.Percent())
}

func TestRegistryLoadsLazilyOnce(t *testing.T) {
	de := &stubSource{tag: language.MustParse("de-DE"), name: "de", cat: germanCatalog()}
	en := &stubSource{tag: language.MustParse("en-US"), name: "en", cat: &entities.Catalog{Locale: "en_US"}}
	r := NewRegistry(discardLogger(), []output.CatalogSource{de, en})

	assert.Equal(t, []language.Tag{language.MustParse("de-DE"), language.MustParse("en-US")}, r.Locales())
	assert.Zero(t, de.loads.Load())

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			text, err := r.Index("de_DE").Lookup("awattar", "Online")
			assert.NoError(t, err)
			assert.Equal(t, "Verbunden", text)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), de.loads.Load())
	assert.Zero(t, en.loads.Load())
}

func TestRegistryMatchesLocales(t *testing.T) {
	de := &stubSource{tag: language.MustParse("de-DE"), cat: germanCatalog()}
	en := &stubSource{tag: language.MustParse("en-US"), cat: &entities.Catalog{Locale: "en_US"}}
	r := NewRegistry(discardLogger(), []output.CatalogSource{en, de})

	for _, locale := range []string{"de", "de-AT", "de_DE", "de-CH"} {
		idx, ok := r.Resolve(locale)
		require.True(t, ok, locale)
		assert.Equal(t, "de_DE", idx.Catalog().Locale, locale)
	}

	_, ok := r.Resolve("ja")
	assert.False(t, ok)
	_, ok = r.Resolve("")
	assert.False(t, ok)

	text, err := r.Index("ja").Lookup("awattar", "Online")
	assert.Equal(t, "Online", text)
	assert.ErrorIs(t, err, domain.ErrLookupMiss)

	_, ok = NewRegistry(discardLogger(), nil).Resolve("de")
	assert.False(t, ok)
}

func TestRegistryFailedLoadFallsBackToSource(t *testing.T) {
	broken := &stubSource{
		tag:  language.MustParse("fr-FR"),
		name: "fr_FR.ts",
		err:  &domain.ParseError{Line: 3, Element: "context", Err: errors.New("boom")},
	}
	r := NewRegistry(discardLogger(), []output.CatalogSource{broken})

	err := r.Preload()
	assert.ErrorIs(t, err, domain.ErrParse)

	idx, ok := r.Resolve("fr")
	require.True(t, ok)
	text, err := idx.Lookup("awattar", "Online")
	assert.Equal(t, "Online", text)
	assert.ErrorIs(t, err, domain.ErrLookupMiss)
	assert.Equal(t, 0, idx.Catalog().MessageCount())
	assert.Equal(t, int32(1), broken.loads.Load())
}

func TestRegistryMergesCatalogsOfOneLocale(t *testing.T) {
	a := &stubSource{tag: language.MustParse("de-DE"), cat: germanCatalog()}
	b := &stubSource{tag: language.MustParse("de-DE"), cat: &entities.Catalog{
		Locale: "de_DE",
		Contexts: []*entities.Context{{Name: "denon", Messages: []*entities.Message{
			{Source: "Volume", Translation: entities.Translation{Text: "Lautstärke", Present: true}},
		}}},
	}}
	r := NewRegistry(discardLogger(), []output.CatalogSource{a, b})
	require.Len(t, r.Locales(), 1)

	idx := r.Index("de")
	assert.Len(t, idx.Catalog().Contexts, 3)
	text, err := idx.Lookup("denon", "Volume")
	require.NoError(t, err)
	assert.Equal(t, "Lautstärke", text)
	text, err = idx.Lookup("awattar", "Online")
	require.NoError(t, err)
	assert.Equal(t, "Verbunden", text)
}
