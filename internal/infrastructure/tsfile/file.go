package tsfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"tscatalog/internal/domain/entities"
	"tscatalog/internal/ports/output"
	"tscatalog/translations"
)

// Extension of translation source files.
const Extension = ".ts"

var (
	ErrNotCatalogFile = errors.New("not a .ts file")
	ErrNoLocale       = errors.New("file name carries no locale")

	localePattern = regexp.MustCompile(`^[A-Za-z]{2,3}(?:[_-][A-Za-z0-9]{2,8})*$`)
	// After a "<name>-" prefix only language_REGION is taken, so
	// "awattar-dev.ts" does not become locale "dev".
	regionalPattern = regexp.MustCompile(`^[A-Za-z]{2,3}[_-](?:[A-Za-z]{4}[_-])?(?:[A-Za-z]{2}|[0-9]{3})$`)
)

// FileName is what a catalog file name tells about its content, e.g.
// "9c261c33-d44e-461e-8ec1-68803cb73f12-en_US.ts".
type FileName struct {
	PluginID uuid.UUID // uuid.Nil when the name has no plugin id prefix
	Locale   string
}

// ParseFileName accepts "<plugin-uuid>-<locale>.ts", "<name>-<locale>.ts"
// and "<locale>.ts".
func ParseFileName(name string) (FileName, error) {
	base := path.Base(filepath.ToSlash(name))
	if !strings.HasSuffix(base, Extension) {
		return FileName{}, fmt.Errorf("%s: %w", name, ErrNotCatalogFile)
	}
	stem := strings.TrimSuffix(base, Extension)

	var fn FileName
	if len(stem) > 37 && stem[36] == '-' {
		if id, err := uuid.Parse(stem[:36]); err == nil {
			fn.PluginID = id
			stem = stem[37:]
		}
	}
	if !isLocale(stem) {
		i := strings.LastIndex(stem, "-")
		if i < 0 || !regionalPattern.MatchString(stem[i+1:]) {
			return FileName{}, fmt.Errorf("%s: %w", name, ErrNoLocale)
		}
		stem = stem[i+1:]
	}
	if !isLocale(stem) {
		return FileName{}, fmt.Errorf("%s: %w", name, ErrNoLocale)
	}
	fn.Locale = stem
	return fn, nil
}

func isLocale(s string) bool {
	return localePattern.MatchString(s) && entities.ParseLocale(s) != language.Und
}

// LoadFile reads one catalog. The file is closed on every path. A document
// without a language attribute takes its locale from the file name.
func LoadFile(name string) (*entities.Catalog, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return load(f, name)
}

func load(r io.Reader, name string) (*entities.Catalog, error) {
	cat, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if cat.Locale == "" {
		if fn, err := ParseFileName(name); err == nil {
			cat.Locale = fn.Locale
		}
	}
	return cat, nil
}

// WriteFile encodes c to name through a temporary file in the same
// directory, so readers never see a half written catalog.
func WriteFile(name string, c *entities.Catalog) error {
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return fmt.Errorf("create temp catalog: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, c); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp catalog: %w", err)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}

var _ output.CatalogSource = (*Source)(nil)

// Source is a catalog file inside a file system, loaded on demand.
type Source struct {
	fsys   fs.FS
	name   string
	locale language.Tag
}

// NewSource describes the catalog at name in fsys. The locale comes from the
// file name; nothing is read yet.
func NewSource(fsys fs.FS, name string) (*Source, error) {
	fn, err := ParseFileName(name)
	if err != nil {
		return nil, err
	}
	return &Source{fsys: fsys, name: name, locale: entities.ParseLocale(fn.Locale)}, nil
}

func (s *Source) Locale() language.Tag { return s.locale }

func (s *Source) Name() string { return s.name }

func (s *Source) Load() (*entities.Catalog, error) {
	f, err := s.fsys.Open(s.name)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return load(f, s.name)
}

// Discover returns a source for every .ts file directly inside dir, in file
// name order.
func Discover(fsys fs.FS, dir string) ([]output.CatalogSource, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "*"+Extension))
	if err != nil {
		return nil, fmt.Errorf("discover catalogs: %w", err)
	}
	sources := make([]output.CatalogSource, 0, len(names))
	for _, name := range names {
		src, err := NewSource(fsys, name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// Sources discovers the catalogs in dir, or the embedded ones when dir is
// empty.
func Sources(dir string) ([]output.CatalogSource, error) {
	if dir == "" {
		return Discover(translations.FS, ".")
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("catalog directory: %w", err)
	}
	return Discover(os.DirFS(dir), ".")
}
