package i18n

import (
	"embed"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"tscatalog/internal/domain/entities"
	"tscatalog/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.T = (*Translator)(nil)

// Translator serves the bot's own UI strings.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	logger          *slog.Logger
}

// NewTranslator loads the embedded active.*.toml UI strings. defaultLocale
// accepts Qt ids such as "en_US".
func NewTranslator(defaultLocale string, logger *slog.Logger) *Translator {
	tag := language.English
	// UI strings are keyed by base language only.
	if base, conf := entities.ParseLocale(defaultLocale).Base(); conf != language.No {
		tag = language.Make(base.String())
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	logger = logger.With("module", "i18n")
	for _, file := range []string{"active.en.toml", "active.de.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Error("failed to load message file", slog.String("file", file), slog.Any("error", err))
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		logger:          logger,
	}
}

// T falls back to the default locale, then to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localize(locale, &i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Warn("localize failed", slog.String("key", key), slog.String("locale", locale), slog.Any("error", err))
		return key
	}
	return msg
}

func (t *Translator) localize(locale string, cfg *i18n.LocalizeConfig) (string, error) {
	languages := []string{}
	if locale != "" {
		languages = append(languages, normalize(locale))
	}
	languages = append(languages, t.defaultLanguage.String())
	return i18n.NewLocalizer(t.bundle, languages...).Localize(cfg)
}

// normalize turns Qt ids ("de_DE") into BCP 47.
func normalize(locale string) string {
	return strings.ReplaceAll(locale, "_", "-")
}
