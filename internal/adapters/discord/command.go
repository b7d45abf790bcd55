package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"tscatalog/internal/domain"
	"tscatalog/internal/domain/entities"
	"tscatalog/internal/ports/output"
	pkgdiscord "tscatalog/pkg/discord"
)

const (
	cmdTranslate = "translate"
	cmdCoverage  = "coverage"
	cmdMisses    = "misses"

	optContext = "context"
	optSource  = "source"
	optLocale  = "locale"
)

// Commands returns the slash commands with English descriptions and German
// localizations.
func Commands(t output.T) []*discordgo.ApplicationCommand {
	desc := func(key string) (string, *map[discordgo.Locale]string) {
		loc := map[discordgo.Locale]string{discordgo.German: t.T("de", key, nil)}
		return t.T("en", key, nil), &loc
	}
	option := func(name, key string, required, autocomplete bool) *discordgo.ApplicationCommandOption {
		d, loc := desc(key)
		return &discordgo.ApplicationCommandOption{
			Type:                     discordgo.ApplicationCommandOptionString,
			Name:                     name,
			Description:              d,
			DescriptionLocalizations: *loc,
			Required:                 required,
			Autocomplete:             autocomplete,
		}
	}
	command := func(name string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommand {
		d, loc := desc("command." + name)
		return &discordgo.ApplicationCommand{
			Name:                     name,
			Description:              d,
			DescriptionLocalizations: loc,
			Options:                  options,
		}
	}

	return []*discordgo.ApplicationCommand{
		command(cmdTranslate,
			option(optContext, "option.context", true, true),
			option(optSource, "option.source", true, false),
			option(optLocale, "option.locale", false, true),
		),
		command(cmdCoverage,
			option(optLocale, "option.locale", false, true),
			option(optContext, "option.context", false, true),
		),
		command(cmdMisses,
			option(optLocale, "option.locale", false, true),
		),
	}
}

func (h *Handler) translate(ctx context.Context, uiLocale, locale string, opts map[string]string) *discordgo.InteractionResponseData {
	contextName, source := opts[optContext], opts[optSource]
	if source == "" {
		return contentData(pkgdiscord.DomainErrorMessage(h.t, uiLocale, domain.ErrEmptySource))
	}

	view := pkgdiscord.LookupView{
		Locale:  locale,
		Context: contextName,
		Source:  source,
		Display: source,
	}
	m, err := h.catalog.Message(ctx, locale, contextName, source)
	switch {
	case errors.Is(err, domain.ErrLookupMiss):
		view.Status = pkgdiscord.StatusMiss
	case err != nil:
		h.logger.Error("translate failed", "locale", locale, "error", err)
		return contentData(pkgdiscord.DomainErrorMessage(h.t, uiLocale, err))
	default:
		view.Display = m.Display()
		view.Notes = m.Notes()
		view.Status = pkgdiscord.StatusUntranslated
		if m.Translated() {
			view.Status = pkgdiscord.StatusTranslated
		}
	}
	return embedData(pkgdiscord.BuildLookupEmbed(h.t, uiLocale, view))
}

func (h *Handler) coverage(ctx context.Context, uiLocale, locale string, opts map[string]string) *discordgo.InteractionResponseData {
	var report entities.CoverageReport
	if contextName := opts[optContext]; contextName != "" {
		c, err := h.catalog.ContextCoverage(ctx, locale, contextName)
		if err != nil {
			return contentData(pkgdiscord.DomainErrorMessage(h.t, uiLocale, err))
		}
		report = entities.CoverageReport{Locale: locale, Contexts: []entities.ContextCoverage{c}, Totals: c}
	} else {
		r, err := h.catalog.Coverage(ctx, locale)
		if err != nil {
			return contentData(pkgdiscord.DomainErrorMessage(h.t, uiLocale, err))
		}
		report = r
	}
	return embedData(pkgdiscord.BuildCoverageEmbed(h.t, uiLocale, report, h.now()))
}

func (h *Handler) misses(ctx context.Context, uiLocale, locale string) *discordgo.InteractionResponseData {
	if !h.missTracking {
		return contentData(h.t.T(uiLocale, "misses.disabled", nil))
	}
	misses, err := h.catalog.TopMisses(ctx, locale, h.missLimit)
	if err != nil {
		h.logger.Error("top misses failed", "locale", locale, "error", err)
		return contentData(pkgdiscord.DomainErrorMessage(h.t, uiLocale, err))
	}
	return embedData(pkgdiscord.BuildMissesEmbed(h.t, uiLocale, locale, misses))
}
