package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "tscatalog/pkg/discord"
)

// HandleCommand routes slash commands by name. ctx bounds the use case calls.
func (h *Handler) HandleCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	resp := h.commandResponse(ctx, i)
	if resp == nil {
		// Unknown command: ignore so stale registrations do not error.
		return
	}
	respondEphemeralData(s, i.Interaction, resp)
}

func (h *Handler) commandResponse(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponseData {
	data := i.ApplicationCommandData()
	opts := pkgdiscord.Options(data.Options)
	uiLocale := string(i.Locale)
	locale := h.catalogLocale(opts, i.Interaction)

	switch data.Name {
	case cmdTranslate:
		return h.translate(ctx, uiLocale, locale, opts)
	case cmdCoverage:
		return h.coverage(ctx, uiLocale, locale, opts)
	case cmdMisses:
		return h.misses(ctx, uiLocale, locale)
	}
	return nil
}

// HandleAutocomplete answers option suggestions.
func (h *Handler) HandleAutocomplete(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	opts := pkgdiscord.Options(data.Options)
	choices := h.autocomplete(ctx, h.catalogLocale(opts, i.Interaction), data.Options)
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	}); err != nil {
		h.logger.Debug("autocomplete response failed", "error", err)
	}
}

// catalogLocale prefers the explicit option, then the user's client locale.
func (h *Handler) catalogLocale(opts map[string]string, i *discordgo.Interaction) string {
	if l := opts[optLocale]; l != "" {
		return l
	}
	if i != nil && i.Locale != "" {
		return string(i.Locale)
	}
	return h.defaultLocale
}
