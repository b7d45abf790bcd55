package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "tscatalog/pkg/discord"
)

// Discord accepts at most 25 choices.
const maxChoices = 25

func (h *Handler) autocomplete(ctx context.Context, locale string, opts []*discordgo.ApplicationCommandInteractionDataOption) []*discordgo.ApplicationCommandOptionChoice {
	name, typed, ok := pkgdiscord.FocusedOption(opts)
	if !ok {
		return nil
	}
	var candidates []string
	switch name {
	case optLocale:
		for _, tag := range h.catalog.Locales() {
			candidates = append(candidates, tag.String())
		}
	case optContext:
		report, err := h.catalog.Coverage(ctx, locale)
		if err != nil {
			return nil
		}
		for _, c := range report.Contexts {
			candidates = append(candidates, c.Name)
		}
	}
	return choices(candidates, typed)
}

// choices keeps candidates containing typed, case-insensitively.
func choices(candidates []string, typed string) []*discordgo.ApplicationCommandOptionChoice {
	typed = strings.ToLower(typed)
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, min(len(candidates), maxChoices))
	for _, c := range candidates {
		if len(out) == maxChoices {
			break
		}
		if typed != "" && !strings.Contains(strings.ToLower(c), typed) {
			continue
		}
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: c, Value: c})
	}
	return out
}
