package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Options flattens slash command options to trimmed string values.
func Options(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	out := make(map[string]string, len(opts))
	for _, o := range opts {
		if o == nil || o.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		out[o.Name] = strings.TrimSpace(o.StringValue())
	}
	return out
}

// FocusedOption returns the option the user is typing into during
// autocomplete.
func FocusedOption(opts []*discordgo.ApplicationCommandInteractionDataOption) (name, value string, ok bool) {
	for _, o := range opts {
		if o != nil && o.Focused && o.Type == discordgo.ApplicationCommandOptionString {
			return o.Name, strings.TrimSpace(o.StringValue()), true
		}
	}
	return "", "", false
}
