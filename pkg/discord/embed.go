package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"tscatalog/internal/domain/entities"
	"tscatalog/internal/ports/output"
)

const (
	embedColor    = 0x5865F2
	completeColor = 0x57F287
	missColor     = 0xED4245

	// Discord embed limits.
	maxFields     = 25
	maxFieldValue = 1024
	maxEmbedDesc  = 4096
)

// LookupStatus is the outcome of a /translate request.
type LookupStatus string

const (
	StatusTranslated   LookupStatus = "translated"
	StatusUntranslated LookupStatus = "untranslated"
	StatusMiss         LookupStatus = "miss"
)

// LookupView is what a /translate reply shows.
type LookupView struct {
	Locale  string
	Context string
	Source  string
	Display string
	Status  LookupStatus
	Notes   []entities.Note
}

// BuildLookupEmbed renders a lookup result with the bot UI in uiLocale.
func BuildLookupEmbed(t output.T, uiLocale string, v LookupView) *discordgo.MessageEmbed {
	color := embedColor
	switch v.Status {
	case StatusTranslated:
		color = completeColor
	case StatusMiss:
		color = missColor
	}
	fields := []*discordgo.MessageEmbedField{
		{Name: t.T(uiLocale, "translate.field.source", nil), Value: quote(v.Source)},
		{Name: t.T(uiLocale, "translate.field.display", nil), Value: quote(v.Display)},
		{Name: t.T(uiLocale, "translate.field.status", nil), Value: t.T(uiLocale, "translate.status."+string(v.Status), map[string]any{"Locale": v.Locale})},
	}
	if notes := formatNotes(v.Notes); notes != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: t.T(uiLocale, "translate.field.notes", nil), Value: notes})
	}
	return &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("%s · %s", t.T(uiLocale, "translate.title", nil), v.Context),
		Color:  color,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: v.Locale},
	}
}

// BuildCoverageEmbed renders one catalog's report. The last field is always
// the total; contexts beyond the field limit are left out.
func BuildCoverageEmbed(t output.T, uiLocale string, r entities.CoverageReport, takenAt time.Time) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(r.Contexts)+1)
	for _, c := range r.Contexts {
		if len(fields) == maxFields-1 {
			break
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   c.Name,
			Value:  coverageLine(t, uiLocale, c),
			Inline: true,
		})
	}
	fields = append(fields, &discordgo.MessageEmbedField{
		Name:  t.T(uiLocale, "coverage.total", nil),
		Value: coverageLine(t, uiLocale, r.Totals),
	})

	color := embedColor
	if r.Totals.Total > 0 && r.Totals.Finished == r.Totals.Total {
		color = completeColor
	}
	embed := &discordgo.MessageEmbed{
		Title:  t.T(uiLocale, "coverage.title", map[string]any{"Locale": r.Locale}),
		Color:  color,
		Fields: fields,
	}
	if !takenAt.IsZero() {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: FormatReportTime(takenAt)}
	}
	return embed
}

// BuildReportEmbed summarises several catalogs for the scheduled report.
func BuildReportEmbed(t output.T, uiLocale string, reports []entities.CoverageReport, takenAt time.Time) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(reports))
	for _, r := range reports {
		if len(fields) == maxFields {
			break
		}
		value := coverageLine(t, uiLocale, r.Totals)
		if r.Previous != nil {
			value += "\n" + t.T(uiLocale, "coverage.change", map[string]any{
				"Delta": fmt.Sprintf("%+d", r.Totals.Finished-r.Previous.Finished),
			})
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  r.Locale,
			Value: value,
		})
	}
	return &discordgo.MessageEmbed{
		Title:  t.T(uiLocale, "coverage.report", nil),
		Color:  embedColor,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: FormatReportTime(takenAt)},
	}
}

// BuildMissesEmbed lists misses, most frequent first as returned.
func BuildMissesEmbed(t output.T, uiLocale, catalogLocale string, misses []output.Miss) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, m := range misses {
		line := fmt.Sprintf("`%d×` **%s** %s\n", m.Hits, m.Context, quote(m.Source))
		if b.Len()+len(line) > maxEmbedDesc {
			break
		}
		b.WriteString(line)
	}
	desc := b.String()
	if desc == "" {
		desc = t.T(uiLocale, "misses.none", nil)
	}
	return &discordgo.MessageEmbed{
		Title:       t.T(uiLocale, "misses.title", map[string]any{"Locale": catalogLocale}),
		Color:       missColor,
		Description: desc,
	}
}

func coverageLine(t output.T, uiLocale string, c entities.ContextCoverage) string {
	line := t.T(uiLocale, "coverage.line", map[string]any{
		"Finished": c.Finished,
		"Total":    c.Total,
		"Percent":  fmt.Sprintf("%.0f", c.Percent()),
	})
	line += "\n" + ProgressBar(c.Percent(), 10)
	if c.Stale > 0 {
		line += " · " + t.T(uiLocale, "coverage.stale", map[string]any{"Stale": c.Stale})
	}
	return line
}

// ProgressBar draws percent as width blocks.
func ProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(percent*float64(width)/100 + 0.5)
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func formatNotes(notes []entities.Note) string {
	var b strings.Builder
	for _, n := range notes {
		var line string
		if n.Location.File != "" {
			line = fmt.Sprintf("`%s:%d` %s\n", n.Location.File, n.Location.Line, n.Text)
		} else {
			line = n.Text + "\n"
		}
		if b.Len()+len(line) > maxFieldValue {
			break
		}
		b.WriteString(line)
	}
	return strings.TrimRight(b.String(), "\n")
}

func quote(s string) string {
	if s == "" {
		return "\u200b"
	}
	return truncate("> "+strings.ReplaceAll(s, "\n", "\n> "), maxFieldValue)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n-3], "") + "..."
}
