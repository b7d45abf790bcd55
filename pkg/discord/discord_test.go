package discord

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tscatalog/internal/domain"
	"tscatalog/internal/domain/entities"
	"tscatalog/internal/ports/output"
)

// keyT renders "key" or "key{a=1 b=2}" so tests can see what was asked for.
type keyT struct{}

func (keyT) T(_, key string, data map[string]any) string {
	if len(data) == 0 {
		return key
	}
	parts := make([]string, 0, len(data))
	for k, v := range data {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(parts)
	return key + "{" + strings.Join(parts, " ") + "}"
}

func TestTranslateDomainError(t *testing.T) {
	assert.Equal(t, "error.lookup_miss", TranslateDomainError(keyT{}, "de", "lookup_miss"))
	assert.Equal(t, "error.generic", TranslateDomainError(keyT{}, "de", "parse_error"))
	assert.Equal(t, "error.generic", TranslateDomainError(keyT{}, "de", ""))

	err := fmt.Errorf("coverage: %w", domain.ErrLocaleNotFound)
	assert.Equal(t, "error.locale_not_found", DomainErrorMessage(keyT{}, "de", err))
	assert.Equal(t, "error.generic", DomainErrorMessage(keyT{}, "de", errors.New("other")))
	assert.Empty(t, DomainErrorMessage(keyT{}, "de", nil))
}

func TestBuildLookupEmbed(t *testing.T) {
	v := LookupView{
		Locale:  "de_DE",
		Context: "awattar",
		Source:  "current market price",
		Display: "Aktueller Marktpreis",
		Status:  StatusTranslated,
		Notes: []entities.Note{
			{Text: "The name of the ParamType", Location: entities.Location{File: "../awattar/integrationpluginawattar.json", Line: 60}},
		},
	}
	embed := BuildLookupEmbed(keyT{}, "en", v)

	assert.Equal(t, "translate.title · awattar", embed.Title)
	assert.Equal(t, completeColor, embed.Color)
	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "> Aktueller Marktpreis", embed.Fields[1].Value)
	assert.Equal(t, "translate.status.translated{Locale=de_DE}", embed.Fields[2].Value)
	assert.Equal(t, "`../awattar/integrationpluginawattar.json:60` The name of the ParamType", embed.Fields[3].Value)
}

func TestBuildLookupEmbedMiss(t *testing.T) {
	embed := BuildLookupEmbed(keyT{}, "en", LookupView{Locale: "de_DE", Context: "x", Source: "Offline", Display: "Offline", Status: StatusMiss})
	assert.Equal(t, missColor, embed.Color)
	assert.Len(t, embed.Fields, 3, "no notes field")
}

func TestBuildCoverageEmbed(t *testing.T) {
	report := entities.CoverageReport{
		Locale: "de_DE",
		Contexts: []entities.ContextCoverage{
			{Name: "DevicePluginAwattar", Total: 4, Finished: 4},
			{Name: "awattar", Total: 16, Finished: 15, Unfinished: 1, Stale: 2},
		},
		Totals: entities.ContextCoverage{Name: "total", Total: 20, Finished: 19, Unfinished: 1, Stale: 2},
	}
	taken := time.Date(2026, 1, 15, 6, 0, 0, 0, time.UTC)
	embed := BuildCoverageEmbed(keyT{}, "en", report, taken)

	assert.Equal(t, "coverage.title{Locale=de_DE}", embed.Title)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "coverage.line{Finished=4 Percent=100 Total=4}\n██████████", embed.Fields[0].Value)
	assert.Contains(t, embed.Fields[1].Value, "coverage.stale{Stale=2}")
	assert.Equal(t, "coverage.total", embed.Fields[2].Name)
	assert.Equal(t, "15.01.2026 07:00 CET", embed.Footer.Text)
	assert.Equal(t, embedColor, embed.Color)
}

func TestBuildCoverageEmbedFieldLimit(t *testing.T) {
	var report entities.CoverageReport
	for i := 0; i < 40; i++ {
		report.Contexts = append(report.Contexts, entities.ContextCoverage{Name: fmt.Sprint(i), Total: 1, Finished: 1})
	}
	embed := BuildCoverageEmbed(keyT{}, "en", report, time.Time{})
	assert.Len(t, embed.Fields, maxFields)
	assert.Equal(t, "coverage.total", embed.Fields[maxFields-1].Name)
	assert.Nil(t, embed.Footer)
}

func TestBuildReportEmbed(t *testing.T) {
	reports := []entities.CoverageReport{
		{Locale: "de_DE", Totals: entities.ContextCoverage{Total: 20, Finished: 19},
			Previous: &entities.ContextCoverage{Total: 20, Finished: 16}},
		{Locale: "fr_FR", Totals: entities.ContextCoverage{Total: 20, Finished: 5}},
	}
	embed := BuildReportEmbed(keyT{}, "en", reports, time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC))

	assert.Equal(t, "coverage.report", embed.Title)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "de_DE", embed.Fields[0].Name)
	assert.True(t, strings.HasSuffix(embed.Fields[0].Value, "\ncoverage.change{Delta=+3}"), embed.Fields[0].Value)
	assert.NotContains(t, embed.Fields[1].Value, "coverage.change", "no change without a previous snapshot")
	assert.Equal(t, "01.07.2026 12:00 CEST", embed.Footer.Text)
}

func TestBuildMissesEmbed(t *testing.T) {
	embed := BuildMissesEmbed(keyT{}, "en", "de_DE", []output.Miss{
		{Context: "awattar", Source: "Offline", Hits: 12},
		{Context: "awattar", Source: "Standby", Hits: 3},
	})
	assert.Equal(t, "`12×` **awattar** > Offline\n`3×` **awattar** > Standby\n", embed.Description)

	empty := BuildMissesEmbed(keyT{}, "en", "de_DE", nil)
	assert.Equal(t, "misses.none", empty.Description)
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░", ProgressBar(0, 10))
	assert.Equal(t, "█████░░░░░", ProgressBar(50, 10))
	assert.Equal(t, "██████████", ProgressBar(100, 10))
	assert.Equal(t, "██████████", ProgressBar(140, 10))
	assert.Empty(t, ProgressBar(50, 0))
}

func TestTruncateKeepsUTF8(t *testing.T) {
	s := strings.Repeat("ü", 600)
	got := truncate(s, maxFieldValue)
	assert.LessOrEqual(t, len(got), maxFieldValue)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.NotContains(t, got, "�")
}

func TestOptions(t *testing.T) {
	opts := []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "context", Type: discordgo.ApplicationCommandOptionString, Value: " awattar "},
		{Name: "source", Type: discordgo.ApplicationCommandOptionString, Value: "Online", Focused: true},
		{Name: "limit", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
	}
	assert.Equal(t, map[string]string{"context": "awattar", "source": "Online"}, Options(opts))

	name, value, ok := FocusedOption(opts)
	assert.True(t, ok)
	assert.Equal(t, "source", name)
	assert.Equal(t, "Online", value)

	_, _, ok = FocusedOption(opts[:1])
	assert.False(t, ok)
}

func TestFormatReportTime(t *testing.T) {
	summer := time.Date(2026, 7, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "01.07.2026 12:30 CEST", FormatReportTime(summer))
	assert.Empty(t, FormatReportTime(time.Time{}))
}

func TestNextReport(t *testing.T) {
	now := time.Date(2026, 7, 1, 10, 30, 0, 0, time.UTC) // 12:30 in Vienna

	next := NextReport(now, 6*time.Hour)
	assert.Equal(t, "01.07.2026 18:00 CEST", FormatReportTime(next))

	next = NextReport(now, 24*time.Hour)
	assert.Equal(t, "02.07.2026 00:00 CEST", FormatReportTime(next))
	assert.True(t, next.After(now))
}
