package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tscatalog/internal/application"
	"tscatalog/internal/domain"
	"tscatalog/internal/domain/entities"
)

var (
	colorDone    = lipgloss.Color("#10B981")
	colorPending = lipgloss.Color("#F59E0B")
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

func newCoverageCmd(opts *options) *cobra.Command {
	var locale, contextName, format string
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Show translation progress per context",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := opts.registry(cmd)
			if err != nil {
				return err
			}
			service := application.NewCatalogService(registry, nil, nil, opts.logger(cmd))

			locales := []string{locale}
			if locale == "" {
				locales = locales[:0]
				for _, tag := range service.Locales() {
					locales = append(locales, tag.String())
				}
			}
			reports := make([]entities.CoverageReport, 0, len(locales))
			for _, l := range locales {
				report, err := service.Coverage(cmd.Context(), l)
				if err != nil {
					return err
				}
				if contextName != "" {
					only, ok := report.Only(contextName)
					if !ok {
						return fmt.Errorf("coverage %q in %s: %w", contextName, report.Locale, domain.ErrContextUnknown)
					}
					report = only
				}
				reports = append(reports, report)
			}
			return writeCoverage(cmd.OutOrStdout(), format, reports)
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "only this locale (default: all)")
	cmd.Flags().StringVarP(&contextName, "context", "c", "", "only this context")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, yaml or json")
	return cmd
}

func writeCoverage(w io.Writer, format string, reports []entities.CoverageReport) error {
	switch format {
	case "text":
		for _, r := range reports {
			fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s  %.1f%%", r.Locale, r.Percent())))
			fmt.Fprintln(w, coverageTable(r).Render())
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown format %q (want text, yaml or json)", format)
	}
}

func coverageTable(r entities.CoverageReport) *table.Table {
	row := func(c entities.ContextCoverage) []string {
		return []string{
			c.Name,
			strconv.Itoa(c.Total),
			strconv.Itoa(c.Finished),
			strconv.Itoa(c.Unfinished),
			strconv.Itoa(c.Stale),
			fmt.Sprintf("%.1f%%", c.Percent()),
		}
	}
	percents := make([]float64, 0, len(r.Contexts)+1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CONTEXT", "TOTAL", "FINISHED", "UNFINISHED", "STALE", "DONE")
	for _, c := range r.Contexts {
		t.Row(row(c)...)
		percents = append(percents, c.Percent())
	}
	t.Row(row(r.Totals)...)
	percents = append(percents, r.Totals.Percent())

	return t.StyleFunc(func(rowIdx, col int) lipgloss.Style {
		style := lipgloss.NewStyle().Padding(0, 1)
		if rowIdx == table.HeaderRow {
			return style.Bold(true)
		}
		if col == 5 && rowIdx >= 0 && rowIdx < len(percents) {
			if percents[rowIdx] >= 100 {
				return style.Foreground(colorDone)
			}
			return style.Foreground(colorPending)
		}
		return style
	})
}
