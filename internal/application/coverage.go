package application

import "tscatalog/internal/domain/entities"

// BuildCoverage counts finished and pending translations per context.
func BuildCoverage(c *entities.Catalog) entities.CoverageReport {
	report := entities.CoverageReport{
		Locale:   c.Locale,
		Contexts: make([]entities.ContextCoverage, 0, len(c.Contexts)),
		Totals:   entities.ContextCoverage{Name: "total"},
	}
	for _, ctx := range c.Contexts {
		cov := entities.ContextCoverage{Name: ctx.Name, Total: len(ctx.Messages)}
		for _, m := range ctx.Messages {
			if m.Translated() {
				cov.Finished++
			} else {
				cov.Unfinished++
			}
			if m.Translation.Stale() {
				cov.Stale++
			}
		}
		report.Contexts = append(report.Contexts, cov)
		report.Totals.Total += cov.Total
		report.Totals.Finished += cov.Finished
		report.Totals.Unfinished += cov.Unfinished
		report.Totals.Stale += cov.Stale
	}
	return report
}
