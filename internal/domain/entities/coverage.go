package entities

// ContextCoverage counts translation progress within one context. Stale
// messages are also counted as finished or unfinished.
type ContextCoverage struct {
	Name       string `json:"name" yaml:"name"`
	Total      int    `json:"total" yaml:"total"`
	Finished   int    `json:"finished" yaml:"finished"`
	Unfinished int    `json:"unfinished" yaml:"unfinished"`
	Stale      int    `json:"stale,omitempty" yaml:"stale,omitempty"`
}

// Percent of finished messages, 100 for an empty context.
func (c ContextCoverage) Percent() float64 {
	if c.Total == 0 {
		return 100
	}
	return float64(c.Finished) * 100 / float64(c.Total)
}

// CoverageReport is the translation progress of a whole catalog. Previous
// holds the totals of the last stored snapshot, if there is one.
type CoverageReport struct {
	Locale   string            `json:"locale" yaml:"locale"`
	Contexts []ContextCoverage `json:"contexts" yaml:"contexts"`
	Totals   ContextCoverage   `json:"totals" yaml:"totals"`
	Previous *ContextCoverage  `json:"previous,omitempty" yaml:"previous,omitempty"`
}

func (r CoverageReport) Percent() float64 {
	return r.Totals.Percent()
}

// Only narrows r to the named context. The totals become that context's.
func (r CoverageReport) Only(contextName string) (CoverageReport, bool) {
	for _, c := range r.Contexts {
		if c.Name == contextName {
			return CoverageReport{Locale: r.Locale, Contexts: []ContextCoverage{c}, Totals: c}, true
		}
	}
	return CoverageReport{}, false
}
