package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tscatalog/internal/domain/entities"
	"tscatalog/internal/infrastructure/tsfile"
)

func newCheckCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Report duplicate sources and misaligned translator notes",
		Long: `Check catalogs for problems lookups cannot see.

Duplicate sources within a context are errors: only the first one is ever
shown. Translator notes whose segments do not line up with the message
locations are reported as warnings.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var failed int
			for _, name := range args {
				cat, err := tsfile.LoadFile(name)
				if err != nil {
					fmt.Fprintf(out, "%s: %v\n", name, err)
					failed++
					continue
				}
				bad := false
				for _, c := range cat.Contexts {
					for _, source := range c.Duplicates() {
						fmt.Fprintf(out, "%s: error: %s: duplicate source %q\n", name, c.Name, source)
						bad = true
					}
					for _, m := range c.Messages {
						if m.ExtraComment != "" && !m.NotesAligned() {
							fmt.Fprintf(out, "%s: warning: %s: %q has %d note(s) for %d location(s)\n",
								name, c.Name, m.Source, len(entities.CommentSegments(m.ExtraComment)), len(m.Locations))
						}
					}
				}
				if bad {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d file(s) failed the check", failed, len(args))
			}
			return nil
		},
	}
}
