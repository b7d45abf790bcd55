package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tscatalog/internal/application"
)

func newLookupCmd(opts *options) *cobra.Command {
	var locale string
	cmd := &cobra.Command{
		Use:   "lookup CONTEXT SOURCE",
		Short: "Print the display string of one message",
		Long: `Print what a user with the given locale sees for SOURCE in CONTEXT.

Untranslated messages print the source text. A message missing from the
catalog also prints the source text, but the command fails.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := opts.registry(cmd)
			if err != nil {
				return err
			}
			service := application.NewCatalogService(registry, nil, nil, opts.logger(cmd))
			text, err := service.Lookup(cmd.Context(), locale, args[0], args[1])
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", "en_US", "locale, e.g. de_DE")
	return cmd
}
