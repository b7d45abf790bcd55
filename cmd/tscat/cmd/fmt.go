package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tscatalog/internal/infrastructure/tsfile"
)

func newFmtCmd(_ *options) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "fmt FILE...",
		Short: "Rewrite catalogs in the canonical lupdate layout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var changed int
			for _, name := range args {
				data, err := os.ReadFile(name)
				if err != nil {
					return err
				}
				// Decode, not LoadFile: the locale must not be filled in from the name.
				cat, err := tsfile.Decode(bytes.NewReader(data))
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				var buf bytes.Buffer
				if err := tsfile.Encode(&buf, cat); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if bytes.Equal(buf.Bytes(), data) {
					continue
				}
				changed++
				if check {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: not formatted\n", name)
					continue
				}
				if err := tsfile.WriteFile(name, cat); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			if check && changed > 0 {
				return fmt.Errorf("%d file(s) not formatted", changed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "only report files that would change")
	return cmd
}
