package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tscatalog/internal/domain/entities"
	"tscatalog/internal/infrastructure/i18n"
)

func newExportCmd(opts *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write go-i18n message files with the finished translations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := opts.registry(cmd)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(out, 0o755); err != nil {
				return err
			}
			for _, tag := range registry.Locales() {
				idx, ok := registry.Resolve(tag.String())
				if !ok {
					continue
				}
				cat := idx.Catalog()
				path := filepath.Join(out, i18n.ExportFileName(cat))
				if err := exportFile(path, cat); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory")
	return cmd
}

func exportFile(path string, cat *entities.Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := i18n.ExportTOML(f, cat); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
