package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"tscatalog/internal/application"
	"tscatalog/internal/infrastructure/tsfile"
	"tscatalog/internal/logging"
)

// options are the persistent flags shared by all subcommands.
type options struct {
	dir      string
	logLevel string
}

// NewRootCmd builds the tscat command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "tscat",
		Short: "Qt Linguist translation catalog tool",
		Long: `tscat reads Qt Linguist .ts catalogs.

Commands:
  lookup    - resolve one string for a locale
  coverage  - translation progress per context
  check     - duplicate sources and misaligned translator notes
  fmt       - rewrite catalogs in the canonical lupdate layout
  export    - write go-i18n message files`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dir, "dir", os.Getenv("TRANSLATIONS_DIR"), "catalog directory (default: embedded catalogs)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newLookupCmd(opts),
		newCoverageCmd(opts),
		newCheckCmd(opts),
		newFmtCmd(opts),
		newExportCmd(opts),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	return logging.New(cmd.ErrOrStderr(), logging.LevelFromString(o.logLevel))
}

// registry loads every catalog up front; a broken file fails the command.
func (o *options) registry(cmd *cobra.Command) (*application.Registry, error) {
	sources, err := tsfile.Sources(o.dir)
	if err != nil {
		return nil, err
	}
	r := application.NewRegistry(o.logger(cmd), sources)
	if err := r.Preload(); err != nil {
		return nil, fmt.Errorf("load catalogs: %w", err)
	}
	return r, nil
}
