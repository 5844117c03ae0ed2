// Package cli implements the moviectl commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"movieapi/internal/app"
	"movieapi/internal/config"

	"github.com/spf13/cobra"
)

const (
	formatJSON = "json"
	formatText = "text"
)

type options struct {
	store  string
	dsn    string
	format string
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "moviectl",
		Short:         "Query the saved-movies library",
		Long:          "Search and sort the saved-movies library and inspect user profiles.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case formatJSON, formatText:
				return nil
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatJSON, formatText)
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.store, "store", "", "Catalog store: memory or postgres (default: $CATALOG_STORE or memory)")
	root.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "Postgres DSN (default: $DB_DSN)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", formatText, "Output format: json or text")

	root.AddCommand(
		newQueryCmd(opts),
		newGenresCmd(opts),
		newProfileCmd(opts),
	)
	return root
}

// Execute runs moviectl with os.Args and returns the process exit code.
func Execute() int {
	config.LoadEnvFiles()
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// openApp builds the services, with flags taking precedence over the environment.
func openApp(ctx context.Context, opts *options) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.store != "" {
		cfg.Store = opts.store
	}
	if opts.dsn != "" {
		cfg.DatabaseDSN = opts.dsn
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return app.New(ctx, cfg)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}
