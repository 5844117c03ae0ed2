package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenresCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the genre filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			genres, err := a.Movies.Genres(cmd.Context())
			if err != nil {
				return err
			}
			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), genres)
			}
			for _, g := range genres {
				fmt.Fprintln(cmd.OutOrStdout(), g)
			}
			return nil
		},
	}
}
