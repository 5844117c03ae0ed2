package cli

import (
	"fmt"
	"io"
	"strings"

	"movieapi/internal/profile"

	"github.com/spf13/cobra"
)

func newProfileCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "profile HANDLE",
		Short: "Show a user profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.Profiles.Get(cmd.Context(), strings.TrimPrefix(args[0], "@"))
			if err != nil {
				return err
			}
			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			return printProfile(cmd.OutOrStdout(), p)
		},
	}
}

func printProfile(w io.Writer, p profile.Profile) error {
	fmt.Fprintf(w, "%s (@%s)\n", p.User.Name, p.User.Handle)
	if p.User.Bio != "" {
		fmt.Fprintln(w, p.User.Bio)
	}
	fmt.Fprintln(w)

	stats := make([]string, 0, len(p.Stats))
	for _, s := range p.Stats {
		stats = append(stats, fmt.Sprintf("%s: %d", s.Label, s.Value))
	}
	fmt.Fprintln(w, strings.Join(stats, "  "))

	printCards(w, "Watchlist", p.Watchlist)
	printCards(w, "Favorites", p.Favorites)

	fmt.Fprintln(w, "\nRecent Activity")
	tw := newTabWriter(w)
	for _, a := range p.Activity {
		detail := a.Content
		if a.Rating != nil {
			detail = fmt.Sprintf("%.1f/5", *a.Rating)
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", a.Label, a.Movie, a.When, detail)
	}
	return tw.Flush()
}

func printCards(w io.Writer, heading string, cards []profile.MovieCard) {
	fmt.Fprintf(w, "\n%s\n", heading)
	if len(cards) == 0 {
		fmt.Fprintln(w, "  (empty)")
		return
	}
	for _, c := range cards {
		fmt.Fprintf(w, "  %s (%d) %.1f\n", c.Title, c.Year, c.Rating)
	}
}
