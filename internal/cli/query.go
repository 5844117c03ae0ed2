package cli

import (
	"fmt"
	"strings"

	"movieapi/internal/movie"

	"github.com/spf13/cobra"
)

func newQueryCmd(opts *options) *cobra.Command {
	var genre, sort string

	cmd := &cobra.Command{
		Use:   "query [text]",
		Short: "Search and sort the library",
		Long:  "Filter the library by title or director text and genre, then sort it.",
		Example: `  moviectl query nolan
  moviectl query --genre Drama --sort rating`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			movies, err := a.Movies.Query(cmd.Context(), movie.QueryParams{
				SearchText: strings.Join(args, " "),
				Genre:      genre,
				Sort:       movie.SortKey(sort),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.format == formatJSON {
				if movies == nil {
					movies = []movie.Movie{}
				}
				return writeJSON(out, movies)
			}
			if len(movies) == 0 {
				fmt.Fprintln(out, "No movies found")
				return nil
			}
			tw := newTabWriter(out)
			fmt.Fprintln(tw, "ID\tTITLE\tYEAR\tRATING\tDIRECTOR\tSAVED")
			for _, m := range movies {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%.1f\t%s\t%s\n",
					m.ID, m.Title, m.Year, m.Rating, m.Director, m.DateSaved.Format(movie.DateLayout))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&genre, "genre", "g", movie.AllGenres, "Genre tag to keep")
	cmd.Flags().StringVarP(&sort, "sort", "s", string(movie.DefaultSort), "Sort key: recent, rating, title or year")
	return cmd
}
