package movie

import "time"

const placeholderPoster = "/placeholder.svg?height=300&width=200"

// SampleCatalog returns the demo library shown when no database is
// configured. Each call returns a fresh slice.
func SampleCatalog() []Movie {
	return []Movie{
		{ID: 1, Title: "Inception", Year: 2010, Rating: 8.8, Genres: []string{"Sci-Fi", "Action", "Thriller"}, Director: "Christopher Nolan", PosterURL: placeholderPoster, DateSaved: date(2023, 12, 15)},
		{ID: 2, Title: "The Dark Knight", Year: 2008, Rating: 9.0, Genres: []string{"Action", "Crime", "Drama"}, Director: "Christopher Nolan", PosterURL: placeholderPoster, DateSaved: date(2023, 11, 20)},
		{ID: 3, Title: "Interstellar", Year: 2014, Rating: 8.6, Genres: []string{"Sci-Fi", "Adventure", "Drama"}, Director: "Christopher Nolan", PosterURL: placeholderPoster, DateSaved: date(2024, 1, 5)},
		{ID: 4, Title: "Parasite", Year: 2019, Rating: 8.5, Genres: []string{"Thriller", "Drama", "Comedy"}, Director: "Bong Joon-ho", PosterURL: placeholderPoster, DateSaved: date(2024, 2, 10)},
		{ID: 5, Title: "The Godfather", Year: 1972, Rating: 9.2, Genres: []string{"Crime", "Drama"}, Director: "Francis Ford Coppola", PosterURL: placeholderPoster, DateSaved: date(2023, 10, 30)},
		{ID: 6, Title: "Pulp Fiction", Year: 1994, Rating: 8.9, Genres: []string{"Crime", "Drama"}, Director: "Quentin Tarantino", PosterURL: placeholderPoster, DateSaved: date(2023, 9, 15)},
		{ID: 7, Title: "The Shawshank Redemption", Year: 1994, Rating: 9.3, Genres: []string{"Drama"}, Director: "Frank Darabont", PosterURL: placeholderPoster, DateSaved: date(2023, 8, 22)},
		{ID: 8, Title: "Dune", Year: 2021, Rating: 8.0, Genres: []string{"Sci-Fi", "Adventure"}, Director: "Denis Villeneuve", PosterURL: placeholderPoster, DateSaved: date(2024, 3, 1)},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
