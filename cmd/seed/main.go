package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"movieapi/internal/config"
	"movieapi/internal/movie"
	"movieapi/internal/platform/database"
	"movieapi/internal/profile"
)

func main() {
	catalogPath := flag.String("catalog", "", "JSON file with an array of movies (default: built-in sample library)")
	withProfile := flag.Bool("profile", true, "Also seed the sample profile")
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	movies, err := loadCatalog(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	ctx := context.Background()
	pool, err := database.Open(ctx, cfg.DatabaseDSN, 5*time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	movieService := movie.NewService(movie.NewPostgresRepo(pool, cfg.DBTimeout))
	log.Printf("Seeding %d movies...", len(movies))
	for _, m := range movies {
		if err := movieService.Save(ctx, m); err != nil {
			log.Fatalf("Failed to save movie %d: %v", m.ID, err)
		}
	}

	if *withProfile {
		sample := profile.Sample(time.Now())
		if err := profile.NewPostgresRepo(pool, cfg.DBTimeout).Put(ctx, sample); err != nil {
			log.Fatalf("Failed to seed profile: %v", err)
		}
		log.Printf("Seeded profile @%s", sample.User.Handle)
	}

	var total int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM movies").Scan(&total); err != nil {
		log.Fatalf("Failed to count movies: %v", err)
	}
	log.Printf("Total movies in database: %d", total)
}

// loadCatalog reads and validates a catalog file, or returns the sample
// library when path is empty.
func loadCatalog(path string) ([]movie.Movie, error) {
	if path == "" {
		return movie.SampleCatalog(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var movies []movie.Movie
	if err := json.Unmarshal(b, &movies); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := movie.ValidateCatalog(movies); err != nil {
		return nil, err
	}
	return movies, nil
}
