package movie

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const selectColumns = `id, title, year, rating, genres, director, COALESCE(poster_url, ''), date_saved`

func (r *PostgresRepo) List(ctx context.Context) ([]Movie, error) {
	const query = `SELECT ` + selectColumns + ` FROM movies ORDER BY id ASC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int) (Movie, error) {
	const query = `SELECT ` + selectColumns + ` FROM movies WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	m, err := scanMovie(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Movie{}, ErrNotFound
		}
		return Movie{}, err
	}
	return m, nil
}

func (r *PostgresRepo) Upsert(ctx context.Context, m *Movie) error {
	if err := Validate(*m); err != nil {
		return err
	}

	const sql = `
		INSERT INTO movies (id, title, year, rating, genres, director, poster_url, date_saved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			year = EXCLUDED.year,
			rating = EXCLUDED.rating,
			genres = EXCLUDED.genres,
			director = EXCLUDED.director,
			poster_url = EXCLUDED.poster_url,
			date_saved = EXCLUDED.date_saved,
			updated_at = NOW()`

	genres := m.Genres
	if genres == nil {
		genres = []string{}
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, sql,
		m.ID, m.Title, m.Year, m.Rating, genres, m.Director, m.PosterURL, m.DateSaved,
	)
	return err
}

func scanMovie(row pgx.Row) (Movie, error) {
	var m Movie
	err := row.Scan(&m.ID, &m.Title, &m.Year, &m.Rating, &m.Genres, &m.Director, &m.PosterURL, &m.DateSaved)
	return m, err
}
