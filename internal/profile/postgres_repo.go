package profile

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	listWatchlist = "WATCHLIST"
	listFavorites = "FAVORITES"
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

func (r *PostgresRepo) GetUser(ctx context.Context, handle string) (User, error) {
	const query = `
		SELECT handle, name, COALESCE(bio, ''), COALESCE(avatar_url, '')
		FROM profiles
		WHERE handle = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var u User
	err := r.db.QueryRow(timeoutCtx, query, handle).Scan(&u.Handle, &u.Name, &u.Bio, &u.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepo) Stats(ctx context.Context, handle string) ([]Stat, error) {
	const query = `
		SELECT label, value
		FROM profile_stats
		WHERE handle = $1
		ORDER BY position ASC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, handle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Stat
	for rows.Next() {
		var s Stat
		if err := rows.Scan(&s.Label, &s.Value); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Activity(ctx context.Context, handle string, limit int) ([]Activity, error) {
	const query = `
		SELECT id, type, movie_title, occurred_at, COALESCE(content, ''), rating
		FROM profile_activity
		WHERE handle = $1
		ORDER BY occurred_at DESC, id DESC
		LIMIT $2`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, handle, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.Type, &a.Movie, &a.OccurredAt, &a.Content, &a.Rating); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Watchlist(ctx context.Context, handle string) ([]int, error) {
	return r.movieList(ctx, handle, listWatchlist)
}

func (r *PostgresRepo) Favorites(ctx context.Context, handle string) ([]int, error) {
	return r.movieList(ctx, handle, listFavorites)
}

func (r *PostgresRepo) movieList(ctx context.Context, handle, list string) ([]int, error) {
	const query = `
		SELECT movie_id
		FROM profile_movies
		WHERE handle = $1 AND list = $2
		ORDER BY position ASC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, handle, list)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Put replaces everything stored for p.User.Handle in one transaction.
func (r *PostgresRepo) Put(ctx context.Context, p Data) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer tx.Rollback(timeoutCtx)

	const profileSQL = `
		INSERT INTO profiles (handle, name, bio, avatar_url, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NOW())
		ON CONFLICT (handle) DO UPDATE SET
			name = EXCLUDED.name,
			bio = EXCLUDED.bio,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW()`
	handle := p.User.Handle
	if _, err := tx.Exec(timeoutCtx, profileSQL, handle, p.User.Name, p.User.Bio, p.User.AvatarURL); err != nil {
		return err
	}

	for _, table := range []string{"profile_stats", "profile_movies", "profile_activity"} {
		if _, err := tx.Exec(timeoutCtx, "DELETE FROM "+table+" WHERE handle = $1", handle); err != nil {
			return err
		}
	}

	batch := &pgx.Batch{}
	for i, s := range p.Stats {
		batch.Queue(`INSERT INTO profile_stats (handle, position, label, value) VALUES ($1, $2, $3, $4)`, handle, i, s.Label, s.Value)
	}
	for i, id := range p.Watchlist {
		batch.Queue(`INSERT INTO profile_movies (handle, list, position, movie_id) VALUES ($1, $2, $3, $4)`, handle, listWatchlist, i, id)
	}
	for i, id := range p.Favorites {
		batch.Queue(`INSERT INTO profile_movies (handle, list, position, movie_id) VALUES ($1, $2, $3, $4)`, handle, listFavorites, i, id)
	}
	for _, a := range p.Activity {
		batch.Queue(`INSERT INTO profile_activity (id, handle, type, movie_title, occurred_at, content, rating) VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)`,
			a.ID, handle, string(a.Type), a.Movie, a.OccurredAt, a.Content, a.Rating)
	}
	if err := tx.SendBatch(timeoutCtx, batch).Close(); err != nil {
		return err
	}

	return tx.Commit(timeoutCtx)
}
