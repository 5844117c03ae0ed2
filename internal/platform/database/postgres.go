// Package database opens the Postgres connection pool.
package database

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Open creates a pool for dsn and pings it within pingTimeout.
func Open(ctx context.Context, dsn string, pingTimeout time.Duration) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database (%s): %w", RedactDSN(dsn), err)
	}
	log.Printf("database connection OK dsn=%s", RedactDSN(dsn))
	return pool, nil
}

var passwordParam = regexp.MustCompile(`(?i)(\bpassword\s*=\s*)('(?:[^'\\]|\\.)*'|\S+)`)

// RedactDSN hides the credentials of a URL DSN and the password of a
// key=value DSN.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return passwordParam.ReplaceAllString(dsn, "${1}***")
	}
	start += len(marker)
	authority := dsn[start:]
	if q := strings.IndexByte(authority, '?'); q >= 0 {
		authority = authority[:q]
	}
	end := strings.LastIndex(authority, "@")
	if end < 0 {
		return passwordParam.ReplaceAllString(dsn, "${1}***")
	}
	return dsn[:start] + "***" + passwordParam.ReplaceAllString(dsn[start+end:], "${1}***")
}
