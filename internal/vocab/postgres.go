// Package vocab loads the skill vocabulary the matching engine evaluates
// documents against.
package vocab

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// undefinedTableCode is the SQLSTATE Postgres reports for a missing relation.
const undefinedTableCode = "42P01"

// PostgresSource reads the vocabulary from the skills table of a PostgreSQL
// database, ordered by position.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource establishes a connection pool to the database and
// verifies it is reachable.
func NewPostgresSource(ctx context.Context, databaseURL string) (*PostgresSource, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresSource{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresSource) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Load returns the skills table contents in position order. A database
// without the skills table is an empty vocabulary, matching the file
// source's treatment of a missing file.
func (s *PostgresSource) Load(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT name FROM skills ORDER BY position, name`)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == undefinedTableCode {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	skills := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		name = strings.TrimSpace(name)
		if name != "" {
			skills = append(skills, name)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skills: %w", err)
	}
	return skills, nil
}
