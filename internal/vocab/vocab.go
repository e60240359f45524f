// Package vocab loads the skill vocabulary the matching engine evaluates
// documents against.
package vocab

import (
	"context"
	"strings"
)

// Source yields the ordered skill vocabulary from one backing location.
type Source interface {
	// Load returns the vocabulary in source order, entries trimmed and
	// non-empty. An absent or empty source returns an empty slice and no
	// error; that state is reported to callers as a warning, not a failure.
	Load(ctx context.Context) ([]string, error)
}

// NewSource picks a source implementation from the location identifier.
// Postgres connection strings select the database source; anything else is
// treated as a CSV file path.
func NewSource(ctx context.Context, location string) (Source, error) {
	if isPostgresLocation(location) {
		return NewPostgresSource(ctx, location)
	}
	return NewCSVSource(location), nil
}

func isPostgresLocation(location string) bool {
	return strings.HasPrefix(location, "postgres://") || strings.HasPrefix(location, "postgresql://")
}
