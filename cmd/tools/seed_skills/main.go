// Command seed_skills loads a CSV skill vocabulary into the Postgres skills
// table, creating the table if it does not exist.
//
// Usage:
//
//	go run cmd/tools/seed_skills/main.go [skills.csv]
//
// Requires DATABASE_URL environment variable to be set.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daniel/skillgap-analyzer/internal/vocab"
)

func main() {
	path := "skills.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	ctx := context.Background()

	skills, err := vocab.NewCSVSource(path).Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to read %s: %v\n", path, err)
		os.Exit(1)
	}
	if len(skills) == 0 {
		fmt.Printf("No skills found in %s, nothing to seed.\n", path)
		return
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	fmt.Println("=== Skill Vocabulary Seed ===")
	fmt.Println()

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS skills (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			position INT NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create skills table: %v\n", err)
		os.Exit(1)
	}

	seeded := 0
	failed := 0

	for position, name := range skills {
		_, err := pool.Exec(ctx, `
			INSERT INTO skills (name, position)
			VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET position = EXCLUDED.position
		`, name, position)
		if err != nil {
			fmt.Printf("  x %s: %v\n", name, err)
			failed++
			continue
		}
		fmt.Printf("  + %s (position %d)\n", name, position)
		seeded++
	}

	fmt.Println()
	fmt.Println("=== Seed Summary ===")
	fmt.Printf("  Seeded: %d\n", seeded)
	fmt.Printf("  Failed: %d\n", failed)
	fmt.Printf("  Total: %d\n", len(skills))
}
