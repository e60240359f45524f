// Package vocab loads the skill vocabulary the matching engine evaluates
// documents against.
package vocab

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVSource reads the vocabulary from the first column of a local CSV file,
// one skill per row.
type CSVSource struct {
	path string
}

// NewCSVSource creates a source backed by the CSV file at path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Load reads the first column of every row, trimmed, skipping blanks.
// A missing file is an empty vocabulary, not an error.
func (s *CSVSource) Load(_ context.Context) ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to open %s", s.path),
			Cause:   err,
		}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// rows may carry a different number of columns; only the first matters
	reader.FieldsPerRecord = -1

	skills := make([]string, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("failed to parse %s", s.path),
				Cause:   err,
			}
		}
		if len(row) == 0 {
			continue
		}
		skill := strings.TrimSpace(row[0])
		if skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills, nil
}
