// Package extraction converts uploaded documents (PDF, DOCX, HTML, plain
// text) into plain text with line breaks preserved.
package extraction

import "fmt"

// Error represents a failure of one extractor against one document
type Error struct {
	Format  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction error: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction error: %s", e.Format, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ChainError reports that every fallback extractor rejected a document of
// unrecognized format. Attempts holds each extractor's failure in chain
// order.
type ChainError struct {
	Filename string
	Attempts []error
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("no extractor accepted %q after %d attempts", e.Filename, len(e.Attempts))
}

func (e *ChainError) Unwrap() []error {
	return e.Attempts
}
