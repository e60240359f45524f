// Package vocab loads the skill vocabulary the matching engine evaluates
// documents against.
package vocab

import "fmt"

// LoadError represents an error reading or parsing a vocabulary source
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vocabulary load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("vocabulary load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
