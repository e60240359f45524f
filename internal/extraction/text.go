// Package extraction converts uploaded documents (PDF, DOCX, HTML, plain
// text) into plain text with line breaks preserved.
package extraction

import "strings"

// TextExtractor decodes bytes as UTF-8, dropping invalid sequences. It
// accepts any input and never fails, which makes it the terminal entry of
// the fallback chain.
type TextExtractor struct{}

// Name identifies the format this extractor handles.
func (TextExtractor) Name() string { return "text" }

// Extract returns data as a UTF-8 string with invalid byte sequences
// removed.
func (TextExtractor) Extract(data []byte) (string, error) {
	return strings.ToValidUTF8(string(data), ""), nil
}
