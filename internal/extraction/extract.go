// Package extraction converts uploaded documents (PDF, DOCX, HTML, plain
// text) into plain text with line breaks preserved.
package extraction

import (
	"path/filepath"
	"strings"
)

// Extractor turns raw document bytes into plain text.
type Extractor interface {
	// Name identifies the format this extractor handles.
	Name() string
	// Extract converts data to plain text with \n line breaks.
	Extract(data []byte) (string, error)
}

// knownExtensions maps filename extensions to the extractor that handles
// them directly. A failure on a known extension propagates to the caller
// without trying other formats.
var knownExtensions = map[string]Extractor{
	".pdf":  PDFExtractor{},
	".docx": DOCXExtractor{},
	".txt":  TextExtractor{},
	".html": HTMLExtractor{},
	".htm":  HTMLExtractor{},
}

// fallbackChain is the ordered list of extractors tried for files with an
// unrecognized extension; the first success wins. The plain text extractor
// accepts any bytes, so the chain as configured always terminates with a
// result.
var fallbackChain = []Extractor{
	PDFExtractor{},
	DOCXExtractor{},
	TextExtractor{},
}

// ExtractText converts an uploaded document to plain text. Files with a
// known extension dispatch to that format's extractor; anything else walks
// the fallback chain.
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if extractor, ok := knownExtensions[ext]; ok {
		return extractor.Extract(data)
	}
	return extractWithChain(filename, data)
}

func extractWithChain(filename string, data []byte) (string, error) {
	attempts := make([]error, 0, len(fallbackChain))
	for _, extractor := range fallbackChain {
		text, err := extractor.Extract(data)
		if err == nil {
			return text, nil
		}
		attempts = append(attempts, err)
	}
	return "", &ChainError{Filename: filename, Attempts: attempts}
}
