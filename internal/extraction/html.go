// Package extraction converts uploaded documents (PDF, DOCX, HTML, plain
// text) into plain text with line breaks preserved.
package extraction

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLExtractor pulls readable text out of HTML documents, for job postings
// saved straight from a browser.
type HTMLExtractor struct{}

// Name identifies the format this extractor handles.
func (HTMLExtractor) Name() string { return "html" }

// Extract parses data as HTML, removes script and page chrome elements,
// and returns the text of the main content region.
func (HTMLExtractor) Extract(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &Error{Format: "html", Message: "failed to parse document", Cause: err}
	}

	doc.Find("script, style, noscript, nav, footer, header").Remove()

	// Prefer the semantic content containers before falling back to body
	content := doc.Find("main")
	if content.Length() == 0 {
		content = doc.Find("article")
	}
	if content.Length() == 0 {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

// cleanWhitespace trims every line and drops blank ones, keeping the line
// structure the matching engine scores against.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
