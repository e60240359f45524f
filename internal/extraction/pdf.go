// Package extraction converts uploaded documents (PDF, DOCX, HTML, plain
// text) into plain text with line breaks preserved.
package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor reads text from PDF documents, one page per line group.
type PDFExtractor struct{}

// Name identifies the format this extractor handles.
func (PDFExtractor) Name() string { return "pdf" }

// Extract parses data as a PDF and concatenates the plain text of every
// page. Pages that fail individually are skipped rather than failing the
// whole document.
func (PDFExtractor) Extract(data []byte) (text string, err error) {
	// the pdf reader panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &Error{Format: "pdf", Message: fmt.Sprintf("reader panic: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Format: "pdf", Message: "failed to open document", Cause: err}
	}

	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(pageText)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}
