// Package extraction converts uploaded documents (PDF, DOCX, HTML, plain
// text) into plain text with line breaks preserved.
package extraction

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DOCXExtractor reads text from DOCX documents, one paragraph per line.
type DOCXExtractor struct{}

// Name identifies the format this extractor handles.
func (DOCXExtractor) Name() string { return "docx" }

// Extract opens data as a DOCX archive and flattens the document body to
// plain text.
func (DOCXExtractor) Extract(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Format: "docx", Message: "failed to open document", Cause: err}
	}
	defer doc.Close()

	return flattenWordML(doc.Editable().GetContent()), nil
}

// flattenWordML strips WordprocessingML markup from raw document XML,
// turning paragraphs and explicit breaks into newlines and tabs into
// spaces. Character entities are resolved by the XML decoder.
func flattenWordML(content string) string {
	decoder := xml.NewDecoder(strings.NewReader(content))
	var builder strings.Builder
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.CharData:
			builder.Write(t)
		case xml.EndElement:
			switch t.Name.Local {
			case "p", "br", "cr":
				builder.WriteString("\n")
			case "tab":
				builder.WriteString(" ")
			}
		}
	}
	return strings.TrimSpace(builder.String())
}
