package extraction

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainTextByExtension(t *testing.T) {
	data := []byte("Jane Doe\nPython developer since 2019\n")

	text, err := ExtractText("resume.txt", data)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nPython developer since 2019\n", text)
}

func TestExtractText_UppercaseExtension(t *testing.T) {
	text, err := ExtractText("RESUME.TXT", []byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtractText_InvalidUTF8Dropped(t *testing.T) {
	data := []byte{'o', 'k', 0xff, 0xfe, '!', '\n'}

	text, err := ExtractText("notes.txt", data)

	require.NoError(t, err)
	assert.Equal(t, "ok!\n", text)
}

func TestExtractText_UnknownExtensionFallsBackToText(t *testing.T) {
	data := []byte("plain content with no recognizable format")

	text, err := ExtractText("resume.bin", data)

	require.NoError(t, err)
	assert.Equal(t, "plain content with no recognizable format", text)
}

func TestExtractText_NoExtensionFallsBackToText(t *testing.T) {
	text, err := ExtractText("resume", []byte("still works"))

	require.NoError(t, err)
	assert.Equal(t, "still works", text)
}

func TestExtractText_BrokenPDFPropagatesError(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("this is not a pdf"))

	require.Error(t, err)
	var extractionErr *Error
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "pdf", extractionErr.Format)
}

func TestExtractText_BrokenDOCXPropagatesError(t *testing.T) {
	_, err := ExtractText("resume.docx", []byte("this is not a zip archive"))

	require.Error(t, err)
	var extractionErr *Error
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "docx", extractionErr.Format)
}

// buildDocx assembles a minimal DOCX archive in memory around the given
// document.xml payload.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	files := []struct {
		name    string
		content string
	}{
		{
			name:    "[Content_Types].xml",
			content: `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`,
		},
		{
			name:    "_rels/.rels",
			content: `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`,
		},
		{
			name:    "word/_rels/document.xml.rels",
			content: `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		},
		{
			name:    "word/document.xml",
			content: documentXML,
		},
	}

	for _, file := range files {
		f, err := writer.Create(file.name)
		require.NoError(t, err)
		_, err = f.Write([]byte(file.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

func TestExtractText_DOCXParagraphsBecomeLines(t *testing.T) {
	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Built Python services</w:t></w:r></w:p><w:p><w:r><w:t>Docker &amp; Kubernetes</w:t></w:r></w:p></w:body></w:document>`
	data := buildDocx(t, documentXML)

	text, err := ExtractText("resume.docx", data)

	require.NoError(t, err)
	assert.Equal(t, "Built Python services\nDocker & Kubernetes", text)
}

func TestChainError_ExposesAttempts(t *testing.T) {
	pdfErr := &Error{Format: "pdf", Message: "failed to open document"}
	docxErr := &Error{Format: "docx", Message: "failed to open document"}
	chainErr := &ChainError{Filename: "mystery.bin", Attempts: []error{pdfErr, docxErr}}

	assert.Contains(t, chainErr.Error(), "mystery.bin")
	assert.Contains(t, chainErr.Error(), "2 attempts")

	var inner *Error
	require.ErrorAs(t, chainErr, &inner)
	assert.Equal(t, "pdf", inner.Format)
}
