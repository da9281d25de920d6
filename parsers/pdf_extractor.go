package parsers

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"baliance.com/gooxml/document"
	"github.com/ledongthuc/pdf"
)

// DocumentExtractor pulls raw text out of resume files. PDFs go through the
// positioned-fragment reconstructor; DOCX paragraphs are joined with
// newlines; TXT is passed through.
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document text extractor.
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// ExtractFromFile routes by file extension and returns the document text
// and page count.
func (e *DocumentExtractor) ExtractFromFile(filename string, data []byte) (string, int, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return e.extractPDF(data)
	case ".docx":
		text, err := e.extractDocx(data)
		return text, 1, err
	case ".txt":
		return string(data), 1, nil
	default:
		return "", 0, fmt.Errorf("unsupported file format: %s", filepath.Ext(filename))
	}
}

// extractPDF reads the PDF text layer page by page, in order, and feeds the
// positioned fragments to ReconstructText. Page N is fully read before page
// N+1 so document order is preserved.
func (e *DocumentExtractor) extractPDF(data []byte) (string, int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to read pdf: %v", err)
	}

	pageCount := reader.NumPage()
	pages := make([][]TextFragment, 0, pageCount)

	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		fragments := make([]TextFragment, 0, len(content.Text))
		for _, t := range content.Text {
			fragments = append(fragments, TextFragment{
				Text:  t.S,
				X:     t.X,
				Y:     t.Y,
				Width: t.W,
			})
		}
		pages = append(pages, fragments)
	}

	return ReconstructText(pages), pageCount, nil
}

// extractDocx joins the document's paragraphs with newlines.
func (e *DocumentExtractor) extractDocx(data []byte) (string, error) {
	doc, err := document.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read docx: %v", err)
	}

	var sb strings.Builder
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			sb.WriteString(run.Text())
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
