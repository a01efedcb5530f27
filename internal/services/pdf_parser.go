package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(content []byte) (string, error)
	ExtractTextWithMetaData(content []byte) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
}

// ExtractionError reports a document that could not be read at all.
type ExtractionError struct {
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("Error reading PDF: %v", e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText concatenates the plain text of every page in document order.
// A document without a text layer yields an empty string, not an error.
func (p *pdfParserService) ExtractText(content []byte) (string, error) {
	parsed, err := p.ExtractTextWithMetaData(content)
	if err != nil {
		return "", err
	}
	return parsed.Text, nil
}

func (p *pdfParserService) ExtractTextWithMetaData(content []byte) (parsed *PDFContent, err error) {
	// The reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			parsed = nil
			err = &ExtractionError{Cause: fmt.Errorf("malformed document: %v", r)}
		}
	}()

	if len(content) == 0 {
		return nil, &ExtractionError{Cause: fmt.Errorf("empty document")}
	}

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, &ExtractionError{Cause: err}
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Keep whatever the other pages yield
			continue
		}

		textBuilder.WriteString(text)
	}

	return &PDFContent{
		Text:      textBuilder.String(),
		PageCount: totalPage,
	}, nil
}
