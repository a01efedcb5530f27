package services

import (
	"bytes"
	"fmt"
	"strings"
)

// buildPDF writes a minimal uncompressed PDF with one page per entry, each
// showing its lines in Helvetica.
func buildPDF(pages ...[]string) []byte {
	var objects []string

	pageCount := len(pages)
	fontObj := 3 + 2*pageCount
	kids := make([]string, pageCount)
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}

	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")
	objects = append(objects, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pageCount))

	for i, lines := range pages {
		var content strings.Builder
		content.WriteString("BT\n/F1 12 Tf\n72 720 Td\n")
		for j, line := range lines {
			if j > 0 {
				content.WriteString("0 -16 Td\n")
			}
			fmt.Fprintf(&content, "(%s) Tj\n", escapePDFString(line+" "))
		}
		content.WriteString("ET")

		objects = append(objects, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			fontObj, 4+2*i,
		))
		objects = append(objects, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()))
	}
	objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func escapePDFString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}

type stubParser struct {
	texts map[string]string
	errs  map[string]error
}

func (p *stubParser) ExtractText(content []byte) (string, error) {
	key := string(content)
	if err, ok := p.errs[key]; ok {
		return "", &ExtractionError{Cause: err}
	}
	return p.texts[key], nil
}

func (p *stubParser) ExtractTextWithMetaData(content []byte) (*PDFContent, error) {
	text, err := p.ExtractText(content)
	if err != nil {
		return nil, err
	}
	return &PDFContent{Text: text, PageCount: 1}, nil
}
