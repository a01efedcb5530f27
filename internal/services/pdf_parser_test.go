package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextConcatenatesPages(t *testing.T) {
	doc := buildPDF(
		[]string{"Siti Rahma", "siti.rahma@mail.com"},
		[]string{"Pengalaman 2019 - 2022"},
	)

	parsed, err := NewPDFParserService().ExtractTextWithMetaData(doc)
	require.NoError(t, err)

	assert.Equal(t, 2, parsed.PageCount)
	assert.Contains(t, parsed.Text, "Siti Rahma")
	assert.Contains(t, parsed.Text, "siti.rahma@mail.com")
	assert.Contains(t, parsed.Text, "2019 - 2022")
	assert.Less(t, strings.Index(parsed.Text, "Siti Rahma"), strings.Index(parsed.Text, "2019 - 2022"))
}

func TestExtractTextRejectsCorruptDocuments(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{name: "empty", content: nil},
		{name: "not a pdf", content: []byte(strings.Repeat("this is a plain text file\n", 10))},
		{name: "truncated", content: buildPDF([]string{"hello"})[:120]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := NewPDFParserService().ExtractText(tt.content)

			require.Error(t, err)
			assert.Empty(t, text)

			var extractionErr *ExtractionError
			assert.ErrorAs(t, err, &extractionErr)
			assert.True(t, strings.HasPrefix(err.Error(), "Error reading PDF: "))
		})
	}
}
