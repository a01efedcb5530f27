package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/hr-helper/internal/models"
)

func TestActionLink(t *testing.T) {
	tests := []struct {
		name   string
		kind   ContactKind
		value  string
		want   string
		wantOK bool
	}{
		{name: "sentinel", kind: ContactEmail, value: models.NoValue},
		{name: "empty", kind: ContactGitHub, value: ""},
		{name: "email", kind: ContactEmail, value: "a@b.co", want: "mailto:a@b.co", wantOK: true},
		{name: "local phone", kind: ContactPhone, value: "0812-3456-7890", want: "https://wa.me/6281234567890", wantOK: true},
		{name: "international phone", kind: ContactPhone, value: "+62 812 3456 7890", want: "https://wa.me/6281234567890", wantOK: true},
		{name: "full url", kind: ContactLinkedIn, value: "https://linkedin.com/in/x", want: "https://linkedin.com/in/x", wantOK: true},
		{name: "bare host", kind: ContactInstagram, value: "instagram.com/x", want: "https://instagram.com/x", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ActionLink(tt.kind, tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "68%", FormatPercent(0.68333))
	assert.Equal(t, "100%", FormatPercent(1))
	assert.Equal(t, "0%", FormatPercent(0))
}
