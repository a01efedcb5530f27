package extractor

import (
	"regexp"
	"strings"

	"alfredoptarigan/hr-helper/internal/models"
)

var (
	emailPattern    = regexp.MustCompile(`[\p{L}\p{N}_.-]+@[\p{L}\p{N}_.-]+\.[\p{L}\p{N}_]+`)
	phonePattern    = regexp.MustCompile(`(?:\+62|08)[\s-]?\d{1,4}[\s-]?\d{1,4}[\s-]?\d{1,4}[\s-]?\d{1,4}`)
	handlePattern   = regexp.MustCompile(`@([a-zA-Z0-9._-]{1,30})`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/([a-zA-Z0-9_-]+)`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/([a-zA-Z0-9_-]+)`)
	phoneSeparators = regexp.MustCompile(`[\s-]`)
)

type Contact struct {
	Email     string
	Phone     string
	LinkedIn  string
	GitHub    string
	Instagram string
}

// ExtractContact picks the first plausible value for every contact field.
// Missing fields are models.NoValue.
func ExtractContact(text string) Contact {
	c := Contact{
		Email:     firstMatch(emailPattern, text),
		Phone:     models.NoValue,
		LinkedIn:  models.NoValue,
		GitHub:    models.NoValue,
		Instagram: models.NoValue,
	}

	if m := phonePattern.FindString(text); m != "" {
		c.Phone = strings.TrimSpace(m)
	}
	if m := linkedinPattern.FindStringSubmatch(text); m != nil {
		c.LinkedIn = "https://linkedin.com/in/" + m[1]
	}
	if m := githubPattern.FindStringSubmatch(text); m != nil {
		c.GitHub = "https://github.com/" + m[1]
	}
	if handle := instagramHandle(text, c.Email); handle != "" {
		c.Instagram = "https://instagram.com/" + handle
	}

	return c
}

// instagramHandle returns the first @handle that does not occur inside the
// extracted email. The check is a plain substring test against the whole
// address, so "@company" is dropped when the email is "john@company.com".
func instagramHandle(text, email string) string {
	for _, m := range handlePattern.FindAllStringSubmatch(text, -1) {
		handle := m[1]
		if email == models.NoValue || !strings.Contains(email, handle) {
			return handle
		}
	}
	return ""
}

// WhatsAppNumber normalizes an Indonesian phone number to the international
// form used by wa.me links: separators removed, leading 0 becomes 62 and a
// leading + is dropped.
func WhatsAppNumber(phone string) string {
	cleaned := phoneSeparators.ReplaceAllString(phone, "")
	switch {
	case strings.HasPrefix(cleaned, "0"):
		return "62" + cleaned[1:]
	case strings.HasPrefix(cleaned, "+"):
		return cleaned[1:]
	}
	return cleaned
}

func firstMatch(re *regexp.Regexp, text string) string {
	if m := re.FindString(text); m != "" {
		return m
	}
	return models.NoValue
}
