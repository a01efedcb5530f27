package services

import (
	"strings"

	"alfredoptarigan/hr-helper/internal/extractor"
	"alfredoptarigan/hr-helper/internal/models"
)

type ContactKind string

const (
	ContactEmail     ContactKind = "email"
	ContactPhone     ContactKind = "phone"
	ContactLinkedIn  ContactKind = "linkedin"
	ContactGitHub    ContactKind = "github"
	ContactInstagram ContactKind = "instagram"
)

// ActionLink builds the URL a reviewer follows to reach a candidate. The
// second result is false for absent values.
func ActionLink(kind ContactKind, value string) (string, bool) {
	if value == "" || value == models.NoValue {
		return "", false
	}

	switch kind {
	case ContactEmail:
		return "mailto:" + value, true
	case ContactPhone:
		return "https://wa.me/" + extractor.WhatsAppNumber(value), true
	}

	if strings.Contains(value, "http") {
		return value, true
	}
	return "https://" + value, true
}

type ContactLink struct {
	Kind  ContactKind `json:"kind"`
	Value string      `json:"value"`
	URL   string      `json:"url"`
}

// ContactLinks lists the links for every present contact field in a fixed order.
func ContactLinks(c models.Candidate) []ContactLink {
	fields := []struct {
		kind  ContactKind
		value string
	}{
		{ContactEmail, c.Email},
		{ContactPhone, c.Phone},
		{ContactLinkedIn, c.LinkedIn},
		{ContactGitHub, c.GitHub},
		{ContactInstagram, c.Instagram},
	}

	links := []ContactLink{}
	for _, f := range fields {
		if url, ok := ActionLink(f.kind, f.value); ok {
			links = append(links, ContactLink{Kind: f.kind, Value: f.value, URL: url})
		}
	}
	return links
}
