package services

import (
	"time"

	"alfredoptarigan/hr-helper/internal/extractor"
	"alfredoptarigan/hr-helper/internal/models"
)

type CandidateBuilder interface {
	// Build turns one document into a pending candidate profile. When the
	// document cannot be read the profile carries the error text, default
	// fields and the returned error; it is still a usable profile.
	Build(doc models.Document, hardSkills, softSkills []string) (models.Candidate, error)
}

type candidateBuilder struct {
	pdfParser PDFParserService
	now       func() time.Time
}

func NewCandidateBuilder(pdfParser PDFParserService) CandidateBuilder {
	return &candidateBuilder{
		pdfParser: pdfParser,
		now:       time.Now,
	}
}

func (b *candidateBuilder) Build(doc models.Document, hardSkills, softSkills []string) (models.Candidate, error) {
	candidate := models.NewCandidate(doc.ID, doc.Name)

	text, err := b.pdfParser.ExtractText(doc.Content)
	if err != nil {
		candidate.Text = err.Error()
		candidate.Unreadable = true
		return candidate, err
	}

	return populate(candidate, text, hardSkills, softSkills, b.now().Year()), nil
}

func populate(c models.Candidate, text string, hardSkills, softSkills []string, currentYear int) models.Candidate {
	contact := extractor.ExtractContact(text)

	c.Text = text
	c.Email = contact.Email
	c.Phone = contact.Phone
	c.LinkedIn = contact.LinkedIn
	c.GitHub = contact.GitHub
	c.Instagram = contact.Instagram
	c.EducationScore = extractor.ExtractEducation(text)
	c.WorkExp = extractor.ExperienceYears(text, currentYear)
	c.OrgExp = extractor.ExtractOrganization(text)
	c.HardSkills = extractor.MatchSkills(text, hardSkills)
	c.SoftSkills = extractor.MatchSkills(text, softSkills)

	return c
}
