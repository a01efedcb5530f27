package models

import (
	"time"
)

type CandidateStatus string

const (
	StatusPending  CandidateStatus = "Pending"
	StatusAccepted CandidateStatus = "Accepted"
	StatusRejected CandidateStatus = "Rejected"
)

// NoValue marks a contact field that was not found in the document.
const NoValue = "-"

// Statuses lists every review status in display order.
var Statuses = []CandidateStatus{StatusPending, StatusAccepted, StatusRejected}

type ScoreBreakdown struct {
	Education    float64 `json:"education"`
	Work         float64 `json:"work"`
	Organization float64 `json:"organization"`
	HardSkill    float64 `json:"hard_skill"`
	SoftSkill    float64 `json:"soft_skill"`
	Final        float64 `json:"final"`
}

// Candidate is the profile extracted from a single CV plus its latest score.
type Candidate struct {
	ID             string          `gorm:"type:text;primaryKey" json:"id"`
	Position       int64           `gorm:"index" json:"-"`
	Name           string          `gorm:"type:text" json:"name"`
	Text           string          `gorm:"type:text" json:"text,omitempty"`
	Unreadable     bool            `json:"unreadable"`
	Email          string          `gorm:"type:text" json:"email"`
	Phone          string          `gorm:"type:text" json:"phone"`
	LinkedIn       string          `gorm:"column:linkedin;type:text" json:"linkedin"`
	GitHub         string          `gorm:"column:github;type:text" json:"github"`
	Instagram      string          `gorm:"type:text" json:"instagram"`
	EducationScore int             `json:"education_score"`
	WorkExp        int             `json:"work_exp"`
	OrgExp         int             `json:"org_exp"`
	HardSkills     []string        `gorm:"serializer:json" json:"hard_skills"`
	SoftSkills     []string        `gorm:"serializer:json" json:"soft_skills"`
	Status         CandidateStatus `gorm:"type:text;not null;default:'Pending'" json:"status"`
	Scores         ScoreBreakdown  `gorm:"embedded;embeddedPrefix:score_" json:"scores"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// NewCandidate returns a pending profile with every contact field set to NoValue.
func NewCandidate(id, name string) Candidate {
	return Candidate{
		ID:         id,
		Name:       name,
		Email:      NoValue,
		Phone:      NoValue,
		LinkedIn:   NoValue,
		GitHub:     NoValue,
		Instagram:  NoValue,
		HardSkills: []string{},
		SoftSkills: []string{},
		Status:     StatusPending,
	}
}

func ValidStatus(s CandidateStatus) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}
