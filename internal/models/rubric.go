package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRubric    = errors.New("invalid rubric")
	ErrUnknownEducation = errors.New("unknown education level")
)

// MaxEducationScore is the ordinal of the highest credential tier.
const MaxEducationScore = 7

type EducationLevel struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// EducationLevels is ordered from lowest to highest credential. Labels
// sharing a score are synonyms; the first one is used for display.
var EducationLevels = []EducationLevel{
	{Label: "Tidak ada", Score: 0},
	{Label: "SD", Score: 1},
	{Label: "SMP", Score: 2},
	{Label: "SMA", Score: 3},
	{Label: "SMK", Score: 3},
	{Label: "D1", Score: 4},
	{Label: "D2", Score: 4},
	{Label: "D3", Score: 5},
	{Label: "S1", Score: 6},
	{Label: "Sarjana", Score: 6},
	{Label: "S2", Score: 7},
	{Label: "Master", Score: 7},
}

func EducationScore(label string) (int, error) {
	label = strings.TrimSpace(label)
	for _, lvl := range EducationLevels {
		if strings.EqualFold(lvl.Label, label) {
			return lvl.Score, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEducation, label)
}

// EducationLabel returns the display label for an ordinal score, or "N/A".
func EducationLabel(score int) string {
	for _, lvl := range EducationLevels {
		if lvl.Score == score {
			return lvl.Label
		}
	}
	return "N/A"
}

// Weights are fractions per scoring category. They are expected to sum to
// 1.0 but the scorer does not renormalize them.
type Weights struct {
	Education    float64 `json:"education"`
	Work         float64 `json:"work"`
	Organization float64 `json:"organization"`
	HardSkill    float64 `json:"hard_skill"`
	SoftSkill    float64 `json:"soft_skill"`
}

type RubricConfig struct {
	MinEducation int      `json:"min_education"`
	MinWorkExp   float64  `json:"min_work_exp"`
	MinOrgExp    float64  `json:"min_org_exp"`
	HardSkills   []string `json:"hard_skills"`
	SoftSkills   []string `json:"soft_skills"`
	Weights      Weights  `json:"weights"`
}

// Clone returns a copy whose skill lists share no memory with r.
func (r RubricConfig) Clone() RubricConfig {
	r.HardSkills = append([]string(nil), r.HardSkills...)
	r.SoftSkills = append([]string(nil), r.SoftSkills...)
	return r
}

type WeightPercents struct {
	Edu  int `mapstructure:"edu" json:"edu"`
	Work int `mapstructure:"work" json:"work"`
	Org  int `mapstructure:"org" json:"org"`
	Hard int `mapstructure:"hard" json:"hard"`
	Soft int `mapstructure:"soft" json:"soft"`
}

func (w WeightPercents) Total() int {
	return w.Edu + w.Work + w.Org + w.Hard + w.Soft
}

// RubricForm is the recruiter-facing rubric: an education label, whole
// percent weights and free-form skill lists.
type RubricForm struct {
	JobTitle     string         `mapstructure:"job_title" json:"job_title"`
	MinEducation string         `mapstructure:"min_education" json:"min_education"`
	MinWorkExp   float64        `mapstructure:"min_work_exp" json:"min_work_exp"`
	MinOrgExp    float64        `mapstructure:"min_org_exp" json:"min_org_exp"`
	HardSkills   []string       `mapstructure:"hard_skills" json:"hard_skills"`
	SoftSkills   []string       `mapstructure:"soft_skills" json:"soft_skills"`
	Weights      WeightPercents `mapstructure:"weights" json:"weights"`
}

func DefaultRubricForm() RubricForm {
	return RubricForm{
		JobTitle:     "Programmer",
		MinEducation: "S1",
		MinWorkExp:   1.0,
		MinOrgExp:    0.0,
		HardSkills:   []string{"Python", "JavaScript", "SQL", "Git", "API", "HTML", "CSS", "React"},
		SoftSkills:   []string{"Komunikasi", "Kerja sama tim", "Problem solving"},
		Weights:      WeightPercents{Edu: 15, Work: 30, Org: 5, Hard: 40, Soft: 10},
	}
}

func (f RubricForm) Validate() error {
	if strings.TrimSpace(f.JobTitle) == "" {
		return fmt.Errorf("%w: job title is required", ErrInvalidRubric)
	}
	if _, err := EducationScore(f.MinEducation); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRubric, err)
	}
	if f.MinWorkExp < 0 {
		return fmt.Errorf("%w: minimum work experience must not be negative", ErrInvalidRubric)
	}
	if f.MinOrgExp < 0 {
		return fmt.Errorf("%w: minimum organizational experience must not be negative", ErrInvalidRubric)
	}
	for _, w := range []int{f.Weights.Edu, f.Weights.Work, f.Weights.Org, f.Weights.Hard, f.Weights.Soft} {
		if w < 0 || w > 100 {
			return fmt.Errorf("%w: each weight must be between 0 and 100", ErrInvalidRubric)
		}
	}
	if total := f.Weights.Total(); total != 100 {
		return fmt.Errorf("%w: total weight must be 100%%, got %d%%", ErrInvalidRubric, total)
	}
	return nil
}

// Rubric converts the form into the scorer's configuration. Call Validate first;
// an unknown education label falls back to 0.
func (f RubricForm) Rubric() RubricConfig {
	minEdu, _ := EducationScore(f.MinEducation)
	return RubricConfig{
		MinEducation: minEdu,
		MinWorkExp:   f.MinWorkExp,
		MinOrgExp:    f.MinOrgExp,
		HardSkills:   SplitKeywords(f.HardSkills),
		SoftSkills:   SplitKeywords(f.SoftSkills),
		Weights: Weights{
			Education:    float64(f.Weights.Edu) / 100,
			Work:         float64(f.Weights.Work) / 100,
			Organization: float64(f.Weights.Org) / 100,
			HardSkill:    float64(f.Weights.Hard) / 100,
			SoftSkill:    float64(f.Weights.Soft) / 100,
		},
	}
}

// SplitKeywords flattens comma-separated entries, trims them and drops blanks.
// Order is preserved.
func SplitKeywords(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		for _, kw := range strings.Split(entry, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				out = append(out, kw)
			}
		}
	}
	return out
}
