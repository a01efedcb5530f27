package scoring

import (
	"alfredoptarigan/hr-helper/internal/models"
)

// Score combines a candidate profile with a rubric. It is a pure function of
// its inputs and trusts the rubric: weights are applied as given.
func Score(c models.Candidate, r models.RubricConfig) models.ScoreBreakdown {
	b := models.ScoreBreakdown{
		Education:    educationScore(c.EducationScore, r.MinEducation),
		Work:         thresholdScore(float64(c.WorkExp), r.MinWorkExp),
		Organization: thresholdScore(float64(c.OrgExp), r.MinOrgExp),
		HardSkill:    ratio(len(c.HardSkills), len(r.HardSkills)),
		SoftSkill:    ratio(len(c.SoftSkills), len(r.SoftSkills)),
	}

	b.Final = b.Education*r.Weights.Education +
		b.Work*r.Weights.Work +
		b.Organization*r.Weights.Organization +
		b.HardSkill*r.Weights.HardSkill +
		b.SoftSkill*r.Weights.SoftSkill

	return b
}

// educationScore gives full credit at or above the minimum and linear
// partial credit against the top tier below it.
func educationScore(level, minimum int) float64 {
	if level >= minimum {
		return 1.0
	}
	return float64(level) / models.MaxEducationScore
}

// thresholdScore caps credit at the minimum. A minimum of zero or less is
// always satisfied.
func thresholdScore(value, minimum float64) float64 {
	if minimum <= 0 {
		return 1.0
	}
	return min(value, minimum) / minimum
}

func ratio(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}
