package extractor

import (
	"regexp"
	"strings"
)

type educationTier struct {
	score   int
	pattern *regexp.Regexp
}

// educationTiers is ordered highest first. SD, SMP, D1 and D2 are never
// detected; they only exist as rubric minimums.
var educationTiers = []educationTier{
	{score: 7, pattern: regexp.MustCompile(`\b(s2|master|magister)\b`)},
	{score: 6, pattern: regexp.MustCompile(`\b(s1|sarjana|bachelor)\b`)},
	{score: 5, pattern: regexp.MustCompile(`\b(d3|diploma)\b`)},
	{score: 3, pattern: regexp.MustCompile(`\b(sma|smk)\b`)},
}

// ExtractEducation returns the ordinal of the highest credential mentioned
// in text, or 0.
func ExtractEducation(text string) int {
	lower := strings.ToLower(text)
	for _, tier := range educationTiers {
		if tier.pattern.MatchString(lower) {
			return tier.score
		}
	}
	return 0
}
