package extractor

import (
	"regexp"
	"strings"
)

var organizationPattern = regexp.MustCompile(`\b(organisasi|himpunan|ukm|bem|volunteer|sukarelawan)\b`)

// ExtractOrganization reports 1 when the CV mentions organizational or
// volunteer work, otherwise 0.
func ExtractOrganization(text string) int {
	if organizationPattern.MatchString(strings.ToLower(text)) {
		return 1
	}
	return 0
}
