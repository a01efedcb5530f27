package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	yearRangePattern = regexp.MustCompile(`(\b\d{4}\b)\s*-\s*(\b\d{4}\b|\bsekarang\b|\bpresent\b)`)
	yearCountPattern = regexp.MustCompile(`(\d+)\s*(?:tahun|thn|years|year)`)
)

// earliestStartYear excludes birth years and other dates that look like ranges.
const earliestStartYear = 1980

// ExperienceYears sums every "YYYY - YYYY" or "YYYY - sekarang/present"
// range in text. Overlapping ranges are counted twice. When no range
// contributes, it falls back to the largest "<N> tahun/years" mention.
func ExperienceYears(text string, currentYear int) int {
	lower := strings.ToLower(text)

	total := 0
	for _, m := range yearRangePattern.FindAllStringSubmatch(lower, -1) {
		start, _ := strconv.Atoi(m[1])
		end := currentYear
		if m[2] != "sekarang" && m[2] != "present" {
			end, _ = strconv.Atoi(m[2])
		}
		if start > earliestStartYear && end >= start {
			total += end - start
		}
	}
	if total > 0 {
		return total
	}

	for _, m := range yearCountPattern.FindAllStringSubmatch(lower, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > total {
			total = n
		}
	}
	return total
}
