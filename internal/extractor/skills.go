package extractor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	wordChar    = `[\p{L}\p{N}_]`
	nonWordChar = `[^\p{L}\p{N}_]`
)

// MatchSkills returns the keywords found in text as whole words, ignoring
// case. The result keeps the order of keywords, not the order of occurrence.
func MatchSkills(text string, keywords []string) []string {
	found := []string{}
	if len(keywords) == 0 {
		return found
	}

	lower := strings.ToLower(text)
	for _, skill := range keywords {
		if skill == "" {
			continue
		}
		re, err := regexp.Compile(wordBounded(strings.ToLower(skill)))
		if err != nil {
			continue
		}
		if re.MatchString(lower) {
			found = append(found, skill)
		}
	}
	return found
}

// wordBounded builds a pattern that matches keyword at a word boundary on
// each side, where word characters are Unicode letters, digits and '_'.
// An edge that is itself a non-word character needs a word character next
// to it, the same as a \b anchor would.
func wordBounded(keyword string) string {
	first, _ := utf8.DecodeRuneInString(keyword)
	last, _ := utf8.DecodeLastRuneInString(keyword)

	prefix := `(?:^|` + nonWordChar + `)`
	if !isWordRune(first) {
		prefix = wordChar
	}
	suffix := `(?:$|` + nonWordChar + `)`
	if !isWordRune(last) {
		suffix = wordChar
	}
	return prefix + regexp.QuoteMeta(keyword) + suffix
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
