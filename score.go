package main

import (
	"math"
	"strings"
)

// parseSkillTerms splits a comma-separated skills field into lowercased
// terms. Empty tokens are dropped; duplicates are kept, matching how the
// field is entered by HR ("Go, Go, SQL" is three terms).
func parseSkillTerms(spec string) []string {
	var terms []string
	for _, raw := range strings.Split(spec, ",") {
		term := strings.ToLower(strings.TrimSpace(raw))
		if term == "" {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}

// matchScore computes the percentage of required skill terms that occur
// as case-insensitive substrings of the resume text, rounded to two
// decimals. An empty term list scores 0.0 rather than dividing by zero.
// A term counts once no matter how often it appears in the resume.
func matchScore(resumeText, skillsSpec string) float64 {
	terms := parseSkillTerms(skillsSpec)
	if len(terms) == 0 {
		return 0.0
	}

	haystack := strings.ToLower(resumeText)
	matched := 0
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			matched++
		}
	}

	score := float64(matched) / float64(len(terms)) * 100
	return math.Round(score*100) / 100
}
