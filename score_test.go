package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name     string
		resume   string
		skills   string
		expected float64
	}{
		{
			name:     "all terms present",
			resume:   "Built REST services in Python with SQL and AWS deployments.",
			skills:   "Python, SQL, AWS",
			expected: 100.0,
		},
		{
			name:     "two of three terms",
			resume:   "Data pipelines in python and sql.",
			skills:   "Python, SQL, AWS",
			expected: 66.67,
		},
		{
			name:     "one of three terms",
			resume:   "Five years of Python experience.",
			skills:   "Python, SQL, AWS",
			expected: 33.33,
		},
		{
			name:     "no terms present",
			resume:   "Frontend developer, React and CSS.",
			skills:   "Python, SQL, AWS",
			expected: 0.0,
		},
		{
			name:     "case insensitive both ways",
			resume:   "Expert in PYTHON and PostgreSQL.",
			skills:   "python, postgresql",
			expected: 100.0,
		},
		{
			name:     "empty skills spec",
			resume:   "Python, SQL, AWS, everything really.",
			skills:   "",
			expected: 0.0,
		},
		{
			name:     "skills spec of only separators",
			resume:   "Python",
			skills:   " , ,, ",
			expected: 0.0,
		},
		{
			name:     "empty resume",
			resume:   "",
			skills:   "Python, SQL",
			expected: 0.0,
		},
		{
			name:     "duplicate terms count per occurrence",
			resume:   "I know sql.",
			skills:   "Go, Go, SQL",
			expected: 33.33,
		},
		{
			name:     "substring match without word boundary",
			resume:   "JavaScript developer.",
			skills:   "Java",
			expected: 100.0,
		},
		{
			name:     "term counts once regardless of frequency",
			resume:   "python python python",
			skills:   "Python, SQL",
			expected: 50.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, matchScore(tt.resume, tt.skills), 0.001)
		})
	}
}

func TestParseSkillTerms(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		expected []string
	}{
		{
			name:     "trims and lowercases",
			spec:     " Python ,  SQL,AWS ",
			expected: []string{"python", "sql", "aws"},
		},
		{
			name:     "drops empty tokens",
			spec:     "Go,,  ,SQL",
			expected: []string{"go", "sql"},
		},
		{
			name:     "keeps duplicates",
			spec:     "Go, go",
			expected: []string{"go", "go"},
		},
		{
			name:     "empty spec",
			spec:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseSkillTerms(tt.spec))
		})
	}
}
