package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUniversityEmail(t *testing.T) {
	domains := []string{"students.university.edu", "faculty.university.edu"}

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"student domain", "jane@students.university.edu", true},
		{"faculty domain", "prof@faculty.university.edu", true},
		{"case insensitive domain", "jane@Students.University.EDU", true},
		{"gmail", "jane@gmail.com", false},
		{"lookalike domain", "jane@students.university.edu.evil.com", false},
		{"missing at sign", "students.university.edu", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniversityEmail(tt.email, domains))
		})
	}
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   \t\n"))
	assert.Equal(t, 1, WordCount("hello"))
	assert.Equal(t, 3, WordCount("  one   two\tthree\n"))
}

func TestWordCountBoundary(t *testing.T) {
	words49 := strings.TrimSpace(strings.Repeat("word ", 49))
	words50 := strings.TrimSpace(strings.Repeat("word ", 50))

	assert.Equal(t, 49, WordCount(words49))
	assert.Equal(t, 50, WordCount(words50))
}
