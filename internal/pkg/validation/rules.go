package validation

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// AllowedEmailDomains are the university domains accepted at signup.
// Overridable through configuration.
var AllowedEmailDomains = []string{
	"students.university.edu",
	"faculty.university.edu",
}

// IsUniversityEmail reports whether the email belongs to one of the
// allowed university domains.
func IsUniversityEmail(email string, domains []string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	for _, d := range domains {
		if domain == strings.ToLower(d) {
			return true
		}
	}
	return false
}

// WordCount counts whitespace-separated words in a string
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// minWords validates that a string field contains at least the given
// number of words, e.g. `binding:"minwords=50"`.
func minWords(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return WordCount(fl.Field().String()) >= min
}

// RegisterRules registers custom validation rules on gin's binding
// validator. Called once at startup.
func RegisterRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("minwords", minWords)
}
