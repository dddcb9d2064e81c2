package models

import "time"

// StudentProfile defines the student profile model based on the
// 'student_profiles' table. At most one profile exists per user and
// per registration number.
type StudentProfile struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	UserID         int64     `json:"userId" db:"user_id" example:"5"`
	RegistrationNo string    `json:"registrationNo" db:"registration_no" example:"21BCE1042"`
	Year           int       `json:"year" db:"year" example:"3"`
	Section        string    `json:"section" db:"section" example:"B"`
	CGPA           float64   `json:"cgpa" db:"cgpa" example:"8.74"`
	Skills         []string  `json:"skills" db:"skills"`
	Interests      []string  `json:"interests" db:"interests"`
	GithubURL      *string   `json:"githubUrl,omitempty" db:"github_url"`
	LinkedinURL    *string   `json:"linkedinUrl,omitempty" db:"linkedin_url"`
	PortfolioURL   *string   `json:"portfolioUrl,omitempty" db:"portfolio_url"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`

	// Relation (populated when needed)
	User *User `json:"user,omitempty"`
}
