package models

import "time"

// FacultyProfile defines the faculty profile model based on the
// 'faculty_profiles' table. One profile per user.
type FacultyProfile struct {
	ID          int64     `json:"id" db:"id" example:"2"`
	UserID      int64     `json:"userId" db:"user_id" example:"9"`
	Designation string    `json:"designation" db:"designation" example:"Associate Professor"`
	Capacity    Capacity  `json:"capacity" db:"capacity" example:"available"`
	Skills      []string  `json:"skills" db:"skills"`
	Interests   []string  `json:"interests" db:"interests"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Relation (populated when needed)
	User *User `json:"user,omitempty"`
}
