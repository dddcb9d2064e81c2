package models

import "time"

// ProjectRequest defines the project proposal model based on the
// 'project_requests' table. Created by a student with status pending;
// only the addressed mentor may change its status afterwards.
type ProjectRequest struct {
	ID              int64         `json:"id" db:"id" example:"7"`
	StudentID       int64         `json:"studentId" db:"student_id" example:"5"`
	MentorID        int64         `json:"mentorId" db:"mentor_id" example:"9"`
	ProjectTitle    string        `json:"projectTitle" db:"project_title" example:"Campus Energy Dashboard"`
	Description     string        `json:"description" db:"description"`
	TeamSize        int           `json:"teamSize" db:"team_size" example:"3"`
	Methodology     string        `json:"methodology" db:"methodology"`
	TechStack       []string      `json:"techStack" db:"tech_stack"`
	Objectives      string        `json:"objectives" db:"objectives"`
	ExpectedOutcome string        `json:"expectedOutcome" db:"expected_outcome"`
	Duration        string        `json:"duration" db:"duration" example:"3-4 months"`
	AdditionalNotes string        `json:"additionalNotes,omitempty" db:"additional_notes"`
	Status          RequestStatus `json:"status" db:"status" example:"pending"`
	MentorFeedback  string        `json:"mentorFeedback,omitempty" db:"mentor_feedback"`
	RespondedAt     *time.Time    `json:"respondedAt,omitempty" db:"responded_at"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time     `json:"updatedAt" db:"updated_at"`
}

// StudentRequest is a project request joined with the addressed
// mentor's name and designation, as shown on the student dashboard.
type StudentRequest struct {
	ProjectRequest
	MentorName        string  `json:"mentorName" db:"mentor_name"`
	MentorDesignation *string `json:"mentorDesignation,omitempty" db:"mentor_designation"`
}

// MentorRequest is a project request joined with the submitting
// student's profile attributes, as shown on the mentor dashboard.
// Profile fields hold zero values when the student has not created a
// profile yet.
type MentorRequest struct {
	ProjectRequest
	StudentName    string   `json:"studentName" db:"student_name"`
	RegistrationNo string   `json:"registrationNo" db:"registration_no"`
	Year           int      `json:"year" db:"year"`
	Section        string   `json:"section" db:"section"`
	CGPA           float64  `json:"cgpa" db:"cgpa"`
	StudentSkills  []string `json:"studentSkills" db:"student_skills"`
	Interests      []string `json:"interests" db:"interests"`
	GithubURL      *string  `json:"githubUrl,omitempty" db:"github_url"`
}
