package dto

// SubmitRequestRequest is a structured project proposal addressed to a
// mentor. The free-text sections enforce minimum word counts so that
// mentors receive substantive proposals.
type SubmitRequestRequest struct {
	MentorID        int64    `json:"mentorId" binding:"required,min=1" example:"9"`
	ProjectTitle    string   `json:"projectTitle" binding:"required,min=1,max=200" example:"Campus Energy Dashboard"`
	Description     string   `json:"description" binding:"required,minwords=50"`
	TeamSize        int      `json:"teamSize" binding:"required,min=1,max=10" example:"3"`
	Methodology     string   `json:"methodology" binding:"required,minwords=30"`
	TechStack       []string `json:"techStack" binding:"required,min=1,dive,min=1"`
	Objectives      string   `json:"objectives" binding:"required,minwords=20"`
	ExpectedOutcome string   `json:"expectedOutcome" binding:"required,minwords=20"`
	Duration        string   `json:"duration" binding:"required,oneof='1-2 months' '3-4 months' '6 months' '1 year'" example:"3-4 months"`
	AdditionalNotes string   `json:"additionalNotes" binding:"omitempty,max=2000"`
}

// RespondRequest is the mentor's decision on a project request
type RespondRequest struct {
	Status   string `json:"status" binding:"required,oneof=approved rejected changes_requested" example:"approved"`
	Feedback string `json:"feedback" binding:"omitempty,max=2000" example:"Great proposal"`
}
