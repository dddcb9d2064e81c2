package dto

// CreateFacultyProfileRequest creates the caller's faculty profile
type CreateFacultyProfileRequest struct {
	Designation string   `json:"designation" binding:"required,min=2,max=100" example:"Associate Professor"`
	Capacity    string   `json:"capacity" binding:"required,oneof=available limited full" example:"available"`
	Skills      []string `json:"skills" binding:"omitempty,dive,min=1"`
	Interests   []string `json:"interests" binding:"omitempty,dive,min=1"`
}

// UpdateFacultyProfileRequest partially updates the caller's profile
type UpdateFacultyProfileRequest struct {
	Designation *string   `json:"designation" binding:"omitempty,min=2,max=100"`
	Capacity    *string   `json:"capacity" binding:"omitempty,oneof=available limited full"`
	Skills      *[]string `json:"skills" binding:"omitempty,dive,min=1"`
	Interests   *[]string `json:"interests" binding:"omitempty,dive,min=1"`
}

// MentorFilter narrows the mentor directory listing
type MentorFilter struct {
	Capacity string `form:"capacity" binding:"omitempty,oneof=available limited full"`
	Skill    string `form:"skill" binding:"omitempty,min=1"`
}
