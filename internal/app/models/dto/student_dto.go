package dto

// CreateStudentProfileRequest creates the caller's student profile
type CreateStudentProfileRequest struct {
	RegistrationNo string   `json:"registrationNo" binding:"required,min=3,max=30" example:"21BCE1042"`
	Year           int      `json:"year" binding:"required,min=1,max=5" example:"3"`
	Section        string   `json:"section" binding:"required,max=10" example:"B"`
	CGPA           float64  `json:"cgpa" binding:"min=0,max=10" example:"8.74"`
	Skills         []string `json:"skills" binding:"omitempty,dive,min=1"`
	Interests      []string `json:"interests" binding:"omitempty,dive,min=1"`
	GithubURL      *string  `json:"githubUrl" binding:"omitempty,url"`
	LinkedinURL    *string  `json:"linkedinUrl" binding:"omitempty,url"`
	PortfolioURL   *string  `json:"portfolioUrl" binding:"omitempty,url"`
}

// UpdateStudentProfileRequest partially updates the caller's profile.
// Nil fields are left untouched.
type UpdateStudentProfileRequest struct {
	Year         *int      `json:"year" binding:"omitempty,min=1,max=5"`
	Section      *string   `json:"section" binding:"omitempty,max=10"`
	CGPA         *float64  `json:"cgpa" binding:"omitempty,min=0,max=10"`
	Skills       *[]string `json:"skills" binding:"omitempty,dive,min=1"`
	Interests    *[]string `json:"interests" binding:"omitempty,dive,min=1"`
	GithubURL    *string   `json:"githubUrl" binding:"omitempty,url"`
	LinkedinURL  *string   `json:"linkedinUrl" binding:"omitempty,url"`
	PortfolioURL *string   `json:"portfolioUrl" binding:"omitempty,url"`
}
