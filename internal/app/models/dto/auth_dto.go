package dto

// SendOTPRequest starts email ownership verification
type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email" example:"jane@students.university.edu"`
}

// VerifyOTPRequest completes email ownership verification
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email" example:"jane@students.university.edu"`
	Code  string `json:"code" binding:"required,len=6,numeric" example:"482913"`
}

// SignupRequest creates a new account. The email must have passed OTP
// verification first.
type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"jane@students.university.edu"`
	Password string `json:"password" binding:"required,min=8" example:"s3cretPass"`
	RoleType string `json:"roleType" binding:"required,oneof=STUDENT TEACHER" example:"STUDENT"`
}

// SigninRequest authenticates an existing account
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@students.university.edu"`
	Password string `json:"password" binding:"required" example:"s3cretPass"`
}

// TokenResponse carries the issued access token and user summary
type TokenResponse struct {
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType" example:"Bearer"`
	ExpiresIn   int      `json:"expiresIn" example:"3600"`
	User        UserData `json:"user"`
}

// UserData is the public view of a user account
type UserData struct {
	ID       int64  `json:"id" example:"1"`
	Name     string `json:"name" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@students.university.edu"`
	RoleType string `json:"roleType" example:"STUDENT" enums:"STUDENT,TEACHER"`
}
