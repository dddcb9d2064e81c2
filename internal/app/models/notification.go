package models

import "time"

// Notification defines the inbox model based on the 'notifications'
// table. Created as a side effect of request lifecycle changes, in the
// same transaction as the request write.
type Notification struct {
	ID        int64            `json:"id" db:"id" example:"11"`
	UserID    int64            `json:"userId" db:"user_id" example:"5"`
	Type      NotificationType `json:"type" db:"type" example:"request_approved"`
	Title     string           `json:"title" db:"title" example:"Request approved"`
	Message   string           `json:"message" db:"message"`
	Read      bool             `json:"read" db:"read" example:"false"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`

	// Contextual payload resolved from the originating request.
	RequestID    *int64  `json:"requestId,omitempty" db:"request_id"`
	MentorName   *string `json:"mentorName,omitempty" db:"mentor_name"`
	ProjectTitle *string `json:"projectTitle,omitempty" db:"project_title"`
	Feedback     *string `json:"feedback,omitempty" db:"feedback"`
}
