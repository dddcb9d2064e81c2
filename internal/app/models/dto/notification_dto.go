package dto

import "github.com/mentorhub/backend/internal/app/models"

// NotificationListQuery parameterizes the inbox listing
type NotificationListQuery struct {
	Page       int  `form:"page,default=1" binding:"omitempty,min=1"`
	Limit      int  `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	UnreadOnly bool `form:"unreadOnly"`
}

// NotificationListResponse is a notification page plus inbox counters
type NotificationListResponse struct {
	Notifications []*models.Notification `json:"notifications"`
	Pagination    PaginationInfo         `json:"pagination"`
	UnreadCount   int64                  `json:"unreadCount" example:"4"`
}

// UnreadCountResponse carries the unread counter alone
type UnreadCountResponse struct {
	UnreadCount int64 `json:"unreadCount" example:"4"`
}
