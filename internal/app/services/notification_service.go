package services

import (
	"context"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// NotificationService handles the per-user notification inbox
type NotificationService interface {
	List(ctx context.Context, userID int64, query *dto.NotificationListQuery) (*dto.NotificationListResponse, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, userID, notificationID int64) error
	ClearRead(ctx context.Context, userID int64) (int64, error)
}

// NotificationStore is the persistence surface the notification
// service needs.
type NotificationStore interface {
	List(ctx context.Context, userID int64, unreadOnly bool, offset, limit int) ([]*models.Notification, error)
	Count(ctx context.Context, userID int64, unreadOnly bool) (int64, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, userID, notificationID int64) error
	DeleteRead(ctx context.Context, userID int64) (int64, error)
}

type notificationService struct {
	notifications NotificationStore
	logger        zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifications NotificationStore, logger zerolog.Logger) NotificationService {
	return &notificationService{notifications: notifications, logger: logger}
}

func (s *notificationService) List(ctx context.Context, userID int64, query *dto.NotificationListQuery) (*dto.NotificationListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(query.Page, query.Limit)

	total, err := s.notifications.Count(ctx, userID, query.UnreadOnly)
	if err != nil {
		return nil, err
	}

	unread, err := s.notifications.UnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	notifications, err := s.notifications.List(ctx, userID, query.UnreadOnly, int(offset), limit)
	if err != nil {
		return nil, err
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		Pagination:    helpers.NewPaginationInfo(total, query.Page, limit),
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.notifications.UnreadCount(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return s.notifications.MarkRead(ctx, userID, notificationID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return s.notifications.MarkAllRead(ctx, userID)
}

func (s *notificationService) Delete(ctx context.Context, userID, notificationID int64) error {
	return s.notifications.Delete(ctx, userID, notificationID)
}

func (s *notificationService) ClearRead(ctx context.Context, userID int64) (int64, error) {
	count, err := s.notifications.DeleteRead(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.logger.Debug().Int64("userId", userID).Int64("deleted", count).Msg("Cleared read notifications")
	return count, nil
}
