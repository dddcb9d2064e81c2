package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
)

const notificationColumns = "id, user_id, type, title, message, read, request_id, mentor_name, project_title, feedback, created_at"

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanNotification(row pgx.Row) (*models.Notification, error) {
	n := &models.Notification{}
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Type,
		&n.Title,
		&n.Message,
		&n.Read,
		&n.RequestID,
		&n.MentorName,
		&n.ProjectTitle,
		&n.Feedback,
		&n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("error scanning notification: %w", err)
	}
	return n, nil
}

// Create inserts a notification using the pool
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.CreateIn(ctx, r.db, notification)
}

// CreateIn inserts a notification using the given querier, which may be
// a transaction started by the caller.
func (r *NotificationRepository) CreateIn(ctx context.Context, q Querier, notification *models.Notification) error {
	sql, args, err := r.sb.Insert("notifications").
		Columns("user_id", "type", "title", "message", "read", "request_id", "mentor_name", "project_title", "feedback").
		Values(
			notification.UserID,
			notification.Type,
			notification.Title,
			notification.Message,
			notification.Read,
			notification.RequestID,
			notification.MentorName,
			notification.ProjectTitle,
			notification.Feedback,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert notification query: %w", err)
	}

	err = q.QueryRow(ctx, sql, args...).Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

// List returns a page of notifications for a user, newest first
func (r *NotificationRepository) List(ctx context.Context, userID int64, unreadOnly bool, offset, limit int) ([]*models.Notification, error) {
	builder := r.sb.Select(notificationColumns).
		From("notifications").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit))
	if unreadOnly {
		builder = builder.Where(squirrel.Eq{"read": false})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*models.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}
	return notifications, nil
}

// Count returns the total number of notifications for a user
func (r *NotificationRepository) Count(ctx context.Context, userID int64, unreadOnly bool) (int64, error) {
	builder := r.sb.Select("COUNT(*)").
		From("notifications").
		Where(squirrel.Eq{"user_id": userID})
	if unreadOnly {
		builder = builder.Where(squirrel.Eq{"read": false})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count notifications query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting notifications: %w", err)
	}
	return count, nil
}

// UnreadCount returns the number of unread notifications for a user
func (r *NotificationRepository) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return r.Count(ctx, userID, true)
}

// MarkRead marks a single notification as read. Marking an already
// read notification succeeds without effect.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, notificationID int64) error {
	sql, args, err := r.sb.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"id": notificationID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark read query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks every unread notification of the user as read and
// returns how many rows changed.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	sql, args, err := r.sb.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"user_id": userID, "read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build mark all read query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error marking all notifications read: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Delete removes a single notification owned by the user
func (r *NotificationRepository) Delete(ctx context.Context, userID, notificationID int64) error {
	sql, args, err := r.sb.Delete("notifications").
		Where(squirrel.Eq{"id": notificationID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete notification query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting notification: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

// DeleteRead removes all read notifications of the user and returns
// how many rows were removed.
func (r *NotificationRepository) DeleteRead(ctx context.Context, userID int64) (int64, error) {
	sql, args, err := r.sb.Delete("notifications").
		Where(squirrel.Eq{"user_id": userID, "read": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete read notifications query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting read notifications: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
