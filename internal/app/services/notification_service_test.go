package services

import (
	"context"
	"testing"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedInbox(store *fakeNotificationStore, userID int64, total, read int) {
	for i := 0; i < total; i++ {
		n := &models.Notification{
			UserID:  userID,
			Type:    models.NotificationGeneral,
			Title:   "New project request",
			Message: "A request arrived",
		}
		if i < read {
			n.Read = true
		}
		store.add(n)
	}
}

func TestNotificationList(t *testing.T) {
	store := newFakeNotificationStore()
	seedInbox(store, 1, 5, 2)
	seedInbox(store, 2, 3, 0) // another user's inbox stays invisible
	svc := NewNotificationService(store, zerolog.Nop())

	result, err := svc.List(context.Background(), 1, &dto.NotificationListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Len(t, result.Notifications, 5)
	assert.Equal(t, int64(3), result.UnreadCount)
	assert.Equal(t, int64(5), result.Pagination.TotalItems)
}

func TestNotificationList_UnreadOnly(t *testing.T) {
	store := newFakeNotificationStore()
	seedInbox(store, 1, 5, 2)
	svc := NewNotificationService(store, zerolog.Nop())

	result, err := svc.List(context.Background(), 1, &dto.NotificationListQuery{Page: 1, Limit: 10, UnreadOnly: true})
	require.NoError(t, err)

	assert.Len(t, result.Notifications, 3)
	for _, n := range result.Notifications {
		assert.False(t, n.Read)
	}
}

func TestNotificationList_Pagination(t *testing.T) {
	store := newFakeNotificationStore()
	seedInbox(store, 1, 25, 0)
	svc := NewNotificationService(store, zerolog.Nop())

	result, err := svc.List(context.Background(), 1, &dto.NotificationListQuery{Page: 3, Limit: 10})
	require.NoError(t, err)

	assert.Len(t, result.Notifications, 5)
	assert.Equal(t, 3, result.Pagination.CurrentPage)
	assert.Equal(t, 3, result.Pagination.TotalPages)
}

func TestMarkRead_Idempotent(t *testing.T) {
	store := newFakeNotificationStore()
	n := store.add(&models.Notification{UserID: 1, Type: models.NotificationGeneral})
	svc := NewNotificationService(store, zerolog.Nop())

	require.NoError(t, svc.MarkRead(context.Background(), 1, n.ID))
	require.NoError(t, svc.MarkRead(context.Background(), 1, n.ID))

	count, err := svc.UnreadCount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMarkRead_NotOwned(t *testing.T) {
	store := newFakeNotificationStore()
	n := store.add(&models.Notification{UserID: 2, Type: models.NotificationGeneral})
	svc := NewNotificationService(store, zerolog.Nop())

	err := svc.MarkRead(context.Background(), 1, n.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
}

func TestMarkAllRead(t *testing.T) {
	store := newFakeNotificationStore()
	seedInbox(store, 1, 4, 1)
	svc := NewNotificationService(store, zerolog.Nop())

	updated, err := svc.MarkAllRead(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)

	// Nothing left unread; a second run is a no-op.
	updated, err = svc.MarkAllRead(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)
}

func TestDeleteNotification(t *testing.T) {
	store := newFakeNotificationStore()
	n := store.add(&models.Notification{UserID: 1, Type: models.NotificationGeneral})
	svc := NewNotificationService(store, zerolog.Nop())

	require.NoError(t, svc.Delete(context.Background(), 1, n.ID))

	err := svc.Delete(context.Background(), 1, n.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
}

func TestClearRead(t *testing.T) {
	store := newFakeNotificationStore()
	seedInbox(store, 1, 5, 2)
	svc := NewNotificationService(store, zerolog.Nop())

	deleted, err := svc.ClearRead(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	total, err := store.Count(context.Background(), 1, false)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
