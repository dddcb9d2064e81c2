package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func submitPayload(mentorID int64) *dto.SubmitRequestRequest {
	return &dto.SubmitRequestRequest{
		MentorID:        mentorID,
		ProjectTitle:    "Campus Energy Dashboard",
		Description:     words(50),
		TeamSize:        3,
		Methodology:     words(30),
		TechStack:       []string{"Go", "PostgreSQL"},
		Objectives:      words(20),
		ExpectedOutcome: words(20),
		Duration:        models.DurationMedium,
	}
}

func setupRequestService() (RequestService, *fakeRequestStore, *fakeUserStore) {
	requests := newFakeRequestStore()
	users := newFakeUserStore()
	users.add(&models.User{ID: 1, Name: "Jane Doe", RoleType: models.RoleStudent, IsActive: true})
	users.add(&models.User{ID: 2, Name: "Dr. Rao", RoleType: models.RoleTeacher, IsActive: true})
	svc := NewRequestService(requests, users, zerolog.Nop())
	return svc, requests, users
}

func TestSubmit(t *testing.T) {
	svc, requests, _ := setupRequestService()

	request, err := svc.Submit(context.Background(), 1, submitPayload(2))
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, request.Status)
	assert.Equal(t, int64(1), request.StudentID)
	assert.Equal(t, int64(2), request.MentorID)

	// The mentor is notified in the same write.
	require.Len(t, requests.notifications, 1)
	n := requests.notifications[0]
	assert.Equal(t, int64(2), n.UserID)
	assert.Equal(t, models.NotificationGeneral, n.Type)
	assert.Contains(t, n.Message, "Jane Doe")
	assert.Contains(t, n.Message, "Campus Energy Dashboard")
	require.NotNil(t, n.RequestID)
	assert.Equal(t, request.ID, *n.RequestID)
}

func TestSubmit_MentorNotFound(t *testing.T) {
	svc, _, _ := setupRequestService()

	_, err := svc.Submit(context.Background(), 1, submitPayload(99))
	assert.ErrorIs(t, err, apperrors.ErrMentorNotFound)
}

func TestSubmit_MentorIsStudent(t *testing.T) {
	svc, _, users := setupRequestService()
	users.add(&models.User{ID: 3, Name: "Sam", RoleType: models.RoleStudent, IsActive: true})

	_, err := svc.Submit(context.Background(), 1, submitPayload(3))
	assert.ErrorIs(t, err, apperrors.ErrMentorNotFound)
}

func TestSubmit_MentorLookupFailure(t *testing.T) {
	svc, _, users := setupRequestService()
	users.lookupErr = errors.New("connection refused")

	// An infrastructure failure must surface as-is, not as a 404.
	_, err := svc.Submit(context.Background(), 1, submitPayload(2))
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrMentorNotFound)
	assert.ErrorIs(t, err, users.lookupErr)
}

func TestSubmit_DuplicatePending(t *testing.T) {
	svc, _, _ := setupRequestService()

	_, err := svc.Submit(context.Background(), 1, submitPayload(2))
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), 1, submitPayload(2))
	assert.ErrorIs(t, err, apperrors.ErrPendingRequestExists)
}

func TestSubmit_AllowedAfterResponse(t *testing.T) {
	svc, _, _ := setupRequestService()

	first, err := svc.Submit(context.Background(), 1, submitPayload(2))
	require.NoError(t, err)

	_, err = svc.Respond(context.Background(), 2, first.ID, &dto.RespondRequest{Status: "rejected"})
	require.NoError(t, err)

	// Once the first request is decided a new one may be opened.
	_, err = svc.Submit(context.Background(), 1, submitPayload(2))
	assert.NoError(t, err)
}

func TestRespond_Approve(t *testing.T) {
	svc, requests, _ := setupRequestService()

	request, err := svc.Submit(context.Background(), 1, submitPayload(2))
	require.NoError(t, err)

	updated, err := svc.Respond(context.Background(), 2, request.ID, &dto.RespondRequest{
		Status:   "approved",
		Feedback: "Strong proposal",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusApproved, updated.Status)
	assert.Equal(t, "Strong proposal", updated.MentorFeedback)
	assert.NotNil(t, updated.RespondedAt)

	// Submission notification plus the student's decision notification.
	require.Len(t, requests.notifications, 2)
	n := requests.notifications[1]
	assert.Equal(t, int64(1), n.UserID)
	assert.Equal(t, models.NotificationRequestApproved, n.Type)
	require.NotNil(t, n.MentorName)
	assert.Equal(t, "Dr. Rao", *n.MentorName)
	require.NotNil(t, n.Feedback)
	assert.Equal(t, "Strong proposal", *n.Feedback)
}

func TestRespond_ChangesRequested(t *testing.T) {
	svc, requests, _ := setupRequestService()

	request, err := svc.Submit(context.Background(), 1, submitPayload(2))
	require.NoError(t, err)

	updated, err := svc.Respond(context.Background(), 2, request.ID, &dto.RespondRequest{
		Status:   "changes_requested",
		Feedback: "Narrow the scope",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusChangesRequested, updated.Status)
	n := requests.notifications[len(requests.notifications)-1]
	assert.Equal(t, models.NotificationRequestChanges, n.Type)
	assert.Contains(t, n.Message, "Narrow the scope")
}

func TestRespond_NotAddressedMentor(t *testing.T) {
	svc, _, users := setupRequestService()
	users.add(&models.User{ID: 5, Name: "Dr. Lee", RoleType: models.RoleTeacher, IsActive: true})

	request, err := svc.Submit(context.Background(), 1, submitPayload(2))
	require.NoError(t, err)

	_, err = svc.Respond(context.Background(), 5, request.ID, &dto.RespondRequest{Status: "approved"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestRespond_RejectsNonMentorStatus(t *testing.T) {
	svc, requests, _ := setupRequestService()

	request, err := svc.Submit(context.Background(), 1, submitPayload(2))
	require.NoError(t, err)

	for _, status := range []string{"pending", "done", ""} {
		_, err = svc.Respond(context.Background(), 2, request.ID, &dto.RespondRequest{Status: status})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRequestStatus)
	}
	// No notification beyond the submission one was written.
	assert.Len(t, requests.notifications, 1)
}

func TestRespond_MissingRequest(t *testing.T) {
	svc, _, _ := setupRequestService()

	_, err := svc.Respond(context.Background(), 2, 12345, &dto.RespondRequest{Status: "approved"})
	assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)
}

func TestRespond_Overwrite(t *testing.T) {
	svc, _, _ := setupRequestService()

	request, err := svc.Submit(context.Background(), 1, submitPayload(2))
	require.NoError(t, err)

	_, err = svc.Respond(context.Background(), 2, request.ID, &dto.RespondRequest{Status: "changes_requested"})
	require.NoError(t, err)

	updated, err := svc.Respond(context.Background(), 2, request.ID, &dto.RespondRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
}

func TestGetByID_Visibility(t *testing.T) {
	svc, _, users := setupRequestService()
	users.add(&models.User{ID: 7, Name: "Eve", RoleType: models.RoleStudent, IsActive: true})

	request, err := svc.Submit(context.Background(), 1, submitPayload(2))
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 1, request.ID)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 2, request.ID)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 7, request.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestListForMentor_StatusFilter(t *testing.T) {
	svc, _, users := setupRequestService()
	users.add(&models.User{ID: 8, Name: "Sam", RoleType: models.RoleStudent, IsActive: true})

	first, err := svc.Submit(context.Background(), 1, submitPayload(2))
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), 8, submitPayload(2))
	require.NoError(t, err)

	_, err = svc.Respond(context.Background(), 2, first.ID, &dto.RespondRequest{Status: "approved"})
	require.NoError(t, err)

	pending, err := svc.ListForMentor(context.Background(), 2, "pending")
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	all, err := svc.ListForMentor(context.Background(), 2, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
