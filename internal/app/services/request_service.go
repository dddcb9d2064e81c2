package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// RequestService handles the project request lifecycle
type RequestService interface {
	Submit(ctx context.Context, studentID int64, req *dto.SubmitRequestRequest) (*models.ProjectRequest, error)
	ListForStudent(ctx context.Context, studentID int64) ([]*models.StudentRequest, error)
	ListForMentor(ctx context.Context, mentorID int64, status string) ([]*models.MentorRequest, error)
	Respond(ctx context.Context, mentorID, requestID int64, req *dto.RespondRequest) (*models.ProjectRequest, error)
	GetByID(ctx context.Context, requesterID, requestID int64) (*models.ProjectRequest, error)
}

// RequestStore is the persistence surface the request service needs.
// The two write methods are transactional: the request write and its
// notification land together or not at all.
type RequestStore interface {
	CreateWithNotification(ctx context.Context, request *models.ProjectRequest, notification *models.Notification) error
	RespondWithNotification(ctx context.Context, requestID, mentorID int64, status models.RequestStatus, feedback string, notification *models.Notification) (*models.ProjectRequest, error)
	GetByID(ctx context.Context, requestID int64) (*models.ProjectRequest, error)
	HasPendingRequest(ctx context.Context, studentID, mentorID int64) (bool, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.StudentRequest, error)
	ListByMentor(ctx context.Context, mentorID int64, status models.RequestStatus) ([]*models.MentorRequest, error)
}

// UserGetter resolves user rows for role and name lookups
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type requestService struct {
	requests RequestStore
	users    UserGetter
	logger   zerolog.Logger
}

// NewRequestService creates a new RequestService
func NewRequestService(requests RequestStore, users UserGetter, logger zerolog.Logger) RequestService {
	return &requestService{requests: requests, users: users, logger: logger}
}

// Submit creates a pending request addressed to a mentor and notifies
// the mentor in the same transaction.
func (s *requestService) Submit(ctx context.Context, studentID int64, req *dto.SubmitRequestRequest) (*models.ProjectRequest, error) {
	mentor, err := s.users.GetByID(ctx, req.MentorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, err
	}
	if mentor.RoleType != models.RoleTeacher || !mentor.IsActive {
		return nil, apperrors.ErrMentorNotFound
	}

	exists, err := s.requests.HasPendingRequest(ctx, studentID, req.MentorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrPendingRequestExists
	}

	student, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	request := &models.ProjectRequest{
		StudentID:       studentID,
		MentorID:        req.MentorID,
		ProjectTitle:    req.ProjectTitle,
		Description:     req.Description,
		TeamSize:        req.TeamSize,
		Methodology:     req.Methodology,
		TechStack:       req.TechStack,
		Objectives:      req.Objectives,
		ExpectedOutcome: req.ExpectedOutcome,
		Duration:        req.Duration,
		AdditionalNotes: req.AdditionalNotes,
	}
	notification := &models.Notification{
		UserID:       req.MentorID,
		Type:         models.NotificationGeneral,
		Title:        "New project request",
		Message:      fmt.Sprintf("%s submitted a project request: %s", student.Name, req.ProjectTitle),
		ProjectTitle: &request.ProjectTitle,
	}

	if err := s.requests.CreateWithNotification(ctx, request, notification); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("requestId", request.ID).
		Int64("studentId", studentID).
		Int64("mentorId", req.MentorID).
		Msg("Project request submitted")
	return request, nil
}

func (s *requestService) ListForStudent(ctx context.Context, studentID int64) ([]*models.StudentRequest, error) {
	return s.requests.ListByStudent(ctx, studentID)
}

func (s *requestService) ListForMentor(ctx context.Context, mentorID int64, status string) ([]*models.MentorRequest, error) {
	return s.requests.ListByMentor(ctx, mentorID, models.RequestStatus(status))
}

// Respond applies the mentor's decision to a pending request and
// notifies the student in the same transaction.
func (s *requestService) Respond(ctx context.Context, mentorID, requestID int64, req *dto.RespondRequest) (*models.ProjectRequest, error) {
	status := models.RequestStatus(req.Status)
	if !slices.Contains(models.MentorStatuses, status) {
		return nil, apperrors.ErrInvalidRequestStatus
	}

	existing, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if existing.MentorID != mentorID {
		return nil, apperrors.NewForbiddenError("Only the addressed mentor can respond to this request")
	}

	mentor, err := s.users.GetByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	notification := &models.Notification{
		Type:         notificationTypeForStatus(status),
		Title:        notificationTitleForStatus(status),
		Message:      notificationMessageForStatus(status, mentor.Name, existing.ProjectTitle, req.Feedback),
		MentorName:   &mentor.Name,
		ProjectTitle: &existing.ProjectTitle,
	}
	if req.Feedback != "" {
		notification.Feedback = &req.Feedback
	}

	updated, err := s.requests.RespondWithNotification(ctx, requestID, mentorID, status, req.Feedback, notification)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("requestId", requestID).
		Int64("mentorId", mentorID).
		Str("status", string(status)).
		Msg("Project request responded")
	return updated, nil
}

// GetByID returns a request only to its student or addressed mentor
func (s *requestService) GetByID(ctx context.Context, requesterID, requestID int64) (*models.ProjectRequest, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.StudentID != requesterID && request.MentorID != requesterID {
		return nil, apperrors.NewForbiddenError("You do not have access to this request")
	}
	return request, nil
}

func notificationTypeForStatus(status models.RequestStatus) models.NotificationType {
	switch status {
	case models.StatusApproved:
		return models.NotificationRequestApproved
	case models.StatusRejected:
		return models.NotificationRequestRejected
	default:
		return models.NotificationRequestChanges
	}
}

func notificationTitleForStatus(status models.RequestStatus) string {
	switch status {
	case models.StatusApproved:
		return "Request approved"
	case models.StatusRejected:
		return "Request rejected"
	default:
		return "Changes requested"
	}
}

func notificationMessageForStatus(status models.RequestStatus, mentorName, projectTitle, feedback string) string {
	var msg string
	switch status {
	case models.StatusApproved:
		msg = fmt.Sprintf("%s approved your project request: %s", mentorName, projectTitle)
	case models.StatusRejected:
		msg = fmt.Sprintf("%s rejected your project request: %s", mentorName, projectTitle)
	default:
		msg = fmt.Sprintf("%s requested changes to your project request: %s", mentorName, projectTitle)
	}
	if feedback != "" {
		msg = msg + ". Feedback: " + feedback
	}
	return msg
}
