package services

import (
	"context"
	"sync"
	"time"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/repositories"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
)

// In-memory fakes for the store interfaces used by the services.

type fakeUserStore struct {
	users     map[int64]*models.User
	nextID    int64
	lookupErr error // when set, GetByID fails with this error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUserStore) add(user *models.User) *models.User {
	if user.ID == 0 {
		user.ID = f.nextID
		f.nextID++
	} else if user.ID >= f.nextID {
		f.nextID = user.ID + 1
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.add(user)
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) UpdateLastLogin(_ context.Context, userID int64) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	now := time.Now()
	u.LastLoginAt = &now
	return nil
}

type fakeOTPStore struct {
	codes map[string]*repositories.VerificationCode
}

func newFakeOTPStore() *fakeOTPStore {
	return &fakeOTPStore{codes: map[string]*repositories.VerificationCode{}}
}

func (f *fakeOTPStore) Upsert(_ context.Context, email, code string, expiresAt time.Time) error {
	f.codes[email] = &repositories.VerificationCode{
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return nil
}

func (f *fakeOTPStore) Get(_ context.Context, email string) (*repositories.VerificationCode, error) {
	vc, ok := f.codes[email]
	if !ok {
		return nil, apperrors.ErrInvalidVerificationCode
	}
	return vc, nil
}

func (f *fakeOTPStore) MarkVerified(_ context.Context, email string, signupWindow time.Duration) error {
	vc, ok := f.codes[email]
	if !ok {
		return apperrors.ErrInvalidVerificationCode
	}
	vc.Verified = true
	vc.ExpiresAt = time.Now().Add(signupWindow)
	return nil
}

func (f *fakeOTPStore) Delete(_ context.Context, email string) error {
	delete(f.codes, email)
	return nil
}

func (f *fakeOTPStore) DeleteExpired(_ context.Context) error {
	for email, vc := range f.codes {
		if time.Now().After(vc.ExpiresAt) {
			delete(f.codes, email)
		}
	}
	return nil
}

type fakeEmailService struct {
	mu            sync.Mutex
	otpEmails     []string
	welcomeEmails []string
	lastCode      string
}

func (f *fakeEmailService) SendOTPEmail(toEmail, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.otpEmails = append(f.otpEmails, toEmail)
	f.lastCode = code
	return nil
}

func (f *fakeEmailService) SendWelcomeEmail(toEmail, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.welcomeEmails = append(f.welcomeEmails, toEmail)
	return nil
}

type fakeRequestStore struct {
	requests      map[int64]*models.ProjectRequest
	notifications []*models.Notification
	nextID        int64
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{requests: map[int64]*models.ProjectRequest{}, nextID: 1}
}

func (f *fakeRequestStore) CreateWithNotification(_ context.Context, request *models.ProjectRequest, notification *models.Notification) error {
	for _, r := range f.requests {
		if r.StudentID == request.StudentID && r.MentorID == request.MentorID && r.Status == models.StatusPending {
			return apperrors.ErrPendingRequestExists
		}
	}
	request.ID = f.nextID
	f.nextID++
	request.Status = models.StatusPending
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	f.requests[request.ID] = request

	notification.RequestID = &request.ID
	f.notifications = append(f.notifications, notification)
	return nil
}

func (f *fakeRequestStore) RespondWithNotification(_ context.Context, requestID, mentorID int64, status models.RequestStatus, feedback string, notification *models.Notification) (*models.ProjectRequest, error) {
	request, ok := f.requests[requestID]
	if !ok || request.MentorID != mentorID {
		return nil, apperrors.ErrRequestNotFound
	}
	now := time.Now()
	request.Status = status
	request.MentorFeedback = feedback
	request.RespondedAt = &now
	request.UpdatedAt = now

	notification.UserID = request.StudentID
	notification.RequestID = &request.ID
	f.notifications = append(f.notifications, notification)
	return request, nil
}

func (f *fakeRequestStore) GetByID(_ context.Context, requestID int64) (*models.ProjectRequest, error) {
	request, ok := f.requests[requestID]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	return request, nil
}

func (f *fakeRequestStore) HasPendingRequest(_ context.Context, studentID, mentorID int64) (bool, error) {
	for _, r := range f.requests {
		if r.StudentID == studentID && r.MentorID == mentorID && r.Status == models.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRequestStore) ListByStudent(_ context.Context, studentID int64) ([]*models.StudentRequest, error) {
	result := []*models.StudentRequest{}
	for _, r := range f.requests {
		if r.StudentID == studentID {
			result = append(result, &models.StudentRequest{ProjectRequest: *r})
		}
	}
	return result, nil
}

func (f *fakeRequestStore) ListByMentor(_ context.Context, mentorID int64, status models.RequestStatus) ([]*models.MentorRequest, error) {
	result := []*models.MentorRequest{}
	for _, r := range f.requests {
		if r.MentorID != mentorID {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		result = append(result, &models.MentorRequest{ProjectRequest: *r})
	}
	return result, nil
}

type fakeNotificationStore struct {
	notifications map[int64]*models.Notification
	nextID        int64
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{notifications: map[int64]*models.Notification{}, nextID: 1}
}

func (f *fakeNotificationStore) add(n *models.Notification) *models.Notification {
	n.ID = f.nextID
	f.nextID++
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	f.notifications[n.ID] = n
	return n
}

func (f *fakeNotificationStore) List(_ context.Context, userID int64, unreadOnly bool, offset, limit int) ([]*models.Notification, error) {
	matched := []*models.Notification{}
	for id := f.nextID - 1; id >= 1; id-- {
		n, ok := f.notifications[id]
		if !ok || n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		matched = append(matched, n)
	}
	if offset >= len(matched) {
		return []*models.Notification{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (f *fakeNotificationStore) Count(_ context.Context, userID int64, unreadOnly bool) (int64, error) {
	var count int64
	for _, n := range f.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeNotificationStore) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return f.Count(ctx, userID, true)
}

func (f *fakeNotificationStore) MarkRead(_ context.Context, userID, notificationID int64) error {
	n, ok := f.notifications[notificationID]
	if !ok || n.UserID != userID {
		return apperrors.ErrNotificationNotFound
	}
	n.Read = true
	return nil
}

func (f *fakeNotificationStore) MarkAllRead(_ context.Context, userID int64) (int64, error) {
	var count int64
	for _, n := range f.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationStore) Delete(_ context.Context, userID, notificationID int64) error {
	n, ok := f.notifications[notificationID]
	if !ok || n.UserID != userID {
		return apperrors.ErrNotificationNotFound
	}
	delete(f.notifications, notificationID)
	return nil
}

func (f *fakeNotificationStore) DeleteRead(_ context.Context, userID int64) (int64, error) {
	var count int64
	for id, n := range f.notifications {
		if n.UserID == userID && n.Read {
			delete(f.notifications, id)
			count++
		}
	}
	return count, nil
}
