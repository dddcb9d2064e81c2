package services

import (
	"context"
	"testing"
	"time"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
	"github.com/mentorhub/backend/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDomains = []string{"students.university.edu", "faculty.university.edu"}

func newTestAuthService(users *fakeUserStore, codes *fakeOTPStore, emails *fakeEmailService) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "mentorhub.test",
	})
	return NewAuthService(users, codes, emails, jwtService, testDomains, 5*time.Minute, zerolog.Nop())
}

func TestSendOTP(t *testing.T) {
	users := newFakeUserStore()
	codes := newFakeOTPStore()
	emails := &fakeEmailService{}
	svc := newTestAuthService(users, codes, emails)

	err := svc.SendOTP(context.Background(), "jane@students.university.edu")
	require.NoError(t, err)

	assert.Equal(t, []string{"jane@students.university.edu"}, emails.otpEmails)
	stored, err := codes.Get(context.Background(), "jane@students.university.edu")
	require.NoError(t, err)
	assert.Len(t, stored.Code, 6)
	assert.Equal(t, emails.lastCode, stored.Code)
	assert.False(t, stored.Verified)
}

func TestSendOTP_RejectsNonUniversityEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore(), newFakeOTPStore(), &fakeEmailService{})

	err := svc.SendOTP(context.Background(), "jane@gmail.com")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSendOTP_RejectsRegisteredEmail(t *testing.T) {
	users := newFakeUserStore()
	users.add(&models.User{Email: "jane@students.university.edu"})
	svc := newTestAuthService(users, newFakeOTPStore(), &fakeEmailService{})

	err := svc.SendOTP(context.Background(), "jane@students.university.edu")
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestVerifyOTP(t *testing.T) {
	codes := newFakeOTPStore()
	svc := newTestAuthService(newFakeUserStore(), codes, &fakeEmailService{})

	require.NoError(t, codes.Upsert(context.Background(), "jane@students.university.edu", "482913", time.Now().Add(5*time.Minute)))

	err := svc.VerifyOTP(context.Background(), "jane@students.university.edu", "482913")
	require.NoError(t, err)

	stored, err := codes.Get(context.Background(), "jane@students.university.edu")
	require.NoError(t, err)
	assert.True(t, stored.Verified)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	codes := newFakeOTPStore()
	svc := newTestAuthService(newFakeUserStore(), codes, &fakeEmailService{})

	require.NoError(t, codes.Upsert(context.Background(), "jane@students.university.edu", "482913", time.Now().Add(5*time.Minute)))

	err := svc.VerifyOTP(context.Background(), "jane@students.university.edu", "000000")
	assert.ErrorIs(t, err, apperrors.ErrInvalidVerificationCode)
}

func TestVerifyOTP_Expired(t *testing.T) {
	codes := newFakeOTPStore()
	svc := newTestAuthService(newFakeUserStore(), codes, &fakeEmailService{})

	require.NoError(t, codes.Upsert(context.Background(), "jane@students.university.edu", "482913", time.Now().Add(-time.Second)))

	err := svc.VerifyOTP(context.Background(), "jane@students.university.edu", "482913")
	assert.ErrorIs(t, err, apperrors.ErrInvalidVerificationCode)
}

func TestVerifyOTP_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore(), newFakeOTPStore(), &fakeEmailService{})

	err := svc.VerifyOTP(context.Background(), "ghost@students.university.edu", "482913")
	assert.ErrorIs(t, err, apperrors.ErrInvalidVerificationCode)
}

func verifiedSignupRequest(t *testing.T, codes *fakeOTPStore, email string) *dto.SignupRequest {
	t.Helper()
	require.NoError(t, codes.Upsert(context.Background(), email, "482913", time.Now().Add(5*time.Minute)))
	require.NoError(t, codes.MarkVerified(context.Background(), email, 15*time.Minute))
	return &dto.SignupRequest{
		Name:     "Jane Doe",
		Email:    email,
		Password: "s3cretPass",
		RoleType: "STUDENT",
	}
}

func TestSignup(t *testing.T) {
	users := newFakeUserStore()
	codes := newFakeOTPStore()
	svc := newTestAuthService(users, codes, &fakeEmailService{})

	req := verifiedSignupRequest(t, codes, "jane@students.university.edu")
	tokens, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, tokens.AccessToken)
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.Equal(t, "STUDENT", tokens.User.RoleType)

	user, err := users.GetByEmail(context.Background(), "jane@students.university.edu")
	require.NoError(t, err)
	assert.True(t, user.EmailVerified)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "s3cretPass", user.Password)

	// Code is consumed; a second signup needs a fresh verification.
	_, err = codes.Get(context.Background(), "jane@students.university.edu")
	assert.Error(t, err)
}

func TestSignup_RequiresVerifiedEmail(t *testing.T) {
	codes := newFakeOTPStore()
	svc := newTestAuthService(newFakeUserStore(), codes, &fakeEmailService{})

	// Code stored but never verified.
	require.NoError(t, codes.Upsert(context.Background(), "jane@students.university.edu", "482913", time.Now().Add(5*time.Minute)))

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Jane Doe",
		Email:    "jane@students.university.edu",
		Password: "s3cretPass",
		RoleType: "STUDENT",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailNotVerified)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	users := newFakeUserStore()
	users.add(&models.User{Email: "jane@students.university.edu"})
	codes := newFakeOTPStore()
	svc := newTestAuthService(users, codes, &fakeEmailService{})

	req := verifiedSignupRequest(t, codes, "jane@students.university.edu")
	_, err := svc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestSignin(t *testing.T) {
	users := newFakeUserStore()
	codes := newFakeOTPStore()
	svc := newTestAuthService(users, codes, &fakeEmailService{})

	req := verifiedSignupRequest(t, codes, "jane@students.university.edu")
	_, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	tokens, err := svc.Signin(context.Background(), &dto.SigninRequest{
		Email:    "jane@students.university.edu",
		Password: "s3cretPass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	user, err := users.GetByEmail(context.Background(), "jane@students.university.edu")
	require.NoError(t, err)
	assert.NotNil(t, user.LastLoginAt)
}

func TestSignin_InvalidPassword(t *testing.T) {
	users := newFakeUserStore()
	codes := newFakeOTPStore()
	svc := newTestAuthService(users, codes, &fakeEmailService{})

	req := verifiedSignupRequest(t, codes, "jane@students.university.edu")
	_, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Signin(context.Background(), &dto.SigninRequest{
		Email:    "jane@students.university.edu",
		Password: "wrongPass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestSignin_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore(), newFakeOTPStore(), &fakeEmailService{})

	_, err := svc.Signin(context.Background(), &dto.SigninRequest{
		Email:    "ghost@students.university.edu",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestSignin_DisabledAccount(t *testing.T) {
	users := newFakeUserStore()
	hash, err := auth.HashPassword("s3cretPass")
	require.NoError(t, err)
	users.add(&models.User{
		Email:    "jane@students.university.edu",
		Password: hash,
		IsActive: false,
	})
	svc := newTestAuthService(users, newFakeOTPStore(), &fakeEmailService{})

	_, err = svc.Signin(context.Background(), &dto.SigninRequest{
		Email:    "jane@students.university.edu",
		Password: "s3cretPass",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}
