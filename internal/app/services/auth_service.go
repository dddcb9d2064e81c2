package services

import (
	"context"
	"time"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/app/repositories"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
	"github.com/mentorhub/backend/internal/pkg/auth"
	"github.com/mentorhub/backend/internal/pkg/email"
	"github.com/mentorhub/backend/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// signupWindow is how long a verified code stays valid for completing
// signup after OTP verification.
const signupWindow = 15 * time.Minute

// AuthService handles account signup, signin and email verification
type AuthService interface {
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.TokenResponse, error)
	Signin(ctx context.Context, req *dto.SigninRequest) (*dto.TokenResponse, error)
}

// UserStore is the user persistence surface the auth service needs
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
}

// OTPStore is the verification code persistence surface
type OTPStore interface {
	Upsert(ctx context.Context, email, code string, expiresAt time.Time) error
	Get(ctx context.Context, email string) (*repositories.VerificationCode, error)
	MarkVerified(ctx context.Context, email string, signupWindow time.Duration) error
	Delete(ctx context.Context, email string) error
	DeleteExpired(ctx context.Context) error
}

type authService struct {
	users          UserStore
	codes          OTPStore
	emailService   email.EmailService
	jwtService     *auth.JWTService
	allowedDomains []string
	otpExpiry      time.Duration
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users UserStore,
	codes OTPStore,
	emailService email.EmailService,
	jwtService *auth.JWTService,
	allowedDomains []string,
	otpExpiry time.Duration,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		users:          users,
		codes:          codes,
		emailService:   emailService,
		jwtService:     jwtService,
		allowedDomains: allowedDomains,
		otpExpiry:      otpExpiry,
		logger:         logger,
	}
}

// SendOTP generates and emails a verification code for an
// unregistered university address.
func (s *authService) SendOTP(ctx context.Context, toEmail string) error {
	if !validation.IsUniversityEmail(toEmail, s.allowedDomains) {
		return apperrors.NewValidationError("email must belong to a university domain")
	}

	exists, err := s.users.EmailExists(ctx, toEmail)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}

	// Opportunistic cleanup; failure here is not fatal.
	if err := s.codes.DeleteExpired(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to clear expired verification codes")
	}

	code, err := email.GenerateOTPCode()
	if err != nil {
		return err
	}

	if err := s.codes.Upsert(ctx, toEmail, code, time.Now().Add(s.otpExpiry)); err != nil {
		return err
	}

	if err := s.emailService.SendOTPEmail(toEmail, code); err != nil {
		s.logger.Error().Err(err).Str("email", toEmail).Msg("Failed to send OTP email")
		return err
	}

	s.logger.Info().Str("email", toEmail).Msg("Verification code sent")
	return nil
}

// VerifyOTP checks the submitted code and marks the email as verified
// for a follow-up signup.
func (s *authService) VerifyOTP(ctx context.Context, toEmail, code string) error {
	stored, err := s.codes.Get(ctx, toEmail)
	if err != nil {
		return err
	}
	if time.Now().After(stored.ExpiresAt) {
		return apperrors.ErrInvalidVerificationCode
	}
	if stored.Code != code {
		return apperrors.ErrInvalidVerificationCode
	}

	if err := s.codes.MarkVerified(ctx, toEmail, signupWindow); err != nil {
		return err
	}

	s.logger.Info().Str("email", toEmail).Msg("Email verified")
	return nil
}

// Signup creates an account for an email that passed OTP verification
func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.TokenResponse, error) {
	if !validation.IsUniversityEmail(req.Email, s.allowedDomains) {
		return nil, apperrors.NewValidationError("email must belong to a university domain")
	}

	stored, err := s.codes.Get(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrEmailNotVerified
	}
	if !stored.Verified || time.Now().After(stored.ExpiresAt) {
		return nil, apperrors.ErrEmailNotVerified
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:         req.Email,
		Password:      hashed,
		Name:          req.Name,
		RoleType:      models.RoleType(req.RoleType),
		EmailVerified: true,
		IsActive:      true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.codes.Delete(ctx, req.Email); err != nil {
		s.logger.Warn().Err(err).Str("email", req.Email).Msg("Failed to delete consumed verification code")
	}

	go func() {
		if err := s.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
			s.logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send welcome email")
		}
	}()

	s.logger.Info().Int64("userId", user.ID).Str("roleType", string(user.RoleType)).Msg("User registered")
	return s.tokenResponse(user)
}

// Signin authenticates by email and password
func (s *authService) Signin(ctx context.Context, req *dto.SigninRequest) (*dto.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		// Do not reveal whether the account exists.
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login")
	}

	return s.tokenResponse(user)
}

func (s *authService) tokenResponse(user *models.User) (*dto.TokenResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User: dto.UserData{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			RoleType: string(user.RoleType),
		},
	}, nil
}
