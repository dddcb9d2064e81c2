package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
	"github.com/mentorhub/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to status codes and structured
// error responses. Unknown errors become a generic 500; their details
// go to the log, not the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, messageOf(err, "Validation failed"))
	case errors.Is(err, apperrors.ErrInvalidVerificationCode):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid or expired verification code")
	case errors.Is(err, apperrors.ErrEmailNotVerified):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Email has not been verified")
	case errors.Is(err, apperrors.ErrInvalidRequestStatus):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid request status")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Account is disabled")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, messageOf(err, "Permission denied"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrProfileNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Profile not found")
	case errors.Is(err, apperrors.ErrMentorNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Mentor not found")
	case errors.Is(err, apperrors.ErrRequestNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Request not found")
	case errors.Is(err, apperrors.ErrNotificationNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Notification not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already registered")
	case errors.Is(err, apperrors.ErrRegistrationNoExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Registration number already in use")
	case errors.Is(err, apperrors.ErrProfileAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Profile already exists")
	case errors.Is(err, apperrors.ErrPendingRequestExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "A pending request to this mentor already exists")
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleBindingError responds 400 with per-field issues from a failed
// request binding.
func HandleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// messageOf surfaces a wrapped CustomError message when present so
// validation failures keep their specific wording.
func messageOf(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
