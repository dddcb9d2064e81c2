package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/middleware"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
	"github.com/mentorhub/backend/internal/pkg/validation"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registerRulesOnce sync.Once

func setupTestMode(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	registerRulesOnce.Do(func() {
		if err := validation.RegisterRules(); err != nil {
			t.Fatalf("register validation rules: %v", err)
		}
	})
}

// fakeRequestService stubs the request service with per-test hooks
type fakeRequestService struct {
	submitFn  func(ctx context.Context, studentID int64, req *dto.SubmitRequestRequest) (*models.ProjectRequest, error)
	respondFn func(ctx context.Context, mentorID, requestID int64, req *dto.RespondRequest) (*models.ProjectRequest, error)
	getFn     func(ctx context.Context, requesterID, requestID int64) (*models.ProjectRequest, error)
}

func (f *fakeRequestService) Submit(ctx context.Context, studentID int64, req *dto.SubmitRequestRequest) (*models.ProjectRequest, error) {
	return f.submitFn(ctx, studentID, req)
}

func (f *fakeRequestService) ListForStudent(context.Context, int64) ([]*models.StudentRequest, error) {
	return []*models.StudentRequest{}, nil
}

func (f *fakeRequestService) ListForMentor(context.Context, int64, string) ([]*models.MentorRequest, error) {
	return []*models.MentorRequest{}, nil
}

func (f *fakeRequestService) Respond(ctx context.Context, mentorID, requestID int64, req *dto.RespondRequest) (*models.ProjectRequest, error) {
	return f.respondFn(ctx, mentorID, requestID, req)
}

func (f *fakeRequestService) GetByID(ctx context.Context, requesterID, requestID int64) (*models.ProjectRequest, error) {
	return f.getFn(ctx, requesterID, requestID)
}

func requestTestRouter(t *testing.T, svc *fakeRequestService, userID int64) *gin.Engine {
	setupTestMode(t)

	controller := NewRequestController(svc, zerolog.Nop())
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	})

	requests := router.Group("/api/v1/requests")
	requests.POST("", controller.Submit)
	requests.GET("/:id", controller.GetByID)
	requests.PATCH("/:id", controller.Respond)
	return router
}

func repeatWords(word string, n int) string {
	return strings.TrimSpace(strings.Repeat(word+" ", n))
}

func validSubmitPayload() map[string]interface{} {
	return map[string]interface{}{
		"mentorId":        9,
		"projectTitle":    "Campus Energy Dashboard",
		"description":     repeatWords("detail", 50),
		"teamSize":        3,
		"methodology":     repeatWords("step", 30),
		"techStack":       []string{"Go", "PostgreSQL"},
		"objectives":      repeatWords("goal", 20),
		"expectedOutcome": repeatWords("result", 20),
		"duration":        models.DurationMedium,
	}
}

func TestSubmitEndpoint(t *testing.T) {
	svc := &fakeRequestService{
		submitFn: func(_ context.Context, studentID int64, req *dto.SubmitRequestRequest) (*models.ProjectRequest, error) {
			return &models.ProjectRequest{
				ID:           42,
				StudentID:    studentID,
				MentorID:     req.MentorID,
				ProjectTitle: req.ProjectTitle,
				Status:       models.StatusPending,
			}, nil
		},
	}
	router := requestTestRouter(t, svc, 1)

	body, _ := json.Marshal(validSubmitPayload())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Success bool                  `json:"success"`
		Data    models.ProjectRequest `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Equal(t, int64(42), response.Data.ID)
	assert.Equal(t, models.StatusPending, response.Data.Status)
}

func TestSubmitEndpoint_ShortDescriptionRejected(t *testing.T) {
	svc := &fakeRequestService{
		submitFn: func(context.Context, int64, *dto.SubmitRequestRequest) (*models.ProjectRequest, error) {
			t.Fatal("service must not be called for an invalid payload")
			return nil, nil
		},
	}
	router := requestTestRouter(t, svc, 1)

	payload := validSubmitPayload()
	payload["description"] = repeatWords("short", 10)
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.False(t, response.Success)
	require.NotNil(t, response.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, response.Error.Code)
}

func TestSubmitEndpoint_DuplicatePendingConflict(t *testing.T) {
	svc := &fakeRequestService{
		submitFn: func(context.Context, int64, *dto.SubmitRequestRequest) (*models.ProjectRequest, error) {
			return nil, apperrors.ErrPendingRequestExists
		},
	}
	router := requestTestRouter(t, svc, 1)

	body, _ := json.Marshal(validSubmitPayload())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRespondEndpoint(t *testing.T) {
	svc := &fakeRequestService{
		respondFn: func(_ context.Context, mentorID, requestID int64, req *dto.RespondRequest) (*models.ProjectRequest, error) {
			assert.Equal(t, int64(2), mentorID)
			assert.Equal(t, int64(42), requestID)
			return &models.ProjectRequest{
				ID:             requestID,
				MentorID:       mentorID,
				Status:         models.RequestStatus(req.Status),
				MentorFeedback: req.Feedback,
			}, nil
		},
	}
	router := requestTestRouter(t, svc, 2)

	body, _ := json.Marshal(map[string]string{"status": "approved", "feedback": "Looks solid"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/42", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data models.ProjectRequest `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, models.StatusApproved, response.Data.Status)
	assert.Equal(t, "Looks solid", response.Data.MentorFeedback)
}

func TestRespondEndpoint_InvalidStatusRejected(t *testing.T) {
	svc := &fakeRequestService{
		respondFn: func(context.Context, int64, int64, *dto.RespondRequest) (*models.ProjectRequest, error) {
			t.Fatal("service must not be called for an invalid payload")
			return nil, nil
		},
	}
	router := requestTestRouter(t, svc, 2)

	body, _ := json.Marshal(map[string]string{"status": "maybe"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/42", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondEndpoint_NotAddressedMentor(t *testing.T) {
	svc := &fakeRequestService{
		respondFn: func(context.Context, int64, int64, *dto.RespondRequest) (*models.ProjectRequest, error) {
			return nil, apperrors.ErrPermissionDenied
		},
	}
	router := requestTestRouter(t, svc, 3)

	body, _ := json.Marshal(map[string]string{"status": "approved"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/42", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetRequestEndpoint_InvalidID(t *testing.T) {
	svc := &fakeRequestService{
		getFn: func(context.Context, int64, int64) (*models.ProjectRequest, error) {
			t.Fatal("service must not be called for a malformed id")
			return nil, nil
		},
	}
	router := requestTestRouter(t, svc, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests/not-a-number", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRequestEndpoint_NotFound(t *testing.T) {
	svc := &fakeRequestService{
		getFn: func(context.Context, int64, int64) (*models.ProjectRequest, error) {
			return nil, apperrors.ErrRequestNotFound
		},
	}
	router := requestTestRouter(t, svc, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests/404", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
