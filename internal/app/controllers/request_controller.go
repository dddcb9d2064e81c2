package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/app/services"
	"github.com/mentorhub/backend/internal/middleware"
	"github.com/rs/zerolog"
)

// RequestController handles the project request lifecycle
type RequestController struct {
	requestService services.RequestService
	logger         zerolog.Logger
}

// NewRequestController creates a new RequestController
func NewRequestController(requestService services.RequestService, logger zerolog.Logger) *RequestController {
	return &RequestController{requestService: requestService, logger: logger}
}

// Submit creates a project request addressed to a mentor
// @Summary Submit a project request
// @Description Submits a structured project proposal to a mentor. Only one pending request per student and mentor is allowed.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitRequestRequest true "Proposal"
// @Success 201 {object} dto.APIResponse{data=models.ProjectRequest} "Request submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 409 {object} dto.ErrorResponse "Pending request to this mentor already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests [post]
func (c *RequestController) Submit(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.SubmitRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid project request payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	request, err := c.requestService.Submit(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(request, "Request submitted"))
}

// ListForStudent returns the caller's submitted requests
// @Summary List own requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.StudentRequest} "Requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests/student [get]
func (c *RequestController) ListForStudent(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	requests, err := c.requestService.ListForStudent(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(requests, "Requests retrieved"))
}

// ListForMentor returns requests addressed to the caller
// @Summary List received requests
// @Description Lists requests addressed to the authenticated mentor, each joined with the student's profile. Optionally filtered by status.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(pending, approved, rejected, changes_requested)
// @Success 200 {object} dto.APIResponse{data=[]models.MentorRequest} "Requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests/mentor [get]
func (c *RequestController) ListForMentor(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	requests, err := c.requestService.ListForMentor(ctx.Request.Context(), userID, ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(requests, "Requests retrieved"))
}

// Respond applies the mentor's decision to a request
// @Summary Respond to a request
// @Description Approves, rejects or requests changes to a project request. Only the addressed mentor may respond. A notification for the student is created atomically with the status change.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.RespondRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=models.ProjectRequest} "Updated request"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the addressed mentor"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests/{id} [patch]
func (c *RequestController) Respond(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	requestID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request id").WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.RespondRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	request, err := c.requestService.Respond(ctx.Request.Context(), userID, requestID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(request, "Request updated"))
}

// GetByID returns a single request to its student or mentor
// @Summary Get a request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=models.ProjectRequest} "Request"
// @Failure 400 {object} dto.ErrorResponse "Invalid request id"
// @Failure 403 {object} dto.ErrorResponse "Caller is neither the student nor the mentor"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests/{id} [get]
func (c *RequestController) GetByID(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	requestID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request id").WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	request, err := c.requestService.GetByID(ctx.Request.Context(), userID, requestID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(request, "Request retrieved"))
}
