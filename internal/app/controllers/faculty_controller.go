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

// FacultyController handles faculty profile operations and the mentor
// directory.
type FacultyController struct {
	facultyService services.FacultyService
	logger         zerolog.Logger
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService, logger zerolog.Logger) *FacultyController {
	return &FacultyController{facultyService: facultyService, logger: logger}
}

// CreateProfile creates the caller's faculty profile
// @Summary Create faculty profile
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyProfileRequest true "Profile details"
// @Success 201 {object} dto.APIResponse{data=models.FacultyProfile} "Profile created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Profile already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/profile [post]
func (c *FacultyController) CreateProfile(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CreateFacultyProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	profile, err := c.facultyService.CreateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(profile, "Profile created"))
}

// GetOwnProfile returns the caller's faculty profile
// @Summary Get own faculty profile
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.FacultyProfile} "Profile"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/profile [get]
func (c *FacultyController) GetOwnProfile(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	profile, err := c.facultyService.GetOwnProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile, "Profile retrieved"))
}

// GetProfileByID returns a faculty profile by its id
// @Summary Get faculty profile by id
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Success 200 {object} dto.APIResponse{data=models.FacultyProfile} "Profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid profile id"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/profile/{id} [get]
func (c *FacultyController) GetProfileByID(ctx *gin.Context) {
	profileID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile id").WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.facultyService.GetProfileByID(ctx.Request.Context(), profileID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile, "Profile retrieved"))
}

// UpdateProfile partially updates the caller's faculty profile
// @Summary Update faculty profile
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateFacultyProfileRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.FacultyProfile} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/profile [patch]
func (c *FacultyController) UpdateProfile(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateFacultyProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	profile, err := c.facultyService.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile, "Profile updated"))
}

// ListMentors returns the mentor directory
// @Summary List mentors
// @Description Lists faculty mentors, optionally filtered by capacity and skill.
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param capacity query string false "Capacity filter" Enums(available, limited, full)
// @Param skill query string false "Skill substring filter"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Mentors"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/mentors [get]
func (c *FacultyController) ListMentors(ctx *gin.Context) {
	var filter dto.MentorFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	page, size := parsePageParams(ctx)

	mentors, pagination, err := c.facultyService.ListMentors(ctx.Request.Context(), filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      mentors,
		Pagination: pagination,
	}, "Mentors retrieved"))
}
