package services

import (
	"context"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// FacultyService handles faculty profile operations and the mentor
// directory.
type FacultyService interface {
	CreateProfile(ctx context.Context, userID int64, req *dto.CreateFacultyProfileRequest) (*models.FacultyProfile, error)
	GetOwnProfile(ctx context.Context, userID int64) (*models.FacultyProfile, error)
	GetProfileByID(ctx context.Context, profileID int64) (*models.FacultyProfile, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateFacultyProfileRequest) (*models.FacultyProfile, error)
	ListMentors(ctx context.Context, filter dto.MentorFilter, page, size int) ([]*models.FacultyProfile, dto.PaginationInfo, error)
}

// FacultyProfileStore is the persistence surface the faculty service needs
type FacultyProfileStore interface {
	Create(ctx context.Context, profile *models.FacultyProfile) error
	GetByUserID(ctx context.Context, userID int64) (*models.FacultyProfile, error)
	GetByID(ctx context.Context, profileID int64) (*models.FacultyProfile, error)
	Update(ctx context.Context, userID int64, fields map[string]interface{}) (*models.FacultyProfile, error)
	ListMentors(ctx context.Context, filter dto.MentorFilter, offset, limit int) ([]*models.FacultyProfile, error)
	CountMentors(ctx context.Context, filter dto.MentorFilter) (int64, error)
}

type facultyService struct {
	profiles FacultyProfileStore
	logger   zerolog.Logger
}

// NewFacultyService creates a new FacultyService
func NewFacultyService(profiles FacultyProfileStore, logger zerolog.Logger) FacultyService {
	return &facultyService{profiles: profiles, logger: logger}
}

func (s *facultyService) CreateProfile(ctx context.Context, userID int64, req *dto.CreateFacultyProfileRequest) (*models.FacultyProfile, error) {
	profile := &models.FacultyProfile{
		UserID:      userID,
		Designation: req.Designation,
		Capacity:    models.Capacity(req.Capacity),
		Skills:      emptyIfNil(req.Skills),
		Interests:   emptyIfNil(req.Interests),
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("userId", userID).Str("designation", profile.Designation).Msg("Faculty profile created")
	return profile, nil
}

func (s *facultyService) GetOwnProfile(ctx context.Context, userID int64) (*models.FacultyProfile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

func (s *facultyService) GetProfileByID(ctx context.Context, profileID int64) (*models.FacultyProfile, error) {
	return s.profiles.GetByID(ctx, profileID)
}

func (s *facultyService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateFacultyProfileRequest) (*models.FacultyProfile, error) {
	fields := map[string]interface{}{}
	if req.Designation != nil {
		fields["designation"] = *req.Designation
	}
	if req.Capacity != nil {
		fields["capacity"] = *req.Capacity
	}
	if req.Skills != nil {
		fields["skills"] = *req.Skills
	}
	if req.Interests != nil {
		fields["interests"] = *req.Interests
	}
	return s.profiles.Update(ctx, userID, fields)
}

func (s *facultyService) ListMentors(ctx context.Context, filter dto.MentorFilter, page, size int) ([]*models.FacultyProfile, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	total, err := s.profiles.CountMentors(ctx, filter)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	mentors, err := s.profiles.ListMentors(ctx, filter, int(offset), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return mentors, helpers.NewPaginationInfo(total, page, limit), nil
}
