package services

import (
	"context"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// StudentService handles student profile operations
type StudentService interface {
	CreateProfile(ctx context.Context, userID int64, req *dto.CreateStudentProfileRequest) (*models.StudentProfile, error)
	GetOwnProfile(ctx context.Context, userID int64) (*models.StudentProfile, error)
	GetProfileByID(ctx context.Context, profileID int64) (*models.StudentProfile, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error)
	DeleteProfile(ctx context.Context, userID int64) error
	ListStudents(ctx context.Context, page, size int) ([]*models.StudentProfile, dto.PaginationInfo, error)
}

// StudentProfileStore is the persistence surface the student service needs
type StudentProfileStore interface {
	Create(ctx context.Context, profile *models.StudentProfile) error
	GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
	GetByID(ctx context.Context, profileID int64) (*models.StudentProfile, error)
	Update(ctx context.Context, userID int64, fields map[string]interface{}) (*models.StudentProfile, error)
	Delete(ctx context.Context, userID int64) error
	List(ctx context.Context, offset, limit int) ([]*models.StudentProfile, error)
	Count(ctx context.Context) (int64, error)
}

type studentService struct {
	profiles StudentProfileStore
	logger   zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(profiles StudentProfileStore, logger zerolog.Logger) StudentService {
	return &studentService{profiles: profiles, logger: logger}
}

func (s *studentService) CreateProfile(ctx context.Context, userID int64, req *dto.CreateStudentProfileRequest) (*models.StudentProfile, error) {
	profile := &models.StudentProfile{
		UserID:         userID,
		RegistrationNo: req.RegistrationNo,
		Year:           req.Year,
		Section:        req.Section,
		CGPA:           req.CGPA,
		Skills:         emptyIfNil(req.Skills),
		Interests:      emptyIfNil(req.Interests),
		GithubURL:      req.GithubURL,
		LinkedinURL:    req.LinkedinURL,
		PortfolioURL:   req.PortfolioURL,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("userId", userID).Str("registrationNo", profile.RegistrationNo).Msg("Student profile created")
	return profile, nil
}

func (s *studentService) GetOwnProfile(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

func (s *studentService) GetProfileByID(ctx context.Context, profileID int64) (*models.StudentProfile, error) {
	return s.profiles.GetByID(ctx, profileID)
}

func (s *studentService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error) {
	fields := map[string]interface{}{}
	if req.Year != nil {
		fields["year"] = *req.Year
	}
	if req.Section != nil {
		fields["section"] = *req.Section
	}
	if req.CGPA != nil {
		fields["cgpa"] = *req.CGPA
	}
	if req.Skills != nil {
		fields["skills"] = *req.Skills
	}
	if req.Interests != nil {
		fields["interests"] = *req.Interests
	}
	if req.GithubURL != nil {
		fields["github_url"] = *req.GithubURL
	}
	if req.LinkedinURL != nil {
		fields["linkedin_url"] = *req.LinkedinURL
	}
	if req.PortfolioURL != nil {
		fields["portfolio_url"] = *req.PortfolioURL
	}
	return s.profiles.Update(ctx, userID, fields)
}

func (s *studentService) DeleteProfile(ctx context.Context, userID int64) error {
	if err := s.profiles.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("userId", userID).Msg("Student profile deleted")
	return nil
}

func (s *studentService) ListStudents(ctx context.Context, page, size int) ([]*models.StudentProfile, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	total, err := s.profiles.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	profiles, err := s.profiles.List(ctx, int(offset), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return profiles, helpers.NewPaginationInfo(total, page, limit), nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
