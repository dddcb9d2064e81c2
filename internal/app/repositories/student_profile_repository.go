package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
)

const studentProfileColumns = "id, user_id, registration_no, year, section, cgpa, skills, interests, github_url, linkedin_url, portfolio_url, created_at, updated_at"

// StudentProfileRepository handles database operations for student profiles
type StudentProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentProfileRepository creates a new StudentProfileRepository
func NewStudentProfileRepository(db *pgxpool.Pool) *StudentProfileRepository {
	return &StudentProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudentProfile(row pgx.Row) (*models.StudentProfile, error) {
	p := &models.StudentProfile{}
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.RegistrationNo,
		&p.Year,
		&p.Section,
		&p.CGPA,
		&p.Skills,
		&p.Interests,
		&p.GithubURL,
		&p.LinkedinURL,
		&p.PortfolioURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error scanning student profile: %w", err)
	}
	return p, nil
}

// Create inserts a new student profile
func (r *StudentProfileRepository) Create(ctx context.Context, profile *models.StudentProfile) error {
	regNoExists, err := r.RegistrationNoExists(ctx, profile.RegistrationNo)
	if err != nil {
		return err
	}
	if regNoExists {
		return apperrors.ErrRegistrationNoExists
	}

	sql, args, err := r.sb.Insert("student_profiles").
		Columns("user_id", "registration_no", "year", "section", "cgpa", "skills", "interests", "github_url", "linkedin_url", "portfolio_url").
		Values(
			profile.UserID,
			profile.RegistrationNo,
			profile.Year,
			profile.Section,
			profile.CGPA,
			profile.Skills,
			profile.Interests,
			profile.GithubURL,
			profile.LinkedinURL,
			profile.PortfolioURL,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert student profile query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrProfileAlreadyExists
		}
		return fmt.Errorf("error creating student profile: %w", err)
	}
	return nil
}

// GetByUserID retrieves a student profile by the owning user's id
func (r *StudentProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	sql, args, err := r.sb.Select(studentProfileColumns).
		From("student_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student profile query: %w", err)
	}

	return scanStudentProfile(r.db.QueryRow(ctx, sql, args...))
}

// Update applies the non-nil fields of the update map to the profile
func (r *StudentProfileRepository) Update(ctx context.Context, userID int64, fields map[string]interface{}) (*models.StudentProfile, error) {
	if len(fields) == 0 {
		return r.GetByUserID(ctx, userID)
	}

	builder := r.sb.Update("student_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Suffix("RETURNING " + studentProfileColumns)
	for column, value := range fields {
		builder = builder.Set(column, value)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update student profile query: %w", err)
	}

	profile, err := scanStudentProfile(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, apperrors.ErrRegistrationNoExists
		}
		return nil, err
	}
	return profile, nil
}

// GetByID retrieves a student profile by its own id, including the
// owner's name and email.
func (r *StudentProfileRepository) GetByID(ctx context.Context, profileID int64) (*models.StudentProfile, error) {
	sql, args, err := r.sb.Select(
		"sp.id", "sp.user_id", "sp.registration_no", "sp.year", "sp.section", "sp.cgpa",
		"sp.skills", "sp.interests", "sp.github_url", "sp.linkedin_url", "sp.portfolio_url",
		"sp.created_at", "sp.updated_at", "u.name", "u.email",
	).
		From("student_profiles sp").
		Join("users u ON u.id = sp.user_id").
		Where(squirrel.Eq{"sp.id": profileID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student profile by id query: %w", err)
	}

	p := &models.StudentProfile{User: &models.User{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.ID, &p.UserID, &p.RegistrationNo, &p.Year, &p.Section, &p.CGPA,
		&p.Skills, &p.Interests, &p.GithubURL, &p.LinkedinURL, &p.PortfolioURL,
		&p.CreatedAt, &p.UpdatedAt, &p.User.Name, &p.User.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error getting student profile by id: %w", err)
	}
	p.User.ID = p.UserID
	return p, nil
}

// Delete removes the caller's profile
func (r *StudentProfileRepository) Delete(ctx context.Context, userID int64) error {
	sql, args, err := r.sb.Delete("student_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting student profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}

// List returns a page of student profiles with owner names, ordered by
// registration number.
func (r *StudentProfileRepository) List(ctx context.Context, offset, limit int) ([]*models.StudentProfile, error) {
	sql, args, err := r.sb.Select(
		"sp.id", "sp.user_id", "sp.registration_no", "sp.year", "sp.section", "sp.cgpa",
		"sp.skills", "sp.interests", "sp.github_url", "sp.linkedin_url", "sp.portfolio_url",
		"sp.created_at", "sp.updated_at", "u.name", "u.email",
	).
		From("student_profiles sp").
		Join("users u ON u.id = sp.user_id").
		Where(squirrel.Eq{"u.is_active": true}).
		OrderBy("sp.registration_no ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	profiles := []*models.StudentProfile{}
	for rows.Next() {
		p := &models.StudentProfile{User: &models.User{}}
		err := rows.Scan(
			&p.ID, &p.UserID, &p.RegistrationNo, &p.Year, &p.Section, &p.CGPA,
			&p.Skills, &p.Interests, &p.GithubURL, &p.LinkedinURL, &p.PortfolioURL,
			&p.CreatedAt, &p.UpdatedAt, &p.User.Name, &p.User.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		p.User.ID = p.UserID
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}
	return profiles, nil
}

// Count returns the number of listable student profiles
func (r *StudentProfileRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("student_profiles sp").
		Join("users u ON u.id = sp.user_id").
		Where(squirrel.Eq{"u.is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// RegistrationNoExists checks whether a registration number is taken
func (r *StudentProfileRepository) RegistrationNoExists(ctx context.Context, registrationNo string) (bool, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("student_profiles").
		Where(squirrel.Eq{"registration_no": registrationNo}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build registration number check query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("error checking registration number: %w", err)
	}
	return count > 0, nil
}
