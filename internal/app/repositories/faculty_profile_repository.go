package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
)

const facultyProfileColumns = "id, user_id, designation, capacity, skills, interests, created_at, updated_at"

// FacultyProfileRepository handles database operations for faculty profiles
type FacultyProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyProfileRepository creates a new FacultyProfileRepository
func NewFacultyProfileRepository(db *pgxpool.Pool) *FacultyProfileRepository {
	return &FacultyProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanFacultyProfile(row pgx.Row) (*models.FacultyProfile, error) {
	p := &models.FacultyProfile{}
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Designation,
		&p.Capacity,
		&p.Skills,
		&p.Interests,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error scanning faculty profile: %w", err)
	}
	return p, nil
}

// Create inserts a new faculty profile
func (r *FacultyProfileRepository) Create(ctx context.Context, profile *models.FacultyProfile) error {
	sql, args, err := r.sb.Insert("faculty_profiles").
		Columns("user_id", "designation", "capacity", "skills", "interests").
		Values(
			profile.UserID,
			profile.Designation,
			profile.Capacity,
			profile.Skills,
			profile.Interests,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert faculty profile query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrProfileAlreadyExists
		}
		return fmt.Errorf("error creating faculty profile: %w", err)
	}
	return nil
}

// GetByUserID retrieves a faculty profile by the owning user's id
func (r *FacultyProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.FacultyProfile, error) {
	sql, args, err := r.sb.Select(facultyProfileColumns).
		From("faculty_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty profile query: %w", err)
	}

	return scanFacultyProfile(r.db.QueryRow(ctx, sql, args...))
}

// Update applies the non-nil fields of the update map to the profile
func (r *FacultyProfileRepository) Update(ctx context.Context, userID int64, fields map[string]interface{}) (*models.FacultyProfile, error) {
	if len(fields) == 0 {
		return r.GetByUserID(ctx, userID)
	}

	builder := r.sb.Update("faculty_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Suffix("RETURNING " + facultyProfileColumns)
	for column, value := range fields {
		builder = builder.Set(column, value)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update faculty profile query: %w", err)
	}

	return scanFacultyProfile(r.db.QueryRow(ctx, sql, args...))
}

// GetByID retrieves a faculty profile by its own id, including the
// owner's name and email.
func (r *FacultyProfileRepository) GetByID(ctx context.Context, profileID int64) (*models.FacultyProfile, error) {
	sql, args, err := r.sb.Select(
		"fp.id", "fp.user_id", "fp.designation", "fp.capacity", "fp.skills", "fp.interests",
		"fp.created_at", "fp.updated_at", "u.name", "u.email",
	).
		From("faculty_profiles fp").
		Join("users u ON u.id = fp.user_id").
		Where(squirrel.Eq{"fp.id": profileID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty profile by id query: %w", err)
	}

	p := &models.FacultyProfile{User: &models.User{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.ID, &p.UserID, &p.Designation, &p.Capacity, &p.Skills, &p.Interests,
		&p.CreatedAt, &p.UpdatedAt, &p.User.Name, &p.User.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error getting faculty profile by id: %w", err)
	}
	p.User.ID = p.UserID
	return p, nil
}

// ListMentors returns faculty profiles joined with their user rows,
// optionally filtered by capacity and skill. Skill matching is a
// case-insensitive containment check against the skills array.
func (r *FacultyProfileRepository) ListMentors(ctx context.Context, filter dto.MentorFilter, offset, limit int) ([]*models.FacultyProfile, error) {
	builder := r.sb.Select(
		"fp.id", "fp.user_id", "fp.designation", "fp.capacity", "fp.skills", "fp.interests", "fp.created_at", "fp.updated_at",
		"u.name", "u.email",
	).
		From("faculty_profiles fp").
		Join("users u ON u.id = fp.user_id").
		Where(squirrel.Eq{"u.is_active": true}).
		OrderBy("u.name ASC", "fp.id ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit))
	builder = applyMentorFilter(builder, filter)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list mentors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing mentors: %w", err)
	}
	defer rows.Close()

	mentors := []*models.FacultyProfile{}
	for rows.Next() {
		p := &models.FacultyProfile{User: &models.User{}}
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Designation,
			&p.Capacity,
			&p.Skills,
			&p.Interests,
			&p.CreatedAt,
			&p.UpdatedAt,
			&p.User.Name,
			&p.User.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentor: %w", err)
		}
		p.User.ID = p.UserID
		mentors = append(mentors, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentors: %w", err)
	}
	return mentors, nil
}

// CountMentors returns the total number of mentors matching the filter
func (r *FacultyProfileRepository) CountMentors(ctx context.Context, filter dto.MentorFilter) (int64, error) {
	builder := r.sb.Select("COUNT(*)").
		From("faculty_profiles fp").
		Join("users u ON u.id = fp.user_id").
		Where(squirrel.Eq{"u.is_active": true})
	builder = applyMentorFilter(builder, filter)

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count mentors query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting mentors: %w", err)
	}
	return count, nil
}

func applyMentorFilter(builder squirrel.SelectBuilder, filter dto.MentorFilter) squirrel.SelectBuilder {
	if filter.Capacity != "" {
		builder = builder.Where(squirrel.Eq{"fp.capacity": filter.Capacity})
	}
	if filter.Skill != "" {
		builder = builder.Where(
			"EXISTS (SELECT 1 FROM unnest(fp.skills) AS s WHERE s ILIKE '%' || ? || '%')",
			filter.Skill,
		)
	}
	return builder
}
