package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/db"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
)

const requestColumns = "id, student_id, mentor_id, project_title, description, team_size, methodology, tech_stack, objectives, expected_outcome, duration, additional_notes, status, mentor_feedback, responded_at, created_at, updated_at"

// RequestRepository handles database operations for project requests.
// It also owns the coupled notification writes so that a status change
// and its notification land in the same transaction.
type RequestRepository struct {
	db            *pgxpool.Pool
	sb            squirrel.StatementBuilderType
	notifications *NotificationRepository
}

// NewRequestRepository creates a new RequestRepository
func NewRequestRepository(db *pgxpool.Pool, notifications *NotificationRepository) *RequestRepository {
	return &RequestRepository{
		db:            db,
		sb:            squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		notifications: notifications,
	}
}

func scanRequest(row pgx.Row) (*models.ProjectRequest, error) {
	req := &models.ProjectRequest{}
	err := row.Scan(
		&req.ID,
		&req.StudentID,
		&req.MentorID,
		&req.ProjectTitle,
		&req.Description,
		&req.TeamSize,
		&req.Methodology,
		&req.TechStack,
		&req.Objectives,
		&req.ExpectedOutcome,
		&req.Duration,
		&req.AdditionalNotes,
		&req.Status,
		&req.MentorFeedback,
		&req.RespondedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("error scanning project request: %w", err)
	}
	return req, nil
}

// CreateWithNotification inserts a pending request and, in the same
// transaction, a notification for the addressed mentor. The partial
// unique index on (student_id, mentor_id) for pending rows rejects a
// second open request to the same mentor.
func (r *RequestRepository) CreateWithNotification(ctx context.Context, request *models.ProjectRequest, notification *models.Notification) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("project_requests").
			Columns("student_id", "mentor_id", "project_title", "description", "team_size", "methodology", "tech_stack", "objectives", "expected_outcome", "duration", "additional_notes", "status").
			Values(
				request.StudentID,
				request.MentorID,
				request.ProjectTitle,
				request.Description,
				request.TeamSize,
				request.Methodology,
				request.TechStack,
				request.Objectives,
				request.ExpectedOutcome,
				request.Duration,
				request.AdditionalNotes,
				models.StatusPending,
			).
			Suffix("RETURNING id, status, created_at, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert project request query: %w", err)
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&request.ID, &request.Status, &request.CreatedAt, &request.UpdatedAt)
		if err != nil {
			if isDuplicateKeyError(err) {
				return apperrors.ErrPendingRequestExists
			}
			return fmt.Errorf("error creating project request: %w", err)
		}

		notification.RequestID = &request.ID
		return r.notifications.CreateIn(ctx, tx, notification)
	})
	return err
}

// RespondWithNotification applies the mentor's decision and writes the
// student's notification in the same transaction. Repeated responses
// overwrite the previous decision.
func (r *RequestRepository) RespondWithNotification(ctx context.Context, requestID, mentorID int64, status models.RequestStatus, feedback string, notification *models.Notification) (*models.ProjectRequest, error) {
	var updated *models.ProjectRequest
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Update("project_requests").
			Set("status", status).
			Set("mentor_feedback", feedback).
			Set("responded_at", time.Now()).
			Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
			Where(squirrel.Eq{
				"id":        requestID,
				"mentor_id": mentorID,
			}).
			Suffix("RETURNING " + requestColumns).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build respond query: %w", err)
		}

		updated, err = scanRequest(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}

		notification.UserID = updated.StudentID
		notification.RequestID = &updated.ID
		return r.notifications.CreateIn(ctx, tx, notification)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetByID retrieves a single request
func (r *RequestRepository) GetByID(ctx context.Context, requestID int64) (*models.ProjectRequest, error) {
	sql, args, err := r.sb.Select(requestColumns).
		From("project_requests").
		Where(squirrel.Eq{"id": requestID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get request query: %w", err)
	}

	return scanRequest(r.db.QueryRow(ctx, sql, args...))
}

// HasPendingRequest reports whether the student already has an open
// request addressed to the mentor.
func (r *RequestRepository) HasPendingRequest(ctx context.Context, studentID, mentorID int64) (bool, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("project_requests").
		Where(squirrel.Eq{
			"student_id": studentID,
			"mentor_id":  mentorID,
			"status":     models.StatusPending,
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build pending request check query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("error checking pending request: %w", err)
	}
	return count > 0, nil
}

// ListByStudent returns the student's requests joined with the
// mentor's name, newest first.
func (r *RequestRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.StudentRequest, error) {
	sql, args, err := r.sb.Select(
		"pr.id", "pr.student_id", "pr.mentor_id", "pr.project_title", "pr.description", "pr.team_size",
		"pr.methodology", "pr.tech_stack", "pr.objectives", "pr.expected_outcome", "pr.duration",
		"pr.additional_notes", "pr.status", "pr.mentor_feedback", "pr.responded_at", "pr.created_at", "pr.updated_at",
		"u.name", "fp.designation",
	).
		From("project_requests pr").
		Join("users u ON u.id = pr.mentor_id").
		LeftJoin("faculty_profiles fp ON fp.user_id = pr.mentor_id").
		Where(squirrel.Eq{"pr.student_id": studentID}).
		OrderBy("pr.created_at DESC", "pr.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list student requests query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing student requests: %w", err)
	}
	defer rows.Close()

	requests := []*models.StudentRequest{}
	for rows.Next() {
		req := &models.StudentRequest{}
		err := rows.Scan(
			&req.ID, &req.StudentID, &req.MentorID, &req.ProjectTitle, &req.Description, &req.TeamSize,
			&req.Methodology, &req.TechStack, &req.Objectives, &req.ExpectedOutcome, &req.Duration,
			&req.AdditionalNotes, &req.Status, &req.MentorFeedback, &req.RespondedAt, &req.CreatedAt, &req.UpdatedAt,
			&req.MentorName, &req.MentorDesignation,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning student request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student requests: %w", err)
	}
	return requests, nil
}

// listByMentorQuery joins the student's profile with a left join and
// coalesced columns: a request from a student who has not created a
// profile yet must still reach the mentor's list.
func (r *RequestRepository) listByMentorQuery(mentorID int64, status models.RequestStatus) (string, []interface{}, error) {
	builder := r.sb.Select(
		"pr.id", "pr.student_id", "pr.mentor_id", "pr.project_title", "pr.description", "pr.team_size",
		"pr.methodology", "pr.tech_stack", "pr.objectives", "pr.expected_outcome", "pr.duration",
		"pr.additional_notes", "pr.status", "pr.mentor_feedback", "pr.responded_at", "pr.created_at", "pr.updated_at",
		"u.name",
		"COALESCE(sp.registration_no, '')",
		"COALESCE(sp.year, 0)",
		"COALESCE(sp.section, '')",
		"COALESCE(sp.cgpa, 0)",
		"COALESCE(sp.skills, '{}'::text[])",
		"COALESCE(sp.interests, '{}'::text[])",
		"sp.github_url",
	).
		From("project_requests pr").
		Join("users u ON u.id = pr.student_id").
		LeftJoin("student_profiles sp ON sp.user_id = pr.student_id").
		Where(squirrel.Eq{"pr.mentor_id": mentorID}).
		OrderBy("pr.created_at DESC", "pr.id DESC")
	if status != "" {
		builder = builder.Where(squirrel.Eq{"pr.status": status})
	}
	return builder.ToSql()
}

// ListByMentor returns requests addressed to the mentor joined with
// the submitting student's profile, optionally filtered by status.
func (r *RequestRepository) ListByMentor(ctx context.Context, mentorID int64, status models.RequestStatus) ([]*models.MentorRequest, error) {
	sql, args, err := r.listByMentorQuery(mentorID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to build list mentor requests query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing mentor requests: %w", err)
	}
	defer rows.Close()

	requests := []*models.MentorRequest{}
	for rows.Next() {
		req := &models.MentorRequest{}
		err := rows.Scan(
			&req.ID, &req.StudentID, &req.MentorID, &req.ProjectTitle, &req.Description, &req.TeamSize,
			&req.Methodology, &req.TechStack, &req.Objectives, &req.ExpectedOutcome, &req.Duration,
			&req.AdditionalNotes, &req.Status, &req.MentorFeedback, &req.RespondedAt, &req.CreatedAt, &req.UpdatedAt,
			&req.StudentName, &req.RegistrationNo, &req.Year, &req.Section, &req.CGPA, &req.StudentSkills, &req.Interests, &req.GithubURL,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentor request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentor requests: %w", err)
	}
	return requests, nil
}
