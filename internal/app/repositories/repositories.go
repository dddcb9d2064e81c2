package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx so repository
// writes can participate in a caller-managed transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories bundles all repositories for dependency injection
type Repositories struct {
	UserRepository           *UserRepository
	StudentProfileRepository *StudentProfileRepository
	FacultyProfileRepository *FacultyProfileRepository
	RequestRepository        *RequestRepository
	NotificationRepository   *NotificationRepository
	OTPRepository            *OTPRepository
}

// NewRepositories creates all repositories sharing one pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	notificationRepo := NewNotificationRepository(db)
	return &Repositories{
		UserRepository:           NewUserRepository(db),
		StudentProfileRepository: NewStudentProfileRepository(db),
		FacultyProfileRepository: NewFacultyProfileRepository(db),
		RequestRepository:        NewRequestRepository(db, notificationRepo),
		NotificationRepository:   notificationRepo,
		OTPRepository:            NewOTPRepository(db),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}
