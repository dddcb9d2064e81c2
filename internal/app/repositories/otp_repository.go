package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
)

// VerificationCode is a short-lived email ownership proof stored in
// the 'email_verification_codes' table. Keeping codes in the database
// rather than process memory keeps verification correct across
// multiple API instances.
type VerificationCode struct {
	Email     string
	Code      string
	Verified  bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

// OTPRepository handles database operations for email verification codes
type OTPRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOTPRepository creates a new OTPRepository
func NewOTPRepository(db *pgxpool.Pool) *OTPRepository {
	return &OTPRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert stores a fresh code for the email, replacing any previous one
func (r *OTPRepository) Upsert(ctx context.Context, email, code string, expiresAt time.Time) error {
	sql, args, err := r.sb.Insert("email_verification_codes").
		Columns("email", "code", "verified", "expires_at").
		Values(email, code, false, expiresAt).
		Suffix("ON CONFLICT (email) DO UPDATE SET code = EXCLUDED.code, verified = FALSE, expires_at = EXCLUDED.expires_at, created_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert verification code query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error storing verification code: %w", err)
	}
	return nil
}

// Get retrieves the stored code for an email
func (r *OTPRepository) Get(ctx context.Context, email string) (*VerificationCode, error) {
	sql, args, err := r.sb.Select("email", "code", "verified", "expires_at", "created_at").
		From("email_verification_codes").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get verification code query: %w", err)
	}

	vc := &VerificationCode{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&vc.Email, &vc.Code, &vc.Verified, &vc.ExpiresAt, &vc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidVerificationCode
		}
		return nil, fmt.Errorf("error getting verification code: %w", err)
	}
	return vc, nil
}

// MarkVerified flags the code as consumed and extends its lifetime so
// the signup call that follows has a window to complete.
func (r *OTPRepository) MarkVerified(ctx context.Context, email string, signupWindow time.Duration) error {
	sql, args, err := r.sb.Update("email_verification_codes").
		Set("verified", true).
		Set("expires_at", time.Now().Add(signupWindow)).
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark verified query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error marking code verified: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInvalidVerificationCode
	}
	return nil
}

// Delete removes the code for an email
func (r *OTPRepository) Delete(ctx context.Context, email string) error {
	sql, args, err := r.sb.Delete("email_verification_codes").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete verification code query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting verification code: %w", err)
	}
	return nil
}

// DeleteExpired clears out stale codes. Invoked opportunistically from
// the auth service; there is no background job.
func (r *OTPRepository) DeleteExpired(ctx context.Context) error {
	sql, args, err := r.sb.Delete("email_verification_codes").
		Where(squirrel.Lt{"expires_at": time.Now()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete expired codes query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting expired codes: %w", err)
	}
	return nil
}
