package repositories

import (
	"strings"
	"testing"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListByMentorQuery_IncludesProfilelessStudents(t *testing.T) {
	repo := NewRequestRepository(nil, nil)

	sql, args, err := repo.listByMentorQuery(9, "")
	require.NoError(t, err)

	// Requests must not disappear from the mentor's list just because
	// the student has no profile row.
	assert.Contains(t, sql, "LEFT JOIN student_profiles sp ON sp.user_id = pr.student_id")
	assert.NotContains(t, strings.ReplaceAll(sql, "LEFT JOIN student_profiles", ""), "JOIN student_profiles")

	assert.Contains(t, sql, "COALESCE(sp.registration_no, '')")
	assert.Contains(t, sql, "COALESCE(sp.skills, '{}'::text[])")
	assert.Equal(t, []interface{}{int64(9)}, args)
}

func TestListByMentorQuery_StatusFilter(t *testing.T) {
	repo := NewRequestRepository(nil, nil)

	sql, args, err := repo.listByMentorQuery(9, models.StatusPending)
	require.NoError(t, err)

	assert.Contains(t, sql, "pr.status = $2")
	assert.Equal(t, []interface{}{int64(9), models.StatusPending}, args)
}
