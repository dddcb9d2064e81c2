package services

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFacultyProfileStore struct {
	profiles map[int64]*models.FacultyProfile // keyed by user id
	nextID   int64
}

func newFakeFacultyProfileStore() *fakeFacultyProfileStore {
	return &fakeFacultyProfileStore{profiles: map[int64]*models.FacultyProfile{}, nextID: 1}
}

func (f *fakeFacultyProfileStore) Create(_ context.Context, profile *models.FacultyProfile) error {
	if _, ok := f.profiles[profile.UserID]; ok {
		return apperrors.ErrProfileAlreadyExists
	}
	profile.ID = f.nextID
	f.nextID++
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeFacultyProfileStore) GetByUserID(_ context.Context, userID int64) (*models.FacultyProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeFacultyProfileStore) GetByID(_ context.Context, profileID int64) (*models.FacultyProfile, error) {
	for _, p := range f.profiles {
		if p.ID == profileID {
			return p, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func (f *fakeFacultyProfileStore) Update(_ context.Context, userID int64, fields map[string]interface{}) (*models.FacultyProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	for column, value := range fields {
		switch column {
		case "designation":
			p.Designation = value.(string)
		case "capacity":
			p.Capacity = models.Capacity(value.(string))
		case "skills":
			p.Skills = value.([]string)
		case "interests":
			p.Interests = value.([]string)
		}
	}
	return p, nil
}

func (f *fakeFacultyProfileStore) matching(filter dto.MentorFilter) []*models.FacultyProfile {
	result := []*models.FacultyProfile{}
	for _, p := range f.profiles {
		if filter.Capacity != "" && string(p.Capacity) != filter.Capacity {
			continue
		}
		if filter.Skill != "" {
			found := false
			for _, skill := range p.Skills {
				if strings.Contains(strings.ToLower(skill), strings.ToLower(filter.Skill)) {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (f *fakeFacultyProfileStore) ListMentors(_ context.Context, filter dto.MentorFilter, offset, limit int) ([]*models.FacultyProfile, error) {
	matched := f.matching(filter)
	if offset >= len(matched) {
		return []*models.FacultyProfile{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (f *fakeFacultyProfileStore) CountMentors(_ context.Context, filter dto.MentorFilter) (int64, error) {
	return int64(len(f.matching(filter))), nil
}

func seedMentors(t *testing.T, svc FacultyService) {
	t.Helper()
	mentors := []struct {
		userID   int64
		capacity models.Capacity
		skills   []string
	}{
		{1, models.CapacityAvailable, []string{"Distributed Systems", "Go"}},
		{2, models.CapacityLimited, []string{"Machine Learning"}},
		{3, models.CapacityFull, []string{"Databases", "go tooling"}},
		{4, models.CapacityAvailable, []string{"Compilers"}},
	}
	for _, m := range mentors {
		_, err := svc.CreateProfile(context.Background(), m.userID, &dto.CreateFacultyProfileRequest{
			Designation: "Assistant Professor",
			Capacity:    string(m.capacity),
			Skills:      m.skills,
		})
		require.NoError(t, err)
	}
}

func TestCreateFacultyProfile(t *testing.T) {
	store := newFakeFacultyProfileStore()
	svc := NewFacultyService(store, zerolog.Nop())

	profile, err := svc.CreateProfile(context.Background(), 7, &dto.CreateFacultyProfileRequest{
		Designation: "Professor",
		Capacity:    "limited",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), profile.UserID)
	assert.Equal(t, models.CapacityLimited, profile.Capacity)
	assert.NotNil(t, profile.Skills)

	_, err = svc.CreateProfile(context.Background(), 7, &dto.CreateFacultyProfileRequest{
		Designation: "Professor",
		Capacity:    "limited",
	})
	assert.ErrorIs(t, err, apperrors.ErrProfileAlreadyExists)
}

func TestUpdateFacultyProfile_PartialFields(t *testing.T) {
	store := newFakeFacultyProfileStore()
	svc := NewFacultyService(store, zerolog.Nop())
	seedMentors(t, svc)

	capacity := "full"
	updated, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateFacultyProfileRequest{
		Capacity: &capacity,
	})
	require.NoError(t, err)

	assert.Equal(t, models.CapacityFull, updated.Capacity)
	assert.Equal(t, "Assistant Professor", updated.Designation)
	assert.Equal(t, []string{"Distributed Systems", "Go"}, updated.Skills)
}

func TestListMentors_NoFilter(t *testing.T) {
	store := newFakeFacultyProfileStore()
	svc := NewFacultyService(store, zerolog.Nop())
	seedMentors(t, svc)

	mentors, pagination, err := svc.ListMentors(context.Background(), dto.MentorFilter{}, 1, 10)
	require.NoError(t, err)

	assert.Len(t, mentors, 4)
	assert.Equal(t, int64(4), pagination.TotalItems)
	assert.Equal(t, 1, pagination.TotalPages)
}

func TestListMentors_CapacityFilter(t *testing.T) {
	store := newFakeFacultyProfileStore()
	svc := NewFacultyService(store, zerolog.Nop())
	seedMentors(t, svc)

	mentors, pagination, err := svc.ListMentors(context.Background(), dto.MentorFilter{Capacity: "available"}, 1, 10)
	require.NoError(t, err)

	assert.Len(t, mentors, 2)
	assert.Equal(t, int64(2), pagination.TotalItems)
	for _, m := range mentors {
		assert.Equal(t, models.CapacityAvailable, m.Capacity)
	}
}

func TestListMentors_SkillFilterIsCaseInsensitiveSubstring(t *testing.T) {
	store := newFakeFacultyProfileStore()
	svc := NewFacultyService(store, zerolog.Nop())
	seedMentors(t, svc)

	mentors, _, err := svc.ListMentors(context.Background(), dto.MentorFilter{Skill: "go"}, 1, 10)
	require.NoError(t, err)

	require.Len(t, mentors, 2)
	assert.Equal(t, int64(1), mentors[0].UserID)
	assert.Equal(t, int64(3), mentors[1].UserID)
}

func TestListMentors_CombinedFilters(t *testing.T) {
	store := newFakeFacultyProfileStore()
	svc := NewFacultyService(store, zerolog.Nop())
	seedMentors(t, svc)

	mentors, pagination, err := svc.ListMentors(context.Background(), dto.MentorFilter{
		Capacity: "available",
		Skill:    "go",
	}, 1, 10)
	require.NoError(t, err)

	require.Len(t, mentors, 1)
	assert.Equal(t, int64(1), mentors[0].UserID)
	assert.Equal(t, int64(1), pagination.TotalItems)
}

func TestGetFacultyProfileByID(t *testing.T) {
	store := newFakeFacultyProfileStore()
	svc := NewFacultyService(store, zerolog.Nop())
	seedMentors(t, svc)

	profile, err := svc.GetProfileByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.UserID)

	_, err = svc.GetProfileByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}
