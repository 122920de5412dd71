package usecase_test

import (
	"context"

	"go-talentmatch-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock repositories

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCandidateRepo) UpdateAvailability(ctx context.Context, id int64, encoded string) error {
	return m.Called(ctx, id, encoded).Error(0)
}

func (m *MockCandidateRepo) UpdateFileRefs(ctx context.Context, id int64, resumeURL, photoURL *string) error {
	return m.Called(ctx, id, resumeURL, photoURL).Error(0)
}

func (m *MockCandidateRepo) FilterUnrequested(ctx context.Context, employerID int64, f domain.CandidateFilter) ([]domain.CandidateProfile, error) {
	args := m.Called(ctx, employerID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateProfile), args.Error(1)
}

type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.EmployerRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockRequestRepo) GetByID(ctx context.Context, id int64) (*domain.EmployerRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerRequest), args.Error(1)
}

func (m *MockRequestRepo) UpdateStatus(ctx context.Context, id int64, status string, notes *string) error {
	return m.Called(ctx, id, status, notes).Error(0)
}

func (m *MockRequestRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRequestRepo) ListForEmployer(ctx context.Context, employerID int64, f domain.CandidateFilter) ([]domain.RequestedCandidate, error) {
	args := m.Called(ctx, employerID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RequestedCandidate), args.Error(1)
}

type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockEmployerRepo) GetByID(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}

func (m *MockEmployerRepo) GetByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}

type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) CountCandidates(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockStatsRepo) CountEmployers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepo) CountRequests(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockStatsRepo) CountRequestsByStatus(ctx context.Context) (domain.RequestStatusCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RequestStatusCounts), args.Error(1)
}

func (m *MockStatsRepo) TopCities(ctx context.Context, n int) ([]domain.FrequencyCount, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FrequencyCount), args.Error(1)
}

func (m *MockStatsRepo) TopNationalities(ctx context.Context, n int) ([]domain.FrequencyCount, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FrequencyCount), args.Error(1)
}

func (m *MockStatsRepo) SkillColumnsBySubmission(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStatsRepo) MonthlyRequestVolume(ctx context.Context, months int) ([]domain.MonthCount, error) {
	args := m.Called(ctx, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthCount), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendInterviewInvitation(ctx context.Context, inv domain.Invitation) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockNotifier) IsConfigured() bool {
	return m.Called().Bool(0)
}
