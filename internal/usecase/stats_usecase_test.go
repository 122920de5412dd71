package usecase_test

import (
	"context"
	"testing"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatistics(t *testing.T) {
	ctx := context.Background()

	repo := new(MockStatsRepo)
	repo.On("CountCandidates", ctx).Return(int64(40), int64(6), nil)
	repo.On("CountEmployers", ctx).Return(int64(9), nil)
	repo.On("CountRequests", ctx).Return(int64(25), int64(4), nil)
	repo.On("CountRequestsByStatus", ctx).Return(domain.RequestStatusCounts{
		Pending: 10, Approved: 9, Rejected: 6,
	}, nil)
	repo.On("TopCities", ctx, 10).Return([]domain.FrequencyCount{{Value: "Almaty", Count: 12}}, nil)
	repo.On("TopNationalities", ctx, 10).Return([]domain.FrequencyCount{{Value: "Kazakh", Count: 20}}, nil)
	repo.On("MonthlyRequestVolume", ctx, 12).Return([]domain.MonthCount{{Month: "2026-02", Count: 7}}, nil)
	// Submission order matters: "Waiter" is seen before "Driver", so on the
	// 1-1 frequency tie it must rank first.
	repo.On("SkillColumnsBySubmission", ctx).Return([]string{
		"Chef,Waiter",
		"chef, Driver",
		"CHEF",
	}, nil)

	uc := usecase.NewStatsUsecase(repo)
	snap, err := uc.ComputeStatistics(ctx)
	assert.NoError(t, err)

	assert.Equal(t, int64(40), snap.TotalCandidates)
	assert.Equal(t, int64(9), snap.TotalEmployers)
	assert.Equal(t, int64(25), snap.TotalRequests)
	assert.Equal(t, int64(10), snap.RequestsByStatus.Pending)

	assert.Equal(t, []domain.FrequencyCount{
		{Value: "Chef", Count: 3},
		{Value: "Waiter", Count: 1},
		{Value: "Driver", Count: 1},
	}, snap.SkillFrequency)
}
