package usecase

import (
	"context"
	"sort"
	"strings"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"
)

// Rollup sizes for the dashboard.
const (
	statsTopN         = 10
	statsSeriesMonths = 12
)

type statsUsecase struct {
	repo domain.StatsRepository
}

func NewStatsUsecase(repo domain.StatsRepository) domain.StatsUsecase {
	return &statsUsecase{repo: repo}
}

// ComputeStatistics assembles the read-only rollup over the candidate
// catalog and the request ledger. Nothing here mutates either collection.
func (uc *statsUsecase) ComputeStatistics(ctx context.Context) (*domain.StatsSnapshot, error) {
	snap := &domain.StatsSnapshot{}
	var err error

	if snap.TotalCandidates, snap.NewCandidates30Days, err = uc.repo.CountCandidates(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	if snap.TotalEmployers, err = uc.repo.CountEmployers(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	if snap.TotalRequests, snap.NewRequests30Days, err = uc.repo.CountRequests(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	if snap.RequestsByStatus, err = uc.repo.CountRequestsByStatus(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	if snap.TopCities, err = uc.repo.TopCities(ctx, statsTopN); err != nil {
		return nil, apperror.Internal(err)
	}
	if snap.TopNationalities, err = uc.repo.TopNationalities(ctx, statsTopN); err != nil {
		return nil, apperror.Internal(err)
	}
	if snap.MonthlyRequestVolume, err = uc.repo.MonthlyRequestVolume(ctx, statsSeriesMonths); err != nil {
		return nil, apperror.Internal(err)
	}

	rawSkills, err := uc.repo.SkillColumnsBySubmission(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	snap.SkillFrequency = skillFrequency(rawSkills)

	return snap, nil
}

// skillFrequency decomposes every candidate's skills column into the set
// form and ranks tags by frequency, ties broken by first-seen order across
// the submission-ordered input.
func skillFrequency(rawColumns []string) []domain.FrequencyCount {
	counts := make(map[string]int64)
	firstSeen := make(map[string]int)
	display := make(map[string]string)
	next := 0

	for _, raw := range rawColumns {
		set := domain.ParseSkillSet(raw)
		for _, tag := range set.List() {
			key := normalizeTag(tag)
			if _, seen := firstSeen[key]; !seen {
				firstSeen[key] = next
				display[key] = tag
				next++
			}
			counts[key]++
		}
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return firstSeen[keys[i]] < firstSeen[keys[j]]
	})

	out := make([]domain.FrequencyCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, domain.FrequencyCount{Value: display[k], Count: counts[k]})
	}
	return out
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
