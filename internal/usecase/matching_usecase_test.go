package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func profile(id int64, skills string, createdAt time.Time) domain.CandidateProfile {
	return domain.CandidateProfile{
		ID:        id,
		FullName:  "Candidate",
		Phone:     "+77010000000",
		Skills:    skills,
		CreatedAt: createdAt,
	}
}

func TestUnrequestedCandidates(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Skills filter in any mode includes a partial overlap", func(t *testing.T) {
		candRepo, reqRepo := new(MockCandidateRepo), new(MockRequestRepo)
		f := domain.CandidateFilter{Skills: []string{"Chef", "Waiter"}, SkillMatch: domain.SkillMatchAny}
		candRepo.On("FilterUnrequested", ctx, int64(3), f).Return([]domain.CandidateProfile{
			profile(1, "Chef,Barista", now),
			profile(2, "Driver", now),
		}, nil)

		uc := usecase.NewMatchingUsecase(candRepo, reqRepo, 20)
		page, err := uc.UnrequestedCandidates(ctx, 3, f, 1)
		assert.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, int64(1), page.Items[0].ID)
	})

	t.Run("Skills filter in all mode excludes a partial overlap", func(t *testing.T) {
		candRepo, reqRepo := new(MockCandidateRepo), new(MockRequestRepo)
		f := domain.CandidateFilter{Skills: []string{"Chef", "Waiter"}, SkillMatch: domain.SkillMatchAll}
		candRepo.On("FilterUnrequested", ctx, int64(3), f).Return([]domain.CandidateProfile{
			profile(1, "Chef,Barista", now),
			profile(2, "Chef,Waiter,Barista", now),
		}, nil)

		uc := usecase.NewMatchingUsecase(candRepo, reqRepo, 20)
		page, err := uc.UnrequestedCandidates(ctx, 3, f, 1)
		assert.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, int64(2), page.Items[0].ID)
	})

	t.Run("Totals are computed over the filtered set before slicing", func(t *testing.T) {
		candRepo, reqRepo := new(MockCandidateRepo), new(MockRequestRepo)
		var rows []domain.CandidateProfile
		for i := int64(1); i <= 5; i++ {
			rows = append(rows, profile(i, "Chef", now))
		}
		candRepo.On("FilterUnrequested", ctx, int64(3), domain.CandidateFilter{}).Return(rows, nil)

		uc := usecase.NewMatchingUsecase(candRepo, reqRepo, 2)
		page, err := uc.UnrequestedCandidates(ctx, 3, domain.CandidateFilter{}, 3)
		assert.NoError(t, err)
		assert.Equal(t, 5, page.Page.TotalItems)
		assert.Equal(t, 3, page.Page.TotalPages)
		assert.Len(t, page.Items, 1)
	})

	t.Run("A page past the end is empty, not an error", func(t *testing.T) {
		candRepo, reqRepo := new(MockCandidateRepo), new(MockRequestRepo)
		candRepo.On("FilterUnrequested", ctx, int64(3), domain.CandidateFilter{}).Return([]domain.CandidateProfile{
			profile(1, "", now),
		}, nil)

		uc := usecase.NewMatchingUsecase(candRepo, reqRepo, 20)
		page, err := uc.UnrequestedCandidates(ctx, 3, domain.CandidateFilter{}, 9)
		assert.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 1, page.Page.TotalItems)
	})

	t.Run("Pages are 1-indexed", func(t *testing.T) {
		candRepo, reqRepo := new(MockCandidateRepo), new(MockRequestRepo)
		uc := usecase.NewMatchingUsecase(candRepo, reqRepo, 20)
		_, err := uc.UnrequestedCandidates(ctx, 3, domain.CandidateFilter{}, 0)
		assert.Error(t, err)
	})
}

func TestRequestedCandidates(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(48 * time.Hour)

	row := func(reqID int64, status string, at time.Time, skills string) domain.RequestedCandidate {
		return domain.RequestedCandidate{
			CandidateProfile: profile(reqID*100, skills, at),
			RequestID:        reqID,
			RequestStatus:    status,
			RequestedAt:      at,
		}
	}

	t.Run("A newer approved request never outranks an older pending one", func(t *testing.T) {
		candRepo, reqRepo := new(MockCandidateRepo), new(MockRequestRepo)
		reqRepo.On("ListForEmployer", ctx, int64(3), domain.CandidateFilter{}).Return([]domain.RequestedCandidate{
			row(1, domain.RequestStatusApproved, t1, ""),
			row(2, domain.RequestStatusPending, t0, ""),
		}, nil)

		uc := usecase.NewMatchingUsecase(candRepo, reqRepo, 20)
		page, err := uc.RequestedCandidates(ctx, 3, domain.CandidateFilter{}, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), page.Items[0].RequestID)
		assert.Equal(t, int64(1), page.Items[1].RequestID)
	})

	t.Run("Sort sees the whole set before pagination", func(t *testing.T) {
		candRepo, reqRepo := new(MockCandidateRepo), new(MockRequestRepo)
		reqRepo.On("ListForEmployer", ctx, int64(3), domain.CandidateFilter{}).Return([]domain.RequestedCandidate{
			row(1, domain.RequestStatusApproved, t1, ""),
			row(2, domain.RequestStatusRejected, t1, ""),
			row(3, domain.RequestStatusPending, t0, ""),
		}, nil)

		uc := usecase.NewMatchingUsecase(candRepo, reqRepo, 1)
		page, err := uc.RequestedCandidates(ctx, 3, domain.CandidateFilter{}, 1)
		assert.NoError(t, err)
		// The pending row lands on page 1 even though the repo returned it
		// last.
		assert.Equal(t, int64(3), page.Items[0].RequestID)
		assert.Equal(t, 3, page.Page.TotalPages)

		page2, err := uc.RequestedCandidates(ctx, 3, domain.CandidateFilter{}, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), page2.Items[0].RequestID)
	})

	t.Run("Skills filter applies to candidate attributes", func(t *testing.T) {
		candRepo, reqRepo := new(MockCandidateRepo), new(MockRequestRepo)
		f := domain.CandidateFilter{Skills: []string{"Barista"}}
		reqRepo.On("ListForEmployer", ctx, int64(3), f).Return([]domain.RequestedCandidate{
			row(1, domain.RequestStatusPending, t0, "Chef,Barista"),
			row(2, domain.RequestStatusPending, t0, "Chef"),
		}, nil)

		uc := usecase.NewMatchingUsecase(candRepo, reqRepo, 20)
		page, err := uc.RequestedCandidates(ctx, 3, f, 1)
		assert.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, int64(1), page.Items[0].RequestID)
	})
}

// The two views must partition the catalog for any employer: every candidate
// appears in exactly one of them, and paging across either view neither
// drops nor duplicates rows.
func TestViewsPartitionCatalog(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	// Seven candidates; the employer has requested three of them. The repo
	// halves are complements of the same catalog, as the anti-join and the
	// join guarantee in storage.
	catalog := make(map[int64]bool)
	var unrequested []domain.CandidateProfile
	var requested []domain.RequestedCandidate
	for i := int64(1); i <= 7; i++ {
		catalog[i] = true
		p := profile(i, "Chef", base.Add(time.Duration(i)*time.Hour))
		if i%2 == 0 {
			requested = append(requested, domain.RequestedCandidate{
				CandidateProfile: p,
				RequestID:        100 + i,
				RequestStatus:    domain.RequestStatusPending,
				RequestedAt:      p.CreatedAt,
			})
		} else {
			unrequested = append(unrequested, p)
		}
	}

	candRepo, reqRepo := new(MockCandidateRepo), new(MockRequestRepo)
	candRepo.On("FilterUnrequested", ctx, int64(3), domain.CandidateFilter{}).Return(unrequested, nil)
	reqRepo.On("ListForEmployer", ctx, int64(3), domain.CandidateFilter{}).Return(requested, nil)

	// Page size 2 forces multiple pages on both views.
	uc := usecase.NewMatchingUsecase(candRepo, reqRepo, 2)

	seen := make(map[int64]int)

	first, err := uc.UnrequestedCandidates(ctx, 3, domain.CandidateFilter{}, 1)
	assert.NoError(t, err)
	for page := 1; page <= first.Page.TotalPages; page++ {
		got, err := uc.UnrequestedCandidates(ctx, 3, domain.CandidateFilter{}, page)
		assert.NoError(t, err)
		for _, c := range got.Items {
			seen[c.ID]++
		}
	}

	reqFirst, err := uc.RequestedCandidates(ctx, 3, domain.CandidateFilter{}, 1)
	assert.NoError(t, err)
	for page := 1; page <= reqFirst.Page.TotalPages; page++ {
		got, err := uc.RequestedCandidates(ctx, 3, domain.CandidateFilter{}, page)
		assert.NoError(t, err)
		for _, c := range got.Items {
			seen[c.ID]++
		}
	}

	// Disjoint: no candidate surfaced twice. Coverage: the union across all
	// pages of both views is exactly the catalog.
	assert.Len(t, seen, len(catalog))
	for id := range catalog {
		assert.Equal(t, 1, seen[id], "candidate %d", id)
	}
}
