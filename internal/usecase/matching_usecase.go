package usecase

import (
	"context"
	"sort"
	"strings"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"
)

type matchingUsecase struct {
	candidateRepo domain.CandidateRepository
	requestRepo   domain.RequestRepository
	pageSize      int
}

func NewMatchingUsecase(candidateRepo domain.CandidateRepository, requestRepo domain.RequestRepository, pageSize int) domain.MatchingUsecase {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &matchingUsecase{
		candidateRepo: candidateRepo,
		requestRepo:   requestRepo,
		pageSize:      pageSize,
	}
}

// UnrequestedCandidates is the browse view: the whole catalog minus every
// candidate this employer has ever requested, in any status. A rejected
// request still keeps the candidate out of this view forever.
func (uc *matchingUsecase) UnrequestedCandidates(ctx context.Context, employerID int64, f domain.CandidateFilter, page int) (*domain.CandidatePage, error) {
	if page < 1 {
		return nil, apperror.BadRequest("Page numbers start at 1")
	}

	// The repository applies the text filters and the anti-join, newest
	// first. Skill matching needs the decoded set, so it happens here, and
	// pagination only after the fully filtered set is known.
	rows, err := uc.candidateRepo.FilterUnrequested(ctx, employerID, f)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if f.HasSkillFilter() {
		filtered := rows[:0]
		for _, c := range rows {
			if matchSkills(c.SkillSet(), f) {
				filtered = append(filtered, c)
			}
		}
		rows = filtered
	}

	meta, lo, hi := paginate(len(rows), page, uc.pageSize)
	return &domain.CandidatePage{
		Items: append([]domain.CandidateProfile{}, rows[lo:hi]...),
		Page:  meta,
	}, nil
}

// RequestedCandidates is the tracking view: this employer's requests joined
// to their candidates, sorted by workflow urgency. The sort always sees the
// whole filtered set; pagination is applied last.
func (uc *matchingUsecase) RequestedCandidates(ctx context.Context, employerID int64, f domain.CandidateFilter, page int) (*domain.RequestedPage, error) {
	if page < 1 {
		return nil, apperror.BadRequest("Page numbers start at 1")
	}

	rows, err := uc.requestRepo.ListForEmployer(ctx, employerID, f)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if f.HasSkillFilter() {
		filtered := rows[:0]
		for _, c := range rows {
			if matchSkills(c.SkillSet(), f) {
				filtered = append(filtered, c)
			}
		}
		rows = filtered
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return domain.RequestedBefore(rows[i], rows[j])
	})

	meta, lo, hi := paginate(len(rows), page, uc.pageSize)
	return &domain.RequestedPage{
		Items: append([]domain.RequestedCandidate{}, rows[lo:hi]...),
		Page:  meta,
	}, nil
}

// matchSkills applies the multi-tag filter against the decoded set. The
// match mode is caller-supplied and defaults to any. Blank tags are noise
// from the query string and are ignored.
func matchSkills(s domain.SkillSet, f domain.CandidateFilter) bool {
	tags := make([]string, 0, len(f.Skills))
	for _, t := range f.Skills {
		if strings.TrimSpace(t) != "" {
			tags = append(tags, t)
		}
	}
	if f.SkillMatch == domain.SkillMatchAll {
		return s.HasAll(tags)
	}
	return s.HasAny(tags)
}

// paginate computes the page envelope and the slice bounds for a 1-indexed
// page over the fully filtered, fully sorted set.
func paginate(total, page, size int) (domain.Page, int, int) {
	totalPages := (total + size - 1) / size
	lo := (page - 1) * size
	if lo > total {
		lo = total
	}
	hi := lo + size
	if hi > total {
		hi = total
	}
	return domain.Page{
		Number:     page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}, lo, hi
}
