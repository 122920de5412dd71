package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"
	"go-talentmatch-backend/pkg/logger"
	"go-talentmatch-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

// SubmitCandidate creates the profile once, at application-submission time.
// Fields other than availability and file references are immutable after
// this point.
func (u *candidateUsecase) SubmitCandidate(ctx context.Context, profile *domain.CandidateProfile) error {
	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(validation.Message(err))
	}

	// Normalize the delimited skills column through the set type so the
	// stored form is already trimmed and deduplicated.
	profile.Skills = domain.ParseSkillSet(profile.Skills).Encode()

	if profile.Availability != "" {
		av, err := domain.DecodeAvailability(profile.Availability)
		if err != nil {
			return apperror.BadRequest("invalid availability payload")
		}
		profile.Availability = av.Encode()
	}

	profile.CreatedAt = time.Now()
	if err := u.repo.Create(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id int64) (*domain.CandidateProfile, error) {
	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return profile, nil
}

// Availability decodes the stored payload. A decode failure is data
// corruption: it is logged for diagnosis and degraded to empty availability
// so the read path never fails on the user.
func (u *candidateUsecase) Availability(ctx context.Context, id int64) (domain.WeeklyAvailability, error) {
	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return domain.WeeklyAvailability{}, apperror.Internal(err)
	}
	if profile == nil {
		return domain.WeeklyAvailability{}, apperror.NotFound("Candidate not found")
	}

	av, err := domain.DecodeAvailability(profile.Availability)
	if err != nil {
		logger.Log.Warn("corrupt availability payload, degrading to empty",
			"candidate_id", id, "error", err)
		return domain.WeeklyAvailability{}, nil
	}
	return av, nil
}

// ReplaceAvailabilityDay swaps out one weekday's slot set and persists the
// re-encoded availability. An empty times list removes the day.
func (u *candidateUsecase) ReplaceAvailabilityDay(ctx context.Context, id int64, day domain.Weekday, times []string) (domain.WeeklyAvailability, error) {
	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return domain.WeeklyAvailability{}, apperror.Internal(err)
	}
	if profile == nil {
		return domain.WeeklyAvailability{}, apperror.NotFound("Candidate not found")
	}

	av, err := domain.DecodeAvailability(profile.Availability)
	if err != nil {
		// Corrupt stored data must not block the write path either: start
		// from empty and let the replace rebuild a valid payload.
		logger.Log.Warn("corrupt availability payload, rebuilding from empty",
			"candidate_id", id, "error", err)
		av = domain.WeeklyAvailability{}
	}

	trimmed := make([]string, 0, len(times))
	for _, t := range times {
		if s := strings.TrimSpace(t); s != "" {
			trimmed = append(trimmed, s)
		}
	}

	updated, err := av.ReplaceDay(day, trimmed)
	if err != nil {
		return domain.WeeklyAvailability{}, apperror.BadRequest(err.Error())
	}

	if err := u.repo.UpdateAvailability(ctx, id, updated.Encode()); err != nil {
		return domain.WeeklyAvailability{}, apperror.Internal(err)
	}
	return updated, nil
}

// UpdateFileReferences swaps the candidate's external file URIs. The files
// themselves live in an external store; only the references are held here.
func (u *candidateUsecase) UpdateFileReferences(ctx context.Context, id int64, resumeURL, photoURL *string) error {
	if resumeURL == nil && photoURL == nil {
		return apperror.BadRequest("at least one of resume_url or photo_url is required")
	}
	err := u.repo.UpdateFileRefs(ctx, id, resumeURL, photoURL)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Candidate not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// DeleteCandidate hard-deletes the profile. Requests referencing it cascade
// in storage. Administrative flows only.
func (u *candidateUsecase) DeleteCandidate(ctx context.Context, id int64) error {
	err := u.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Candidate not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
