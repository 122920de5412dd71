package usecase

import (
	"context"
	"errors"
	"time"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"
	"go-talentmatch-backend/pkg/logger"
)

type requestUsecase struct {
	requestRepo   domain.RequestRepository
	candidateRepo domain.CandidateRepository
	employerRepo  domain.EmployerRepository
	notifier      domain.InvitationNotifier
}

func NewRequestUsecase(
	requestRepo domain.RequestRepository,
	candidateRepo domain.CandidateRepository,
	employerRepo domain.EmployerRepository,
	notifier domain.InvitationNotifier,
) domain.RequestUsecase {
	return &requestUsecase{
		requestRepo:   requestRepo,
		candidateRepo: candidateRepo,
		employerRepo:  employerRepo,
		notifier:      notifier,
	}
}

// CreateRequest claims a candidate for an employer, at most once ever per
// pair. The uniqueness check-and-insert is a single atomic storage write; a
// pair conflict in any status is the permanent "already requested" answer.
func (uc *requestUsecase) CreateRequest(ctx context.Context, employerID, candidateID int64, notes string, schedule *domain.ScheduleInput) (*domain.EmployerRequest, error) {
	candidate, err := uc.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}

	req := &domain.EmployerRequest{
		CandidateID: candidateID,
		EmployerID:  employerID,
		// Status is forced here regardless of caller input.
		Status:      domain.RequestStatusPending,
		RequestedAt: time.Now(),
	}
	if notes != "" {
		req.Notes = &notes
	}

	// A partial schedule is rejected before any row is written so the
	// interview fields are set atomically with the request or not at all.
	built, err := buildScheduleInput(schedule)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	req.AttachSchedule(built)

	if err := uc.requestRepo.Create(ctx, req); err != nil {
		if errors.Is(err, domain.ErrDuplicateRequest) {
			return nil, apperror.Conflict("You have already requested this candidate")
		}
		return nil, apperror.Internal(err)
	}

	if built != nil && built.Complete() {
		uc.sendInvitation(ctx, candidate, employerID, *built)
	}

	return req, nil
}

// buildScheduleInput validates the optional interview slot. A slot with a
// link builds a finalized schedule; a slot without one builds the
// "time agreed, link pending" draft.
func buildScheduleInput(in *domain.ScheduleInput) (*domain.Schedule, error) {
	if in == nil {
		return nil, nil
	}
	if in.MeetingLink != "" {
		return domain.BuildSchedule(in.Start, in.DurationMinutes, in.MeetingLink)
	}
	return domain.BuildDraftSchedule(in.Start, in.DurationMinutes)
}

// sendInvitation hands a complete schedule to the notification collaborator.
// Fire and forget: a delivery failure is logged, never surfaced or retried.
func (uc *requestUsecase) sendInvitation(ctx context.Context, candidate *domain.CandidateProfile, employerID int64, schedule domain.Schedule) {
	if uc.notifier == nil || !uc.notifier.IsConfigured() {
		return
	}
	if candidate.Email == nil || *candidate.Email == "" {
		logger.Log.Info("skipping interview invitation, candidate has no email",
			"candidate_id", candidate.ID)
		return
	}

	employer, err := uc.employerRepo.GetByID(ctx, employerID)
	if err != nil || employer == nil {
		logger.Log.Warn("skipping interview invitation, employer lookup failed",
			"employer_id", employerID, "error", err)
		return
	}

	inv := domain.Invitation{
		CandidateName:  candidate.FullName,
		CandidateEmail: *candidate.Email,
		CompanyName:    employer.CompanyName,
		EmployerEmail:  employer.ContactEmail,
		Schedule:       schedule,
	}
	if err := uc.notifier.SendInterviewInvitation(ctx, inv); err != nil {
		logger.Log.Warn("interview invitation delivery failed",
			"candidate_id", candidate.ID, "employer_id", employerID, "error", err)
	}
}

// UpdateStatus moves a request to any of the three statuses, including an
// idempotent re-set. There is no technical lock on APPROVED/REJECTED: the
// happy path is PENDING → APPROVED|REJECTED, but administrative correction
// out of a terminal status must stay possible. Ownership is always checked;
// administrative callers use the delete path, not a bypass here.
func (uc *requestUsecase) UpdateStatus(ctx context.Context, requestID, actingEmployerID int64, status string, notes *string) (*domain.EmployerRequest, error) {
	if !domain.ValidRequestStatus(status) {
		return nil, apperror.BadRequest("Invalid status. Must be: PENDING, APPROVED, or REJECTED")
	}

	req, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if req == nil {
		return nil, apperror.NotFound("Request not found")
	}

	if req.EmployerID != actingEmployerID {
		// A mismatch may indicate a stale or forged client reference.
		logger.Log.Warn("request status update rejected, employer mismatch",
			"request_id", requestID, "owner", req.EmployerID, "actor", actingEmployerID)
		return nil, apperror.Forbidden("You can only update your own requests")
	}

	if err := uc.requestRepo.UpdateStatus(ctx, requestID, status, notes); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Request not found")
		}
		return nil, apperror.Internal(err)
	}

	req.Status = status
	if notes != nil {
		req.Notes = notes
	}
	return req, nil
}

// DeleteRequest hard-deletes a ledger row. Irreversible, administrative
// flows only; a deleted pair is never resurrected.
func (uc *requestUsecase) DeleteRequest(ctx context.Context, requestID int64) error {
	err := uc.requestRepo.Delete(ctx, requestID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Request not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
