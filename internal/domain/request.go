package domain

import (
	"context"
	"time"
)

// Request status values. PENDING is the only initial state. The intended
// employer-facing flow is PENDING → APPROVED | REJECTED, but transitions are
// deliberately unrestricted so administrative correction out of a terminal
// status stays possible. Do not add a state-machine guard here.
const (
	RequestStatusPending  = "PENDING"
	RequestStatusApproved = "APPROVED"
	RequestStatusRejected = "REJECTED"
)

// ValidRequestStatus reports whether s is one of the three status values.
func ValidRequestStatus(s string) bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

// EmployerRequest is an employer's claim on a candidate. The
// (candidate, employer) pair is unique across all rows in any status: an
// employer can request a candidate at most once, ever.
type EmployerRequest struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidate_id"`
	EmployerID  int64     `json:"employer_id"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes,omitempty"`
	RequestedAt time.Time `json:"requested_at"`

	// Interview fields, set atomically at creation when a schedule is
	// supplied. Start/duration/end travel together; the link may lag.
	MeetingLink            *string    `json:"meeting_link,omitempty"`
	MeetingStart           *time.Time `json:"meeting_start,omitempty"`
	MeetingDurationMinutes *int       `json:"meeting_duration_minutes,omitempty"`
	MeetingEnd             *time.Time `json:"meeting_end,omitempty"`
}

// AttachSchedule copies a built schedule onto the row.
func (r *EmployerRequest) AttachSchedule(s *Schedule) {
	if s == nil {
		return
	}
	if s.MeetingLink != "" {
		link := s.MeetingLink
		r.MeetingLink = &link
	}
	start := s.Start
	duration := s.DurationMinutes
	end := s.End
	r.MeetingStart = &start
	r.MeetingDurationMinutes = &duration
	r.MeetingEnd = &end
}

// ScheduleInput is the caller-supplied interview slot on request creation.
type ScheduleInput struct {
	MeetingLink     string    `json:"meeting_link"`
	Start           time.Time `json:"meeting_start"`
	DurationMinutes int       `json:"meeting_duration_minutes"`
}

type RequestRepository interface {
	// Create inserts the row, relying on the storage-level unique index on
	// (candidate_id, employer_id) for the at-most-once guarantee. A pair
	// conflict surfaces as ErrDuplicateRequest; two concurrent calls for
	// the same pair yield exactly one success.
	Create(ctx context.Context, req *EmployerRequest) error
	GetByID(ctx context.Context, id int64) (*EmployerRequest, error)
	UpdateStatus(ctx context.Context, id int64, status string, notes *string) error
	Delete(ctx context.Context, id int64) error
	// ListForEmployer joins this employer's requests to their candidates,
	// text-filtered, unsorted: the view owns the full-set ordering.
	ListForEmployer(ctx context.Context, employerID int64, f CandidateFilter) ([]RequestedCandidate, error)
}

type RequestUsecase interface {
	CreateRequest(ctx context.Context, employerID, candidateID int64, notes string, schedule *ScheduleInput) (*EmployerRequest, error)
	UpdateStatus(ctx context.Context, requestID, actingEmployerID int64, status string, notes *string) (*EmployerRequest, error)
	DeleteRequest(ctx context.Context, requestID int64) error
}
