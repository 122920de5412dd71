package domain

import (
	"context"
	"time"
)

// Page carries the pagination envelope for a matching view. Pages are
// 1-indexed; totals describe the filtered set before slicing.
type Page struct {
	Number     int `json:"page"`
	Size       int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// CandidatePage is one page of the unrequested-candidates view.
type CandidatePage struct {
	Items []CandidateProfile `json:"items"`
	Page  Page               `json:"pagination"`
}

// RequestedCandidate annotates a candidate with the employer's request.
type RequestedCandidate struct {
	CandidateProfile
	RequestID     int64     `json:"request_id"`
	RequestStatus string    `json:"request_status"`
	RequestedAt   time.Time `json:"requested_at"`
}

// RequestedPage is one page of the requested-candidates view.
type RequestedPage struct {
	Items []RequestedCandidate `json:"items"`
	Page  Page                 `json:"pagination"`
}

// Workflow urgency tiers for the requested view. Pending rows always lead;
// decided rows share one tier regardless of outcome.
const (
	priorityPending = 1
	priorityDecided = 2
)

func statusPriority(status string) int {
	if status == RequestStatusPending {
		return priorityPending
	}
	return priorityDecided
}

// RequestedBefore is the exact ordering of the requested-candidates view:
// pending before decided; approved before rejected among decided rows with
// equal request dates; newer requests first within a tier. It must be fed
// the whole filtered set before pagination.
func RequestedBefore(a, b RequestedCandidate) bool {
	pa, pb := statusPriority(a.RequestStatus), statusPriority(b.RequestStatus)
	if pa != pb {
		return pa < pb
	}
	if pa == priorityDecided && a.RequestedAt.Equal(b.RequestedAt) && a.RequestStatus != b.RequestStatus {
		return a.RequestStatus == RequestStatusApproved
	}
	return a.RequestedAt.After(b.RequestedAt)
}

type MatchingUsecase interface {
	UnrequestedCandidates(ctx context.Context, employerID int64, f CandidateFilter, page int) (*CandidatePage, error)
	RequestedCandidates(ctx context.Context, employerID int64, f CandidateFilter, page int) (*RequestedPage, error)
}
