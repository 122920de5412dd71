package domain

import "context"

// Invitation is the payload handed to the notification collaborator once a
// request carries a complete schedule. The engine guarantees the schedule is
// correct and complete before the handoff; delivery is not retried or
// verified here.
type Invitation struct {
	CandidateName  string
	CandidateEmail string
	CompanyName    string
	EmployerEmail  string
	Schedule       Schedule
}

type InvitationNotifier interface {
	SendInterviewInvitation(ctx context.Context, inv Invitation) error
	IsConfigured() bool
}
