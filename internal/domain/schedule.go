package domain

import (
	"errors"
	"time"
)

// MaxMeetingMinutes is a sanity bound on interview length, not a policy
// constant: durations are caller-supplied per request.
const MaxMeetingMinutes = 8 * 60

// Schedule is a concrete interview slot attached to a request at creation.
// MeetingLink may be empty while the slot is agreed but the call link is
// still pending; invitations are only sent once the link exists.
type Schedule struct {
	MeetingLink     string    `json:"meeting_link,omitempty"`
	Start           time.Time `json:"meeting_start"`
	DurationMinutes int       `json:"meeting_duration_minutes"`
	End             time.Time `json:"meeting_end"`
}

// Complete reports whether the schedule carries everything an invitation
// needs.
func (s Schedule) Complete() bool {
	return s.MeetingLink != "" && !s.Start.IsZero()
}

// BuildSchedule derives and validates a finalized schedule. The start time
// is mandatory, the duration must be positive and sane, and the link must be
// present: a timed slot without a link is built with BuildDraftSchedule
// instead.
func BuildSchedule(start time.Time, durationMinutes int, meetingLink string) (*Schedule, error) {
	if meetingLink == "" {
		return nil, errors.New("meeting link is required once a start time is set")
	}
	s, err := BuildDraftSchedule(start, durationMinutes)
	if err != nil {
		return nil, err
	}
	s.MeetingLink = meetingLink
	return s, nil
}

// BuildDraftSchedule derives a schedule whose link is still pending. The
// slot is a valid, displayable state on the request; it just cannot be
// invited yet.
func BuildDraftSchedule(start time.Time, durationMinutes int) (*Schedule, error) {
	if start.IsZero() {
		return nil, errors.New("meeting start time is required")
	}
	if durationMinutes <= 0 {
		return nil, errors.New("meeting duration must be positive")
	}
	if durationMinutes > MaxMeetingMinutes {
		return nil, errors.New("meeting duration exceeds the maximum allowed")
	}
	return &Schedule{
		Start:           start,
		DurationMinutes: durationMinutes,
		End:             start.Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}
