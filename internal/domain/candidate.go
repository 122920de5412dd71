package domain

import (
	"context"
	"time"
)

// CandidateProfile is a submitted job-seeker profile. Everything except
// availability and the file references is immutable after submission.
type CandidateProfile struct {
	ID             int64   `json:"id"`
	FullName       string  `json:"full_name" validate:"required,min=2,max=120,valid_name"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string  `json:"phone" validate:"required,valid_phone"`
	City           string  `json:"city" validate:"required,max=80"`
	Nationality    string  `json:"nationality" validate:"required,max=80"`
	EducationLevel string  `json:"education_level" validate:"max=120,no_emoji"`
	Experience     string  `json:"experience" validate:"max=4000,no_emoji"`

	// Skills is the stored comma-delimited form; decode with ParseSkillSet.
	Skills string `json:"skills"`

	// Availability is the opaque serialized WeeklyAvailability.
	Availability string `json:"availability,omitempty"`

	ResumeURL *string   `json:"resume_url,omitempty" validate:"omitempty,url"`
	PhotoURL  *string   `json:"photo_url,omitempty" validate:"omitempty,url"`
	CreatedAt time.Time `json:"created_at"`
}

// SkillSet decodes the stored skills column.
func (p *CandidateProfile) SkillSet() SkillSet {
	return ParseSkillSet(p.Skills)
}

// SkillMatchMode selects how a multi-tag skills filter combines.
type SkillMatchMode string

const (
	SkillMatchAny SkillMatchMode = "any" // candidate has at least one tag
	SkillMatchAll SkillMatchMode = "all" // candidate has every tag
)

// CandidateFilter narrows a matching view. All fields are optional; text
// fields match case-insensitive substrings, Search ORs across
// name/city/education/skills/experience, and Skills applies per SkillMatch
// (default any).
type CandidateFilter struct {
	City       string         `json:"city"`
	Education  string         `json:"education"`
	Experience string         `json:"experience"`
	Search     string         `json:"search"`
	Skills     []string       `json:"skills"`
	SkillMatch SkillMatchMode `json:"skill_match_mode"`
}

// HasSkillFilter reports whether any skill tags were supplied.
func (f CandidateFilter) HasSkillFilter() bool {
	for _, t := range f.Skills {
		if t != "" {
			return true
		}
	}
	return false
}

type CandidateRepository interface {
	Create(ctx context.Context, profile *CandidateProfile) error
	GetByID(ctx context.Context, id int64) (*CandidateProfile, error)
	// Delete hard-deletes the profile; requests referencing it cascade.
	Delete(ctx context.Context, id int64) error
	UpdateAvailability(ctx context.Context, id int64, encoded string) error
	UpdateFileRefs(ctx context.Context, id int64, resumeURL, photoURL *string) error
	// FilterUnrequested returns every candidate the employer has never
	// requested (in any status), text-filtered, newest first. The skills
	// filter is applied by the caller on the decoded set.
	FilterUnrequested(ctx context.Context, employerID int64, f CandidateFilter) ([]CandidateProfile, error)
}

type CandidateUsecase interface {
	SubmitCandidate(ctx context.Context, profile *CandidateProfile) error
	GetCandidate(ctx context.Context, id int64) (*CandidateProfile, error)
	// Availability decodes the stored payload, degrading corrupt data to
	// empty availability on this read path.
	Availability(ctx context.Context, id int64) (WeeklyAvailability, error)
	ReplaceAvailabilityDay(ctx context.Context, id int64, day Weekday, times []string) (WeeklyAvailability, error)
	// UpdateFileReferences swaps the external resume/photo URIs. A nil
	// pointer keeps the stored value.
	UpdateFileReferences(ctx context.Context, id int64, resumeURL, photoURL *string) error
	DeleteCandidate(ctx context.Context, id int64) error
}
