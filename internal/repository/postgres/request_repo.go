package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-talentmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type requestRepo struct {
	db *pgxpool.Pool
}

func NewRequestRepository(db *pgxpool.Pool) domain.RequestRepository {
	return &requestRepo{db: db}
}

// uniqueViolation is the Postgres error code raised by the unique index on
// (candidate_id, employer_id).
const uniqueViolation = "23505"

// Create inserts the request row. The at-most-once-per-pair guarantee lives
// in the database unique index, so the check and the insert are one atomic
// statement: under concurrent calls for the same pair exactly one insert
// wins and the others surface ErrDuplicateRequest.
func (r *requestRepo) Create(ctx context.Context, req *domain.EmployerRequest) error {
	query := `
		INSERT INTO employer_requests
			(candidate_id, employer_id, status, notes, meeting_link,
			 meeting_start, meeting_duration_minutes, meeting_end, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		req.CandidateID, req.EmployerID, req.Status, req.Notes,
		req.MeetingLink, req.MeetingStart, req.MeetingDurationMinutes,
		req.MeetingEnd, req.RequestedAt,
	).Scan(&req.ID)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrDuplicateRequest
	}
	return err
}

func (r *requestRepo) GetByID(ctx context.Context, id int64) (*domain.EmployerRequest, error) {
	query := `
		SELECT id, candidate_id, employer_id, status, notes, meeting_link,
		       meeting_start, meeting_duration_minutes, meeting_end, requested_at
		FROM employer_requests WHERE id = $1`

	var req domain.EmployerRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.CandidateID, &req.EmployerID, &req.Status, &req.Notes,
		&req.MeetingLink, &req.MeetingStart, &req.MeetingDurationMinutes,
		&req.MeetingEnd, &req.RequestedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateStatus writes the status and, when supplied, overwrites the notes.
// A nil notes pointer leaves the stored notes untouched.
func (r *requestRepo) UpdateStatus(ctx context.Context, id int64, status string, notes *string) error {
	query := `
		UPDATE employer_requests
		SET status = $2, notes = COALESCE($3, notes)
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status, notes)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *requestRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM employer_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListForEmployer joins the employer's requests to their candidates with
// the shared text filters applied to the candidate attributes. No ORDER BY:
// the matching view sorts the whole set with its urgency comparator before
// paginating.
func (r *requestRepo) ListForEmployer(ctx context.Context, employerID int64, f domain.CandidateFilter) ([]domain.RequestedCandidate, error) {
	var sb strings.Builder
	args := []interface{}{employerID}

	fmt.Fprintf(&sb, `
		SELECT %s,
		       r.id, r.status, r.requested_at
		FROM employer_requests r
		JOIN candidate_profiles c ON c.id = r.candidate_id
		WHERE r.employer_id = $1`, prefixedCandidateColumns("c"))

	appendTextFilters(&sb, &args, f, "c")

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RequestedCandidate
	for rows.Next() {
		var rc domain.RequestedCandidate
		err := rows.Scan(
			&rc.ID, &rc.FullName, &rc.Email, &rc.Phone, &rc.City, &rc.Nationality,
			&rc.EducationLevel, &rc.Experience, &rc.Skills, &rc.Availability,
			&rc.ResumeURL, &rc.PhotoURL, &rc.CreatedAt,
			&rc.RequestID, &rc.RequestStatus, &rc.RequestedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

func prefixedCandidateColumns(alias string) string {
	return fmt.Sprintf(`%[1]s.id, %[1]s.full_name, %[1]s.email, %[1]s.phone, %[1]s.city,
		%[1]s.nationality, COALESCE(%[1]s.education_level, ''), COALESCE(%[1]s.experience, ''),
		COALESCE(%[1]s.skills, ''), COALESCE(%[1]s.availability, ''),
		%[1]s.resume_url, %[1]s.photo_url, %[1]s.created_at`, alias)
}
