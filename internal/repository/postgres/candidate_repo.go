package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-talentmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const candidateColumns = `id, full_name, email, phone, city, nationality,
	COALESCE(education_level, ''), COALESCE(experience, ''),
	COALESCE(skills, ''), COALESCE(availability, ''),
	resume_url, photo_url, created_at`

func scanCandidate(row pgx.Row) (*domain.CandidateProfile, error) {
	var p domain.CandidateProfile
	err := row.Scan(
		&p.ID, &p.FullName, &p.Email, &p.Phone, &p.City, &p.Nationality,
		&p.EducationLevel, &p.Experience, &p.Skills, &p.Availability,
		&p.ResumeURL, &p.PhotoURL, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *candidateRepo) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `
		INSERT INTO candidate_profiles
			(full_name, email, phone, city, nationality, education_level,
			 experience, skills, availability, resume_url, photo_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		profile.FullName, profile.Email, profile.Phone, profile.City,
		profile.Nationality, profile.EducationLevel, profile.Experience,
		profile.Skills, profile.Availability, profile.ResumeURL,
		profile.PhotoURL, profile.CreatedAt,
	).Scan(&profile.ID)
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidate_profiles WHERE id = $1`, candidateColumns)
	p, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// Delete removes the profile. The employer_requests FK is declared ON
// DELETE CASCADE, so every request referencing the candidate goes with it.
func (r *candidateRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM candidate_profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) UpdateAvailability(ctx context.Context, id int64, encoded string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE candidate_profiles SET availability = $2 WHERE id = $1`, id, encoded)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) UpdateFileRefs(ctx context.Context, id int64, resumeURL, photoURL *string) error {
	result, err := r.db.Exec(ctx, `
		UPDATE candidate_profiles
		SET resume_url = COALESCE($2, resume_url),
		    photo_url  = COALESCE($3, photo_url)
		WHERE id = $1`, id, resumeURL, photoURL)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FilterUnrequested returns the text-filtered catalog minus every candidate
// the employer has requested in any status, newest submissions first. The
// whole set is returned: the matching view paginates only after the decoded
// skills filter and the final sort have run.
func (r *candidateRepo) FilterUnrequested(ctx context.Context, employerID int64, f domain.CandidateFilter) ([]domain.CandidateProfile, error) {
	var sb strings.Builder
	args := []interface{}{employerID}

	fmt.Fprintf(&sb, `
		SELECT %s FROM candidate_profiles c
		WHERE NOT EXISTS (
			SELECT 1 FROM employer_requests r
			WHERE r.candidate_id = c.id AND r.employer_id = $1
		)`, candidateColumns)

	appendTextFilters(&sb, &args, f, "c")
	sb.WriteString(` ORDER BY c.created_at DESC`)

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CandidateProfile
	for rows.Next() {
		p, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// appendTextFilters adds the shared candidate-attribute filter conditions.
// Both matching views use identical semantics: case-insensitive substring
// match per field, plus a general OR search across
// name/city/education/skills/experience.
func appendTextFilters(sb *strings.Builder, args *[]interface{}, f domain.CandidateFilter, alias string) {
	like := func(column, value string) {
		*args = append(*args, "%"+value+"%")
		fmt.Fprintf(sb, ` AND %s.%s ILIKE $%d`, alias, column, len(*args))
	}

	if f.City != "" {
		like("city", f.City)
	}
	if f.Education != "" {
		like("education_level", f.Education)
	}
	if f.Experience != "" {
		like("experience", f.Experience)
	}
	if f.Search != "" {
		*args = append(*args, "%"+f.Search+"%")
		n := len(*args)
		fmt.Fprintf(sb, ` AND (%[1]s.full_name ILIKE $%[2]d OR %[1]s.city ILIKE $%[2]d
			OR %[1]s.education_level ILIKE $%[2]d OR %[1]s.skills ILIKE $%[2]d
			OR %[1]s.experience ILIKE $%[2]d)`, alias, n)
	}
}
