package postgres

import (
	"context"

	"go-talentmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type statsRepo struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) domain.StatsRepository {
	return &statsRepo{db: db}
}

func (r *statsRepo) CountCandidates(ctx context.Context) (int64, int64, error) {
	var total, recent int64
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '30 days')
		FROM candidate_profiles`
	err := r.db.QueryRow(ctx, query).Scan(&total, &recent)
	return total, recent, err
}

func (r *statsRepo) CountEmployers(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employer_profiles`).Scan(&total)
	return total, err
}

func (r *statsRepo) CountRequests(ctx context.Context) (int64, int64, error) {
	var total, recent int64
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE requested_at >= NOW() - INTERVAL '30 days')
		FROM employer_requests`
	err := r.db.QueryRow(ctx, query).Scan(&total, &recent)
	return total, recent, err
}

func (r *statsRepo) CountRequestsByStatus(ctx context.Context) (domain.RequestStatusCounts, error) {
	var counts domain.RequestStatusCounts
	query := `
		SELECT COUNT(*) FILTER (WHERE status = 'PENDING'),
		       COUNT(*) FILTER (WHERE status = 'APPROVED'),
		       COUNT(*) FILTER (WHERE status = 'REJECTED')
		FROM employer_requests`
	err := r.db.QueryRow(ctx, query).Scan(&counts.Pending, &counts.Approved, &counts.Rejected)
	return counts, err
}

func (r *statsRepo) TopCities(ctx context.Context, n int) ([]domain.FrequencyCount, error) {
	return r.topColumn(ctx, "city", n)
}

func (r *statsRepo) TopNationalities(ctx context.Context, n int) ([]domain.FrequencyCount, error) {
	return r.topColumn(ctx, "nationality", n)
}

func (r *statsRepo) topColumn(ctx context.Context, column string, n int) ([]domain.FrequencyCount, error) {
	// column is one of two compile-time constants, never user input.
	query := `
		SELECT ` + column + `, COUNT(*) AS freq
		FROM candidate_profiles
		WHERE ` + column + ` <> ''
		GROUP BY ` + column + `
		ORDER BY freq DESC, MIN(created_at) ASC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.FrequencyCount
	for rows.Next() {
		var fc domain.FrequencyCount
		if err := rows.Scan(&fc.Value, &fc.Count); err != nil {
			return nil, err
		}
		out = append(out, fc)
	}
	return out, rows.Err()
}

// SkillColumnsBySubmission feeds the in-process skill aggregation: skills
// are a delimited string, so decomposition happens in the usecase, and the
// submission order here is what its first-seen tiebreak runs on.
func (r *statsRepo) SkillColumnsBySubmission(ctx context.Context) ([]string, error) {
	query := `
		SELECT COALESCE(skills, '')
		FROM candidate_profiles
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *statsRepo) MonthlyRequestVolume(ctx context.Context, months int) ([]domain.MonthCount, error) {
	query := `
		SELECT to_char(date_trunc('month', requested_at), 'YYYY-MM') AS month,
		       COUNT(*)
		FROM employer_requests
		WHERE requested_at >= date_trunc('month', NOW()) - make_interval(months => $1)
		GROUP BY month
		ORDER BY month ASC`

	rows, err := r.db.Query(ctx, query, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MonthCount
	for rows.Next() {
		var mc domain.MonthCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, err
		}
		out = append(out, mc)
	}
	return out, rows.Err()
}
