package postgres

import (
	"context"
	"errors"

	"go-talentmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `
		INSERT INTO employer_profiles
			(user_id, company_name, contact_email, website, industry, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.CompanyName, profile.ContactEmail,
		profile.Website, profile.Industry, profile.CreatedAt,
	).Scan(&profile.ID)
}

func (r *employerRepo) GetByID(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

func (r *employerRepo) GetByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	return r.getBy(ctx, `WHERE user_id = $1`, userID)
}

func (r *employerRepo) getBy(ctx context.Context, where string, arg interface{}) (*domain.EmployerProfile, error) {
	query := `
		SELECT id, user_id, company_name, contact_email, website, industry, created_at
		FROM employer_profiles ` + where

	var p domain.EmployerProfile
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.ContactEmail,
		&p.Website, &p.Industry, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
