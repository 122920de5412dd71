package usecase

import (
	"context"
	"time"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"
	"go-talentmatch-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type employerUsecase struct {
	repo     domain.EmployerRepository
	validate *validator.Validate
}

func NewEmployerUsecase(repo domain.EmployerRepository, validate *validator.Validate) domain.EmployerUsecase {
	return &employerUsecase{repo: repo, validate: validate}
}

func (u *employerUsecase) RegisterEmployer(ctx context.Context, profile *domain.EmployerProfile) error {
	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(validation.Message(err))
	}
	profile.CreatedAt = time.Now()
	if err := u.repo.Create(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *employerUsecase) GetEmployer(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Employer not found")
	}
	return profile, nil
}

func (u *employerUsecase) GetEmployerByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Employer not found")
	}
	return profile, nil
}
