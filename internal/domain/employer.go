package domain

import (
	"context"
	"time"
)

// EmployerProfile is an organization account. The matching engine only
// cares about its identity; company metadata is carried for display and for
// interview invitations.
type EmployerProfile struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	CompanyName  string    `json:"company_name" validate:"required,min=2,max=160,no_emoji"`
	ContactEmail string    `json:"contact_email" validate:"required,email"`
	Website      *string   `json:"website,omitempty" validate:"omitempty,url"`
	Industry     *string   `json:"industry,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type EmployerRepository interface {
	Create(ctx context.Context, profile *EmployerProfile) error
	GetByID(ctx context.Context, id int64) (*EmployerProfile, error)
	GetByUserID(ctx context.Context, userID string) (*EmployerProfile, error)
}

type EmployerUsecase interface {
	RegisterEmployer(ctx context.Context, profile *EmployerProfile) error
	GetEmployer(ctx context.Context, id int64) (*EmployerProfile, error)
	GetEmployerByUserID(ctx context.Context, userID string) (*EmployerProfile, error)
}
