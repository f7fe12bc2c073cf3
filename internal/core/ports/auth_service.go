package ports

import (
	"context"

	"github.com/acquisitions/acquisitions-api/internal/core/domain"
)

// RegisterInput carries the validated sign-up fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}
