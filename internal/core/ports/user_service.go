package ports

import (
	"context"

	"github.com/acquisitions/acquisitions-api/internal/core/domain"
)

// UserUpdates is a partial update: nil fields are left untouched.
type UserUpdates struct {
	Name  *string
	Email *string
	Role  *string
}

// Empty reports whether no field was provided.
func (u UserUpdates) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Role == nil
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id uint) (*domain.User, error)
	Update(ctx context.Context, id uint, updates UserUpdates) (*domain.User, error)
	Delete(ctx context.Context, id uint) error
}
