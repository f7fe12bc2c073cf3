package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/acquisitions/acquisitions-api/internal/core/domain"
	"github.com/acquisitions/acquisitions-api/internal/core/ports"
)

// UserService implements list/get/update/delete over user records.
// Authorization rules (self-or-admin, admin-only role changes) live at the
// HTTP layer; this service only enforces data-level invariants.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update and refreshes UpdatedAt. An email change
// that collides with another account surfaces as domain.ErrEmailTaken.
func (s *UserService) Update(ctx context.Context, id uint, updates ports.UserUpdates) (*domain.User, error) {
	if updates.Empty() {
		return nil, domain.ErrNoUpdates
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Name != nil {
		user.Name = *updates.Name
	}
	if updates.Email != nil {
		user.Email = *updates.Email
	}
	if updates.Role != nil {
		if !domain.ValidRole(*updates.Role) {
			return nil, domain.NewValidationError(`role must be either "user" or "admin"`)
		}
		user.Role = *updates.Role
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("user_id", id).Msg("user updated")
	return user, nil
}

// Delete permanently removes the record. Missing ids report ErrUserNotFound,
// so a repeated delete is indistinguishable from deleting a user that never
// existed.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Uint("user_id", id).Msg("user deleted")
	return nil
}

var _ ports.UserService = (*UserService)(nil)
