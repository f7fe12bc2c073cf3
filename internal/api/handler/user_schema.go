package handler

import (
	"strings"

	"github.com/acquisitions/acquisitions-api/internal/core/domain"
)

type updateUserRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=2,max=255"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
	Role  *string `json:"role"  validate:"omitempty,oneof=user admin"`
}

func (r *updateUserRequest) normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.Email != nil {
		lowered := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &lowered
	}
}

func (r *updateUserRequest) empty() bool {
	return r.Name == nil && r.Email == nil && r.Role == nil
}

type listUsersResponse struct {
	Users []domain.User `json:"users"`
	Count int           `json:"count"`
}
