package handler

import (
	"strings"

	"github.com/acquisitions/acquisitions-api/internal/core/domain"
)

// messageResponse is the envelope for plain confirmation and error bodies.
type messageResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// --- Request / Response types ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=255"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

// normalize trims and lowercases fields the way the schemas demand before
// validation runs.
func (r *signupRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type signinRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

func (r *signinRequest) normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type userEnvelope struct {
	Message string       `json:"message,omitempty"`
	User    *domain.User `json:"user"`
}
