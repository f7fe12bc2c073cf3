package ports

import "github.com/acquisitions/acquisitions-api/internal/core/domain"

// TokenService signs and verifies the session tokens carried in the cookie.
type TokenService interface {
	Sign(user *domain.User) (string, error)
	Verify(token string) (*domain.Identity, error)
}
