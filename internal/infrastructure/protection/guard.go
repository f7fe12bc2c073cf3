// Package protection implements the request-protection guard: bot
// detection, a small shield rule set, and role-derived rate limiting
// backed by Redis.
package protection

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/acquisitions/acquisitions-api/internal/core/domain"
	"github.com/acquisitions/acquisitions-api/internal/core/ports"
)

// Per-minute request limits by role. Unknown roles are treated as guests.
const (
	adminLimit = 20
	userLimit  = 10
	guestLimit = 5
)

// botMarkers are user-agent substrings that identify automated clients.
var botMarkers = []string{
	"bot", "crawler", "spider", "curl", "wget", "python-requests", "scrapy",
}

// shieldMarkers are request-path fragments associated with probing attacks.
var shieldMarkers = []string{
	"../", "/.env", "/.git", "/wp-admin", "/etc/passwd",
}

// RateLimiter counts requests per key within a window.
type RateLimiter interface {
	Allow(ctx context.Context, key string, max int) (bool, error)
}

// Guard is the local stand-in for an external protection service.
type Guard struct {
	limiter RateLimiter
	logger  zerolog.Logger
}

func NewGuard(limiter RateLimiter, logger zerolog.Logger) *Guard {
	return &Guard{limiter: limiter, logger: logger}
}

// Check evaluates bot, shield, and rate-limit rules in order. The first
// matching rule denies the request with its reason.
func (g *Guard) Check(ctx context.Context, req ports.ProtectionRequest) (ports.Decision, error) {
	if isBot(req.UserAgent) {
		g.logger.Warn().
			Str("ip", req.IP).
			Str("user_agent", req.UserAgent).
			Str("path", req.Path).
			Msg("blocked bot request")
		return ports.Decision{Reason: ports.ReasonBot}, nil
	}

	if triggersShield(req) {
		g.logger.Warn().
			Str("ip", req.IP).
			Str("path", req.Path).
			Str("method", req.Method).
			Msg("shield blocked request")
		return ports.Decision{Reason: ports.ReasonShield}, nil
	}

	role := req.Role
	if !domain.ValidRole(role) {
		role = "guest"
	}

	allowed, err := g.limiter.Allow(ctx, fmt.Sprintf("%s:%s", role, req.IP), limitFor(role))
	if err != nil {
		return ports.Decision{}, err
	}
	if !allowed {
		g.logger.Warn().
			Str("ip", req.IP).
			Str("role", role).
			Str("path", req.Path).
			Msg("rate limit exceeded")
		return ports.Decision{Reason: ports.ReasonRateLimit}, nil
	}

	return ports.Decision{Allowed: true}, nil
}

func limitFor(role string) int {
	switch role {
	case domain.RoleAdmin:
		return adminLimit
	case domain.RoleUser:
		return userLimit
	default:
		return guestLimit
	}
}

func isBot(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	for _, marker := range botMarkers {
		if strings.Contains(ua, marker) {
			return true
		}
	}
	return false
}

func triggersShield(req ports.ProtectionRequest) bool {
	if req.UserAgent == "" {
		return true
	}
	path := strings.ToLower(req.Path)
	for _, marker := range shieldMarkers {
		if strings.Contains(path, marker) {
			return true
		}
	}
	return false
}

var _ ports.Guard = (*Guard)(nil)
