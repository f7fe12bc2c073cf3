package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/acquisitions/acquisitions-api/internal/core/ports"
	"github.com/acquisitions/acquisitions-api/internal/infrastructure/config"
	"github.com/acquisitions/acquisitions-api/internal/infrastructure/db/postgres"
)

// allowGuard waves every request through so router tests exercise the
// routes rather than the screening rules.
type allowGuard struct{}

func (allowGuard) Check(context.Context, ports.ProtectionRequest) (ports.Decision, error) {
	return ports.Decision{Allowed: true}, nil
}

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		Port:      "8080",
		Env:       "test",
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
	// never dialed: the guard is stubbed and readiness is not under test
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})

	return NewRouter(cfg, db, rdb, allowGuard{}, zerolog.Nop())
}

func routerGet(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Liveness(t *testing.T) {
	e := newTestRouter(t)

	rec := routerGet(e, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["status"] != "Healthy" {
		t.Fatalf("expected Healthy status, got %v", body["status"])
	}
	ts, ok := body["timestamp"].(string)
	if !ok {
		t.Fatalf("expected timestamp, got %v", body["timestamp"])
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Fatalf("timestamp not RFC3339: %v", err)
	}
	if uptime, ok := body["uptime"].(float64); !ok || uptime < 0 {
		t.Fatalf("expected non-negative uptime, got %v", body["uptime"])
	}
}

func TestRouter_Greeting(t *testing.T) {
	e := newTestRouter(t)

	rec := routerGet(e, "/api")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "Hello, from Acquisitions API!" {
		t.Fatalf("unexpected greeting: %q", rec.Body.String())
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	e := newTestRouter(t)

	rec := routerGet(e, "/nonexistent")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["message"] != "Endpoint not found" {
		t.Fatalf("unexpected message: %q", body["message"])
	}
}

func TestRouter_DeleteRequiresAuth(t *testing.T) {
	e := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["message"] != "Authentication required" {
		t.Fatalf("unexpected message: %q", body["message"])
	}
}
