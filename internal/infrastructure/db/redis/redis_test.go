package redis

import (
	"context"
	"strings"
	"testing"

	"github.com/acquisitions/acquisitions-api/internal/infrastructure/config"
)

func TestConnect_UnreachableAddr(t *testing.T) {
	// port 1 is never listening, so the startup ping must fail fast
	client, err := Connect(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1"})
	if err == nil {
		_ = client.Close()
		t.Fatalf("expected connection error for unreachable address")
	}
	if !strings.Contains(err.Error(), "redis ping") {
		t.Fatalf("expected wrapped ping error, got %v", err)
	}
}
