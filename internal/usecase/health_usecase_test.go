package usecase_test

import (
	"context"
	"errors"
	"testing"

	"lead-relay-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	t.Run("Should report in-memory rate limiting without Redis", func(t *testing.T) {
		got := usecase.NewHealthUsecase(nil).Check(context.Background())
		assert.Equal(t, map[string]string{"status": "ok", "rate_limit": "memory"}, got)
	})

	t.Run("Should stay ok when Redis is down", func(t *testing.T) {
		down := func(ctx context.Context) error { return errors.New("dial tcp: connection refused") }
		got := usecase.NewHealthUsecase(down).Check(context.Background())
		assert.Equal(t, "ok", got["status"])
		assert.Equal(t, "redis_unavailable", got["rate_limit"])
	})

	t.Run("Should report Redis when reachable", func(t *testing.T) {
		up := func(ctx context.Context) error { return nil }
		got := usecase.NewHealthUsecase(up).Check(context.Background())
		assert.Equal(t, "redis", got["rate_limit"])
	})
}
