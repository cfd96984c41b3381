package usecase

import (
	"context"
	"time"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// PingFunc checks an optional backing service
type PingFunc func(ctx context.Context) error

type healthUsecase struct {
	rateLimitBackend PingFunc
}

// NewHealthUsecase creates the health usecase. A nil ping means the rate limiter runs in memory.
func NewHealthUsecase(rateLimitBackend PingFunc) HealthUsecase {
	return &healthUsecase{rateLimitBackend: rateLimitBackend}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	result := map[string]string{
		"status":     "ok",
		"rate_limit": "memory",
	}
	if u.rateLimitBackend == nil {
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	// Redis being down only degrades rate limiting; the relay keeps working.
	if err := u.rateLimitBackend(ctx); err != nil {
		result["rate_limit"] = "redis_unavailable"
		return result
	}
	result["rate_limit"] = "redis"
	return result
}
