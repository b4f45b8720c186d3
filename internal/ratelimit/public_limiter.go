package ratelimit

import (
	"context"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/kyberbiz/kyberbiz/internal/config"
)

const keyPublicEndpoint = "public:endpoint:"

// PublicLimiter throttles the unauthenticated payment-page endpoints per
// client address. It is disabled (every request allowed) when no redis
// address is configured.
type PublicLimiter struct {
	bucket *TokenBucket
	rate   float64
	burst  int
}

func NewPublicLimiter(cfg config.Config) *PublicLimiter {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &PublicLimiter{
		bucket: NewTokenBucket(client),
		rate:   cfg.PublicRateLimit,
		burst:  cfg.PublicRateBurst,
	}
}

func (l *PublicLimiter) Enabled() bool {
	return l != nil && l.bucket != nil
}

// Allow fails open on redis errors so a cache outage never takes the
// payment page down.
func (l *PublicLimiter) Allow(ctx context.Context, clientAddr string) bool {
	if !l.Enabled() {
		return true
	}
	allowed, err := l.bucket.Allow(ctx, keyPublicEndpoint+strings.TrimSpace(clientAddr), l.rate, l.burst)
	if err != nil {
		return true
	}
	return allowed
}
