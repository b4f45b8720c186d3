package ratelimit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyberbiz/kyberbiz/internal/config"
)

func TestLimiterDisabledWithoutRedis(t *testing.T) {
	limiter := NewPublicLimiter(config.Config{})
	assert.Nil(t, limiter)
	assert.False(t, limiter.Enabled())
	assert.True(t, limiter.Allow(context.Background(), "203.0.113.7"))
}
