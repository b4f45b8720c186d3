package domain

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("invalid_range")

type Service interface {
	// Summary aggregates revenue and expenses between start and end
	// (inclusive); end must not precede start.
	Summary(ctx context.Context, start, end time.Time) (*Summary, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}
