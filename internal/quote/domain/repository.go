package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Create(ctx context.Context, quote *Quote) error
	// List returns quotes newest first.
	List(ctx context.Context) ([]Quote, error)
	FindByID(ctx context.Context, id snowflake.ID) (*Quote, error)
	Update(ctx context.Context, quote *Quote) error
	Delete(ctx context.Context, id snowflake.ID) error
}
