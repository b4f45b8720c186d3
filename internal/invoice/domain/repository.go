package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Create(ctx context.Context, invoice *Invoice) error
	// List returns invoices newest first.
	List(ctx context.Context) ([]Invoice, error)
	FindByID(ctx context.Context, id snowflake.ID) (*Invoice, error)
	Update(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, id snowflake.ID) error
}
