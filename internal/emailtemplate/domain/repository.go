package domain

import "context"

type Repository interface {
	List(ctx context.Context) ([]EmailTemplate, error)
	FindByID(ctx context.Context, id string) (*EmailTemplate, error)
	Create(ctx context.Context, template *EmailTemplate) error
	CreateBatch(ctx context.Context, templates []EmailTemplate) error
	Update(ctx context.Context, template *EmailTemplate) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	// SetDefault clears the previous default and marks id in one
	// transaction, so there is exactly one default at any time.
	SetDefault(ctx context.Context, id string) error
}
