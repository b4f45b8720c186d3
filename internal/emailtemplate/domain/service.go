package domain

import "context"

type Service interface {
	// List returns all templates, seeding the built-in starters on first
	// read of an empty collection.
	List(ctx context.Context) ([]EmailTemplate, error)
	Get(ctx context.Context, id string) (*EmailTemplate, error)
	Create(ctx context.Context, input Input) (*EmailTemplate, error)
	// Update rejects built-in templates.
	Update(ctx context.Context, id string, input Input) (*EmailTemplate, error)
	// Delete rejects built-in templates.
	Delete(ctx context.Context, id string) error
	SetDefault(ctx context.Context, id string) (*EmailTemplate, error)
}
