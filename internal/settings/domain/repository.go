package domain

import "context"

// Repository persists the singleton settings rows. Get methods return
// (nil, nil) when the row has never been saved.
type Repository interface {
	GetBranding(ctx context.Context) (*BrandingProfile, error)
	SaveBranding(ctx context.Context, profile *BrandingProfile) error

	GetSMTP(ctx context.Context) (*SMTPSettings, error)
	SaveSMTP(ctx context.Context, settings *SMTPSettings) error

	GetPayPal(ctx context.Context) (*PayPalSettings, error)
	SavePayPal(ctx context.Context, settings *PayPalSettings) error
}
