package domain

import (
	"context"

	"github.com/kyberbiz/kyberbiz/internal/mailer"
)

type Service interface {
	Branding(ctx context.Context) (*BrandingProfile, error)
	SaveBranding(ctx context.Context, input BrandingInput) (*BrandingProfile, error)
	// PublicBranding is the unauthenticated variant; relative logo URLs get
	// the deployment profile's public prefix applied.
	PublicBranding(ctx context.Context) (*BrandingProfile, error)

	SMTP(ctx context.Context) (*SMTPView, error)
	SaveSMTP(ctx context.Context, input SMTPInput) (*SMTPView, error)
	// ResolveSMTP returns the transport endpoint with the password decrypted.
	// Internal use only; ErrNotConfigured when SMTP was never saved.
	ResolveSMTP(ctx context.Context) (mailer.Server, error)

	PayPal(ctx context.Context) (*PayPalView, error)
	SavePayPal(ctx context.Context, input PayPalInput) (*PayPalView, error)
	// ResolvePayPalClientID decrypts the stored client id; ErrNotConfigured
	// when PayPal was never saved.
	ResolvePayPalClientID(ctx context.Context) (string, error)
}
