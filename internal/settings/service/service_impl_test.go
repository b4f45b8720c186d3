package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/kyberbiz/kyberbiz/internal/cipher"
	"github.com/kyberbiz/kyberbiz/internal/config"
	settingsdomain "github.com/kyberbiz/kyberbiz/internal/settings/domain"
	"github.com/kyberbiz/kyberbiz/internal/settings/repository"
)

func newTestService(t *testing.T) settingsdomain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:settings_svc_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&settingsdomain.BrandingProfile{},
		&settingsdomain.SMTPSettings{},
		&settingsdomain.PayPalSettings{},
	))

	credCipher, err := cipher.NewEphemeral()
	require.NoError(t, err)
	profile, err := config.NewDocumentProfileHolder()
	require.NoError(t, err)

	return NewService(ServiceParam{
		Repository: repository.NewRepository(db),
		Cipher:     credCipher,
		Profile:    profile,
		Logger:     zaptest.NewLogger(t),
	})
}

func TestBrandingDefaultsUntilSaved(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	profile, err := svc.Branding(ctx)
	require.NoError(t, err)
	assert.Equal(t, "KyberBusiness", profile.CompanyName)
	assert.Equal(t, "#06b6d4", profile.PrimaryColor)
	assert.Equal(t, "#d946ef", profile.SecondaryColor)
	assert.Equal(t, "#10b981", profile.AccentColor)

	saved, err := svc.SaveBranding(ctx, settingsdomain.BrandingInput{
		CompanyName:  "Orbit Labs",
		PrimaryColor: "#112233",
		LogoURL:      "/uploads/logo.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Orbit Labs", saved.CompanyName)
	assert.Equal(t, "#112233", saved.PrimaryColor)
	// Unset colors keep their defaults.
	assert.Equal(t, "#d946ef", saved.SecondaryColor)

	reloaded, err := svc.Branding(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Orbit Labs", reloaded.CompanyName)
}

func TestSaveBrandingRejectsBadColor(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SaveBranding(context.Background(), settingsdomain.BrandingInput{
		CompanyName:  "Orbit",
		PrimaryColor: "blue",
	})
	assert.ErrorIs(t, err, settingsdomain.ErrInvalidColor)
}

func TestPublicBrandingPrefixesRelativeLogo(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveBranding(ctx, settingsdomain.BrandingInput{
		CompanyName: "Orbit",
		LogoURL:     "/uploads/logo.png",
	})
	require.NoError(t, err)

	public, err := svc.PublicBranding(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/public/uploads/logo.png", public.LogoURL)

	_, err = svc.SaveBranding(ctx, settingsdomain.BrandingInput{
		CompanyName: "Orbit",
		LogoURL:     "https://cdn.test/logo.png",
	})
	require.NoError(t, err)

	public, err = svc.PublicBranding(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/logo.png", public.LogoURL)
}

func TestSMTPLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SMTP(ctx)
	assert.ErrorIs(t, err, settingsdomain.ErrNotConfigured)
	_, err = svc.ResolveSMTP(ctx)
	assert.ErrorIs(t, err, settingsdomain.ErrNotConfigured)

	view, err := svc.SaveSMTP(ctx, settingsdomain.SMTPInput{
		Host:      "smtp.test",
		Port:      587,
		Username:  "mailer",
		Password:  "hunter2",
		FromEmail: "billing@orbit.test",
		FromName:  "Orbit Labs",
	})
	require.NoError(t, err)
	assert.True(t, view.HasPassword)

	server, err := svc.ResolveSMTP(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", server.Password)
	assert.Equal(t, "smtp.test:587", server.Addr())

	// Saving without a password keeps the stored one.
	view, err = svc.SaveSMTP(ctx, settingsdomain.SMTPInput{
		Host:      "smtp2.test",
		Port:      465,
		FromEmail: "billing@orbit.test",
	})
	require.NoError(t, err)
	assert.True(t, view.HasPassword)

	server, err = svc.ResolveSMTP(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", server.Password)
	assert.Equal(t, "smtp2.test", server.Host)
}

func TestSaveSMTPValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveSMTP(ctx, settingsdomain.SMTPInput{Port: 587, FromEmail: "a@b.c"})
	assert.ErrorIs(t, err, settingsdomain.ErrInvalidHost)

	_, err = svc.SaveSMTP(ctx, settingsdomain.SMTPInput{Host: "smtp.test", Port: 0, FromEmail: "a@b.c"})
	assert.ErrorIs(t, err, settingsdomain.ErrInvalidPort)

	_, err = svc.SaveSMTP(ctx, settingsdomain.SMTPInput{Host: "smtp.test", Port: 587, FromEmail: "nope"})
	assert.ErrorIs(t, err, settingsdomain.ErrInvalidFromEmail)
}

func TestPayPalLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.PayPal(ctx)
	assert.ErrorIs(t, err, settingsdomain.ErrNotConfigured)
	_, err = svc.ResolvePayPalClientID(ctx)
	assert.ErrorIs(t, err, settingsdomain.ErrNotConfigured)

	view, err := svc.SavePayPal(ctx, settingsdomain.PayPalInput{
		ClientID:    "client-abc-123",
		Environment: settingsdomain.PayPalLive,
	})
	require.NoError(t, err)
	assert.True(t, view.Configured)
	assert.Equal(t, settingsdomain.PayPalLive, view.Environment)

	clientID, err := svc.ResolvePayPalClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "client-abc-123", clientID)

	_, err = svc.SavePayPal(ctx, settingsdomain.PayPalInput{ClientID: "x", Environment: "test"})
	assert.ErrorIs(t, err, settingsdomain.ErrInvalidEnvironment)
	_, err = svc.SavePayPal(ctx, settingsdomain.PayPalInput{Environment: settingsdomain.PayPalSandbox})
	assert.ErrorIs(t, err, settingsdomain.ErrInvalidClientID)
}
