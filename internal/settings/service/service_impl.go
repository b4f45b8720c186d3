package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/kyberbiz/kyberbiz/internal/cipher"
	"github.com/kyberbiz/kyberbiz/internal/config"
	"github.com/kyberbiz/kyberbiz/internal/document"
	"github.com/kyberbiz/kyberbiz/internal/mailer"
	settingsdomain "github.com/kyberbiz/kyberbiz/internal/settings/domain"
)

type ServiceParam struct {
	fx.In

	Repository settingsdomain.Repository
	Cipher     *cipher.CredentialCipher
	Profile    *config.DocumentProfileHolder
	Logger     *zap.Logger
}

type service struct {
	repo    settingsdomain.Repository
	cipher  *cipher.CredentialCipher
	profile *config.DocumentProfileHolder
	log     *zap.Logger
}

func NewService(p ServiceParam) settingsdomain.Service {
	return &service{
		repo:    p.Repository,
		cipher:  p.Cipher,
		profile: p.Profile,
		log:     p.Logger.Named("settings.service"),
	}
}

func (s *service) Branding(ctx context.Context) (*settingsdomain.BrandingProfile, error) {
	stored, err := s.repo.GetBranding(ctx)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		defaults := settingsdomain.DefaultBranding()
		return &defaults, nil
	}
	return stored, nil
}

func (s *service) SaveBranding(ctx context.Context, input settingsdomain.BrandingInput) (*settingsdomain.BrandingProfile, error) {
	for _, color := range []string{input.PrimaryColor, input.SecondaryColor, input.AccentColor} {
		if color == "" {
			continue
		}
		if _, err := document.ParseHexColor(color); err != nil {
			return nil, fmt.Errorf("%w: %q", settingsdomain.ErrInvalidColor, color)
		}
	}

	defaults := settingsdomain.DefaultBranding()
	profile := settingsdomain.BrandingProfile{
		CompanyName:    strings.TrimSpace(input.CompanyName),
		Tagline:        input.Tagline,
		LogoURL:        input.LogoURL,
		PrimaryColor:   input.PrimaryColor,
		SecondaryColor: input.SecondaryColor,
		AccentColor:    input.AccentColor,
		Address:        input.Address,
		Phone:          input.Phone,
		Email:          input.Email,
		Website:        input.Website,
		UpdatedAt:      time.Now().UTC(),
	}
	if profile.CompanyName == "" {
		profile.CompanyName = defaults.CompanyName
	}
	if profile.PrimaryColor == "" {
		profile.PrimaryColor = defaults.PrimaryColor
	}
	if profile.SecondaryColor == "" {
		profile.SecondaryColor = defaults.SecondaryColor
	}
	if profile.AccentColor == "" {
		profile.AccentColor = defaults.AccentColor
	}

	if err := s.repo.SaveBranding(ctx, &profile); err != nil {
		return nil, err
	}
	s.log.Info("branding saved", zap.String("company_name", profile.CompanyName))
	return &profile, nil
}

func (s *service) PublicBranding(ctx context.Context) (*settingsdomain.BrandingProfile, error) {
	profile, err := s.Branding(ctx)
	if err != nil {
		return nil, err
	}
	public := *profile
	public.LogoURL = s.publicLogoURL(public.LogoURL)
	return &public, nil
}

// publicLogoURL prefixes relative logo paths so unauthenticated clients can
// fetch them; absolute URLs pass through untouched.
func (s *service) publicLogoURL(logoURL string) string {
	if logoURL == "" || strings.Contains(logoURL, "://") {
		return logoURL
	}
	prefix := strings.TrimSuffix(s.profile.Get().PublicLogoPrefix, "/")
	return prefix + "/" + strings.TrimPrefix(logoURL, "/")
}

func (s *service) SMTP(ctx context.Context) (*settingsdomain.SMTPView, error) {
	stored, err := s.repo.GetSMTP(ctx)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, settingsdomain.ErrNotConfigured
	}
	return smtpView(stored), nil
}

func (s *service) SaveSMTP(ctx context.Context, input settingsdomain.SMTPInput) (*settingsdomain.SMTPView, error) {
	if strings.TrimSpace(input.Host) == "" {
		return nil, settingsdomain.ErrInvalidHost
	}
	if input.Port < 1 || input.Port > 65535 {
		return nil, settingsdomain.ErrInvalidPort
	}
	if !strings.Contains(input.FromEmail, "@") {
		return nil, settingsdomain.ErrInvalidFromEmail
	}

	settings := settingsdomain.SMTPSettings{
		Host:      strings.TrimSpace(input.Host),
		Port:      input.Port,
		Username:  input.Username,
		FromEmail: input.FromEmail,
		FromName:  input.FromName,
		UpdatedAt: time.Now().UTC(),
	}

	if input.Password != "" {
		ciphertext, err := s.cipher.Encrypt(input.Password)
		if err != nil {
			return nil, fmt.Errorf("encrypt smtp password: %w", err)
		}
		settings.PasswordCiphertext = ciphertext
	} else if existing, err := s.repo.GetSMTP(ctx); err != nil {
		return nil, err
	} else if existing != nil {
		// Empty password in the payload keeps the stored one.
		settings.PasswordCiphertext = existing.PasswordCiphertext
	}

	if err := s.repo.SaveSMTP(ctx, &settings); err != nil {
		return nil, err
	}
	s.log.Info("smtp settings saved", zap.String("host", settings.Host), zap.Int("port", settings.Port))
	return smtpView(&settings), nil
}

func (s *service) ResolveSMTP(ctx context.Context) (mailer.Server, error) {
	stored, err := s.repo.GetSMTP(ctx)
	if err != nil {
		return mailer.Server{}, err
	}
	if stored == nil {
		return mailer.Server{}, settingsdomain.ErrNotConfigured
	}

	password := ""
	if stored.PasswordCiphertext != "" {
		password, err = s.cipher.Decrypt(stored.PasswordCiphertext)
		if err != nil {
			return mailer.Server{}, fmt.Errorf("decrypt smtp password: %w", err)
		}
	}

	return mailer.Server{
		Host:      stored.Host,
		Port:      stored.Port,
		Username:  stored.Username,
		Password:  password,
		FromEmail: stored.FromEmail,
		FromName:  stored.FromName,
	}, nil
}

func (s *service) PayPal(ctx context.Context) (*settingsdomain.PayPalView, error) {
	stored, err := s.repo.GetPayPal(ctx)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, settingsdomain.ErrNotConfigured
	}
	return paypalView(stored), nil
}

func (s *service) SavePayPal(ctx context.Context, input settingsdomain.PayPalInput) (*settingsdomain.PayPalView, error) {
	if strings.TrimSpace(input.ClientID) == "" {
		return nil, settingsdomain.ErrInvalidClientID
	}
	switch input.Environment {
	case settingsdomain.PayPalSandbox, settingsdomain.PayPalLive:
	default:
		return nil, settingsdomain.ErrInvalidEnvironment
	}

	ciphertext, err := s.cipher.Encrypt(strings.TrimSpace(input.ClientID))
	if err != nil {
		return nil, fmt.Errorf("encrypt paypal client id: %w", err)
	}

	settings := settingsdomain.PayPalSettings{
		ClientIDCiphertext: ciphertext,
		Environment:        input.Environment,
		UpdatedAt:          time.Now().UTC(),
	}
	if err := s.repo.SavePayPal(ctx, &settings); err != nil {
		return nil, err
	}
	s.log.Info("paypal settings saved", zap.String("environment", settings.Environment))
	return paypalView(&settings), nil
}

func (s *service) ResolvePayPalClientID(ctx context.Context) (string, error) {
	stored, err := s.repo.GetPayPal(ctx)
	if err != nil {
		return "", err
	}
	if stored == nil || stored.ClientIDCiphertext == "" {
		return "", settingsdomain.ErrNotConfigured
	}
	clientID, err := s.cipher.Decrypt(stored.ClientIDCiphertext)
	if err != nil {
		return "", fmt.Errorf("decrypt paypal client id: %w", err)
	}
	return clientID, nil
}

func smtpView(settings *settingsdomain.SMTPSettings) *settingsdomain.SMTPView {
	return &settingsdomain.SMTPView{
		Host:        settings.Host,
		Port:        settings.Port,
		Username:    settings.Username,
		FromEmail:   settings.FromEmail,
		FromName:    settings.FromName,
		HasPassword: settings.PasswordCiphertext != "",
		UpdatedAt:   settings.UpdatedAt,
	}
}

func paypalView(settings *settingsdomain.PayPalSettings) *settingsdomain.PayPalView {
	return &settingsdomain.PayPalView{
		Environment: settings.Environment,
		Configured:  settings.ClientIDCiphertext != "",
		UpdatedAt:   settings.UpdatedAt,
	}
}
