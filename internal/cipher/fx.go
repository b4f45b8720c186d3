package cipher

import (
	"github.com/kyberbiz/kyberbiz/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewFromConfig builds the credential cipher from configuration. Production
// deployments must supply CREDENTIAL_KEY; development falls back to an
// ephemeral key so the app is usable out of the box.
func NewFromConfig(cfg config.Config, log *zap.Logger) (*CredentialCipher, error) {
	if cfg.CredentialKey != "" {
		return New(cfg.CredentialKey)
	}
	if cfg.IsProduction() {
		return nil, ErrInvalidKey
	}
	log.Warn("CREDENTIAL_KEY not set, using ephemeral key; stored credentials will not survive restarts")
	return NewEphemeral()
}

var Module = fx.Module("cipher",
	fx.Provide(NewFromConfig),
)
