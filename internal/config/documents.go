package config

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// DocumentProfile captures the deployment-specific rendering knobs: page
// size, how logo URLs are exposed on public endpoints, and the fallback
// theme used for unknown theme ids.
type DocumentProfile struct {
	// PageSize is "letter" or "a4".
	PageSize string `mapstructure:"pageSize"`
	// PublicLogoPrefix is prepended to relative logo URLs served on
	// unauthenticated endpoints (e.g. "/public").
	PublicLogoPrefix string `mapstructure:"publicLogoPrefix"`
	// DefaultTheme is the theme applied when a request names no theme or
	// an unknown one.
	DefaultTheme string `mapstructure:"defaultTheme"`
}

func DefaultDocumentProfile() DocumentProfile {
	return DocumentProfile{
		PageSize:         "letter",
		PublicLogoPrefix: "/public",
		DefaultTheme:     "professional",
	}
}

// DocumentProfileHolder serves the current profile and hot-reloads it when
// the backing file changes.
type DocumentProfileHolder struct {
	current atomic.Value // holds DocumentProfile
}

func NewDocumentProfileHolder() (*DocumentProfileHolder, error) {
	v := viper.New()

	v.SetConfigName("documents")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/kyberbiz")
	v.AddConfigPath(".")

	v.SetEnvPrefix("KYBERBIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultDocumentProfile()
	v.SetDefault("documents.pageSize", defaults.PageSize)
	v.SetDefault("documents.publicLogoPrefix", defaults.PublicLogoPrefix)
	v.SetDefault("documents.defaultTheme", defaults.DefaultTheme)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var profile DocumentProfile
	if err := v.UnmarshalKey("documents", &profile); err != nil {
		return nil, err
	}
	if err := validateDocumentProfile(profile); err != nil {
		return nil, err
	}

	holder := &DocumentProfileHolder{}
	holder.current.Store(profile)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		log := zap.L().Named("config.documents")
		var updated DocumentProfile
		if err := v.UnmarshalKey("documents", &updated); err != nil {
			log.Error("document profile reload failed", zap.Error(err))
			return
		}
		if err := validateDocumentProfile(updated); err != nil {
			log.Warn("invalid document profile ignored", zap.Error(err))
			return
		}
		holder.current.Store(updated)
		log.Info("document profile reloaded", zap.String("file", e.Name))
	})

	return holder, nil
}

func (h *DocumentProfileHolder) Get() DocumentProfile {
	return h.current.Load().(DocumentProfile)
}

func validateDocumentProfile(profile DocumentProfile) error {
	switch strings.ToLower(profile.PageSize) {
	case "letter", "a4":
	default:
		return errors.New("documents.pageSize must be letter or a4")
	}
	if strings.TrimSpace(profile.DefaultTheme) == "" {
		return errors.New("documents.defaultTheme cannot be empty")
	}
	return nil
}
