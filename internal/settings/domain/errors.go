package domain

import "errors"

var (
	ErrNotConfigured      = errors.New("not_configured")
	ErrInvalidColor       = errors.New("invalid_color")
	ErrInvalidHost        = errors.New("invalid_host")
	ErrInvalidPort        = errors.New("invalid_port")
	ErrInvalidFromEmail   = errors.New("invalid_from_email")
	ErrInvalidEnvironment = errors.New("invalid_environment")
	ErrInvalidClientID    = errors.New("invalid_client_id")
)
