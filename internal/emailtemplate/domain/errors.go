package domain

import "errors"

var (
	ErrNotFound       = errors.New("not_found")
	ErrBuiltin        = errors.New("builtin_template")
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidSubject = errors.New("invalid_subject")
	ErrInvalidBody    = errors.New("invalid_body")
	ErrInvalidTheme   = errors.New("invalid_theme")
)
