package domain

import "errors"

var (
	ErrNotFound          = errors.New("not_found")
	ErrInvalidClientName = errors.New("invalid_client_name")
	ErrInvalidItem       = errors.New("invalid_item")
	ErrAlreadyPaid       = errors.New("already_paid")
	ErrNoRecipient       = errors.New("no_recipient")
)
