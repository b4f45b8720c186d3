package domain

import "errors"

var (
	ErrNotFound          = errors.New("not_found")
	ErrInvalidClientName = errors.New("invalid_client_name")
	ErrInvalidItem       = errors.New("invalid_item")
	ErrAlreadyConverted  = errors.New("already_converted")
	ErrNoRecipient       = errors.New("no_recipient")
)
