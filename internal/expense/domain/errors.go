package domain

import "errors"

var (
	ErrNotFound           = errors.New("not_found")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidAmount      = errors.New("invalid_amount")
	ErrInvalidName        = errors.New("invalid_name")
	ErrUnknownCategory    = errors.New("unknown_category")
	ErrUnknownVendor      = errors.New("unknown_vendor")
	ErrInUse              = errors.New("in_use")
	ErrDuplicateName      = errors.New("duplicate_name")
)
