package usecase

import "errors"

var (
	ErrEmptyURL           = errors.New("empty URL")
	ErrInvalidURL         = errors.New("invalid URL")
	ErrInvalidAlias       = errors.New("invalid custom alias")
	ErrAliasTaken         = errors.New("custom alias already taken")
	ErrCodeSpaceExhausted = errors.New("code space exhausted")
	ErrLinkNotFound       = errors.New("link not found")
	ErrServiceUnavailable = errors.New("service unavailable")
)
