package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound        = errors.New("entity not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrUnavailable     = errors.New("remote service unavailable")
	ErrStoreClosed     = errors.New("seen store closed")
)
