// Package common defines shared constants and sentinel errors used across
// the admin console. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// API-level errors mapped from HTTP responses.
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnavailable     = errors.New("service unavailable")
	ErrInternal        = errors.New("internal error")

	// Auth errors (credential rejected by the server).
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Session lifecycle errors.
	ErrNoCredentials = errors.New("no stored credentials")
	ErrTokenExpired  = errors.New("token expired")
)
