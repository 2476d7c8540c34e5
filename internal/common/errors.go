// Package common defines the sentinel errors shared by the storefront client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Client-side validation, raised before any network call.
	ErrValidation = errors.New("validation error")

	// Server-reported conditions.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrEmptyCart    = errors.New("cart is empty")

	// Transport failure, timeout or 5xx.
	ErrUnavailable = errors.New("server unavailable")

	// Any other status or a body that could not be understood.
	ErrUnexpected = errors.New("unexpected response")

	// View-model flow control.
	ErrBusy        = errors.New("another operation is in progress")
	ErrCancelled   = errors.New("cancelled")
	ErrNotLoggedIn = errors.New("not logged in")
)
