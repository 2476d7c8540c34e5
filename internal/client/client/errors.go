package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/tidwall/gjson"
)

// APIError is a failed API call.
type APIError struct {
	// Status is the HTTP status, 0 for transport failures.
	Status int
	// Message is the server's {"error": "..."} text, if any.
	Message string
	// Err is the matching sentinel from package common.
	Err error
	// Cause is the underlying transport or decoding error, if any.
	Cause error
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Status != 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": " + e.Cause.Error())
	}
	return b.String()
}

func (e *APIError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// ServerMessage returns the server-provided error text carried by err, or "".
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

func transportError(cause error) *APIError {
	return &APIError{Err: common.ErrUnavailable, Cause: cause}
}

// statusError maps an error response to an *APIError. The server reports
// several distinct conditions as plain 400s, so the message decides those.
func statusError(status int, body []byte) *APIError {
	msg := strings.TrimSpace(gjson.GetBytes(body, "error").String())
	e := &APIError{Status: status, Message: msg}

	switch {
	case status == http.StatusBadRequest:
		lower := strings.ToLower(msg)
		switch {
		case strings.Contains(lower, "cart is empty"):
			e.Err = common.ErrEmptyCart
		case strings.Contains(lower, "already exists"):
			e.Err = common.ErrConflict
		default:
			e.Err = common.ErrValidation
		}
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		e.Err = common.ErrUnauthorized
	case status == http.StatusNotFound:
		e.Err = common.ErrNotFound
	case status == http.StatusConflict:
		e.Err = common.ErrConflict
	case status == http.StatusTooManyRequests, status >= 500:
		e.Err = common.ErrUnavailable
	default:
		e.Err = common.ErrUnexpected
	}
	return e
}
