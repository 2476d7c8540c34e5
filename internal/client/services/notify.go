// Package services contains the application services of the storefront
// client: the session store, UI preferences and the catalog, cart and order
// view-models the CLI renders.
//
// View-models own a snapshot of server state and replace it wholesale after
// every mutation. Failures reach the user through a Notifier; the returned
// errors are for callers that care (tests, scripts).
package services

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/client"
)

// Notifier shows transient messages to the user.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// Confirmer asks the user to approve a destructive operation.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type nopNotifier struct{}

func (nopNotifier) Success(context.Context, string) {}
func (nopNotifier) Error(context.Context, string)   {}

type alwaysConfirm struct{}

func (alwaysConfirm) Confirm(context.Context, string) bool { return true }

// errorMessage prefers the server's own message over fallback.
func errorMessage(err error, fallback string) string {
	if msg := client.ServerMessage(err); msg != "" {
		return msg
	}
	return fallback
}
