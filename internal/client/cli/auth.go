package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// readCredentials prompts for a username and a password.
func (a *App) readCredentials() (string, string, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", "", err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", "", err
	}
	return userName, string(password), nil
}

// authFailure renders a login/signup error for the user.
func authFailure(err error, fallback string) string {
	switch {
	case errors.Is(err, common.ErrValidation):
		return "Username and password are required"
	case errors.Is(err, common.ErrUnavailable):
		return "Server unavailable, try again later"
	}
	if msg := client.ServerMessage(err); msg != "" {
		return msg
	}
	return fallback
}

// Signup creates an account. It does not log the user in.
func (a *App) Signup(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}

	if err := a.session.Signup(ctx, userName, password); err != nil {
		if errors.Is(err, common.ErrConflict) {
			a.notifier.Error(ctx, "Username already exists")
		} else {
			a.notifier.Error(ctx, authFailure(err, "Signup failed"))
		}
		return err
	}

	a.notifier.Success(ctx, "Account created, you can log in now")
	return nil
}

// Login prompts for credentials and starts a session. On success the cart
// and order history are loaded so the prompt reflects the new user.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}

	sess, err := a.session.Login(ctx, userName, password)
	if err != nil {
		a.notifier.Error(ctx, authFailure(err, "Login failed"))
		return err
	}

	a.notifier.Success(ctx, fmt.Sprintf("Logged in as user %s", sess.UserID))
	a.cart.Refresh(ctx)
	return nil
}

// Logout always succeeds locally, even when the server cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrNotLoggedIn
	}
	a.session.Logout(ctx)
	a.notifier.Success(ctx, "Logged out")
	return nil
}
