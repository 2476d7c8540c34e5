package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if sess := a.session.Current(); sess.Valid() {
		s = "user " + sess.UserID + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) prompt() string {
	p := "shop"
	if n := a.cart.Count(); n > 0 && a.isLoggedIn() {
		p = fmt.Sprintf("shop [cart:%d]", n)
	}
	if st := a.getStatus(); st != "" {
		p = p + " " + st
	}
	return paint(a.notifier.currentTheme(), colorCyan, p) + "> "
}

// Root restores the session, prompts for login if there is none, starts the
// connectivity watcher and serves the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to the storefront CLI (type 'help' for commands)")

	a.loadTheme(ctx)
	if err := a.session.Load(ctx); err != nil {
		a.log.Warn(ctx, "restore session", "error", err)
	}

	if a.isLoggedIn() {
		a.cart.Refresh(ctx)
	} else {
		_ = a.Login(ctx)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.prompt, a.reader)
}
