package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
)

// notifier prints view-model messages inline with the REPL output.
type notifier struct {
	mu    sync.Mutex
	w     io.Writer
	theme string
}

func (n *notifier) setTheme(theme string) {
	n.mu.Lock()
	n.theme = theme
	n.mu.Unlock()
}

func (n *notifier) currentTheme() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.theme
}

func (n *notifier) Success(_ context.Context, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.w, paint(n.theme, colorGreen, "✓ "+msg))
}

func (n *notifier) Error(_ context.Context, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.w, paint(n.theme, colorRed, "✗ "+msg))
}

// confirmer asks on the same input stream the REPL reads from.
type confirmer struct {
	reader *bufio.Reader
	w      io.Writer
}

func (c *confirmer) Confirm(_ context.Context, prompt string) bool {
	return Confirm(c.reader, prompt, c.w)
}
