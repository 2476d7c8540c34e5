package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output. In tests,
// replace them with stubs.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Items(ctx context.Context, query string) error
	AddItem(ctx context.Context) error
	DeleteItem(ctx context.Context, id uint64) error

	AddToCart(ctx context.Context, id uint64) error
	RemoveFromCart(ctx context.Context, id uint64) error
	ShowCart(ctx context.Context) error
	Checkout(ctx context.Context, cartID *uint64) error

	Orders(ctx context.Context) error
	DeleteOrder(ctx context.Context, id uint64) error
	ClearOrders(ctx context.Context) error

	ToggleTheme(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: signup, login, items [query], theme, exit"
	helpLoggedIn  = "Available commands: items [query], additem, delitem <id>, add <id>, remove <id>, cart, checkout [cart_id], orders, delorder <id>, clearorders, theme, logout, exit"
)

// parseID reads a positive numeric id from args[0].
func parseID(args []string) (uint64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// runREPL starts a simple read-eval-print loop for the storefront CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Commands that act on the user's cart, orders
// or the catalog require a session. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// The REPL shares reader with the interactive prompts (credentials, item
// form, confirmations) so that buffered input is never split between two
// readers.
//
// Any errors returned by command handlers are ignored here; handlers report
// failures to the user themselves.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		printFn(promptFn())
		line, err := reader.ReadString('\n')
		if err != nil && (len(line) == 0 || !errors.Is(err, io.EOF)) {
			printlnFn()
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		if dispatch(ctx, a, cmd, args) {
			return
		}
		if err != nil {
			return
		}
	}
}

// dispatch runs one command and reports whether the REPL should stop.
func dispatch(ctx context.Context, a execIface, cmd string, args []string) bool {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return false

	case "exit", "quit":
		printlnFn("Bye!")
		return true

	case "signup":
		_ = a.Signup(ctx)
		return false

	case "login":
		_ = a.Login(ctx)
		return false

	case "items", "l":
		_ = a.Items(ctx, strings.Join(args, " "))
		return false

	case "theme":
		_ = a.ToggleTheme(ctx)
		return false
	}

	if !a.isLoggedIn() {
		switch cmd {
		case "logout", "additem", "delitem", "add", "remove", "cart", "checkout", "orders", "delorder", "clearorders":
			printlnFn("Please log in first")
		default:
			printlnFn("Unknown command:", cmd)
		}
		return false
	}

	switch cmd {
	case "logout":
		_ = a.Logout(ctx)

	case "additem":
		_ = a.AddItem(ctx)

	case "cart":
		_ = a.ShowCart(ctx)

	case "orders":
		_ = a.Orders(ctx)

	case "clearorders":
		_ = a.ClearOrders(ctx)

	case "checkout":
		if len(args) == 0 {
			_ = a.Checkout(ctx, nil)
			break
		}
		id, ok := parseID(args)
		if !ok {
			printlnFn("Usage: checkout [cart_id]")
			break
		}
		_ = a.Checkout(ctx, &id)

	case "delitem", "add", "remove", "delorder":
		id, ok := parseID(args)
		if !ok {
			printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
			break
		}
		switch cmd {
		case "delitem":
			_ = a.DeleteItem(ctx, id)
		case "add":
			_ = a.AddToCart(ctx, id)
		case "remove":
			_ = a.RemoveFromCart(ctx, id)
		case "delorder":
			_ = a.DeleteOrder(ctx, id)
		}

	default:
		printlnFn("Unknown command:", cmd)
	}
	return false
}
