// Package cli provides the interactive storefront command-line client.
//
// It wires configuration, the local state store, the API client and the
// view-models from services into a REPL. Typical flow: restore the saved
// session (or prompt for credentials), start a background connectivity
// watcher, and execute shop commands until the user exits.
//
// Commands:
//   - signup / login / logout
//   - items [query], additem, delitem <id>
//   - add <id>, remove <id>, cart, checkout [cart_id]
//   - orders, delorder <id>, clearorders
//   - theme
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
