// Package models defines the client-side snapshots of server-owned storefront
// state: items, carts, orders and the auth session.
//
// Snapshots are read-only copies. The client never patches them in place; a
// fresh fetch replaces them wholesale after every mutation.
package models
