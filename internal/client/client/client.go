package client

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// Client is the storefront API as seen by the view-models.
type Client interface {
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (models.Session, error)
	Logout(ctx context.Context) error

	ListItems(ctx context.Context) ([]models.Item, error)
	CreateItem(ctx context.Context, item models.NewItem) (*models.Item, error)
	DeleteItem(ctx context.Context, itemID uint64) error

	AddToCart(ctx context.Context, itemID uint64) error
	RemoveFromCart(ctx context.Context, itemID uint64) error
	GetUserCart(ctx context.Context) (*models.Cart, error)

	// CreateOrder checks out cartID, or the user's current cart when nil.
	CreateOrder(ctx context.Context, cartID *uint64) (*models.Order, error)
	ListUserOrders(ctx context.Context) ([]models.Order, error)
	DeleteOrder(ctx context.Context, orderID uint64) error
	ClearUserOrders(ctx context.Context) error

	Ping(ctx context.Context) error
}

// TokenSource supplies the bearer token for outbound requests. An empty
// token means the request is sent without an Authorization header.
type TokenSource interface {
	Token() string
}
