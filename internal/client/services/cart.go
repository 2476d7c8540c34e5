package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/shopspring/decimal"
)

// CartView holds the server cart of the logged-in user. A nil snapshot means
// unknown or empty; totals are derived from it on demand.
type CartView struct {
	busy

	client client.Client
	notify Notifier
	log    logging.Logger

	mu   sync.RWMutex
	cart *models.Cart
}

func NewCartView(c client.Client, n Notifier, log logging.Logger) *CartView {
	if n == nil {
		n = nopNotifier{}
	}
	if log == nil {
		log = logging.Discard()
	}
	return &CartView{client: c, notify: n, log: log}
}

func (v *CartView) Snapshot() *models.Cart {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.cart
}

func (v *CartView) Total() decimal.Decimal { return v.Snapshot().Total() }

func (v *CartView) Count() int { return v.Snapshot().Count() }

func (v *CartView) set(c *models.Cart) {
	v.mu.Lock()
	v.cart = c
	v.mu.Unlock()
}

// Refresh replaces the snapshot with the server's cart. Errors are logged and
// leave a nil snapshot.
func (v *CartView) Refresh(ctx context.Context) *models.Cart {
	cart, err := v.client.GetUserCart(ctx)
	if err != nil {
		v.log.Warn(ctx, "get cart failed", "error", err)
		cart = nil
	}
	v.set(cart)
	return cart
}

func (v *CartView) AddItem(ctx context.Context, itemID uint64) error {
	if !v.acquire() {
		return common.ErrBusy
	}
	defer v.release()

	if err := v.client.AddToCart(ctx, itemID); err != nil {
		v.notify.Error(ctx, errorMessage(err, "Failed to add item to cart"))
		return fmt.Errorf("add item %d to cart: %w", itemID, err)
	}

	v.notify.Success(ctx, "Added to cart")
	return nil
}

func (v *CartView) RemoveItem(ctx context.Context, itemID uint64) (*models.Cart, error) {
	if !v.acquire() {
		return v.Snapshot(), common.ErrBusy
	}
	defer v.release()

	if err := v.client.RemoveFromCart(ctx, itemID); err != nil {
		v.notify.Error(ctx, errorMessage(err, "Failed to remove item"))
		return v.Snapshot(), fmt.Errorf("remove item %d from cart: %w", itemID, err)
	}

	return v.Refresh(ctx), nil
}

// Checkout turns cartID, or the current cart when nil, into an order. The
// server empties the cart, so the snapshot is refreshed afterwards.
func (v *CartView) Checkout(ctx context.Context, cartID *uint64) (*models.Order, error) {
	if !v.acquire() {
		return nil, common.ErrBusy
	}
	defer v.release()

	order, err := v.client.CreateOrder(ctx, cartID)
	if err != nil {
		msg := errorMessage(err, "Checkout failed")
		if errors.Is(err, common.ErrEmptyCart) {
			msg = "Your cart is empty"
		}
		v.notify.Error(ctx, msg)
		return nil, fmt.Errorf("checkout: %w", err)
	}

	v.notify.Success(ctx, fmt.Sprintf("Order #%d placed", order.ID))
	v.Refresh(ctx)
	return order, nil
}
