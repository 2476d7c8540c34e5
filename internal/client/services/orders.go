package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// OrderView holds the order history of the logged-in user.
type OrderView struct {
	busy

	client  client.Client
	notify  Notifier
	confirm Confirmer
	log     logging.Logger

	mu     sync.RWMutex
	orders []models.Order
}

func NewOrderView(c client.Client, n Notifier, cf Confirmer, log logging.Logger) *OrderView {
	if n == nil {
		n = nopNotifier{}
	}
	if cf == nil {
		cf = alwaysConfirm{}
	}
	if log == nil {
		log = logging.Discard()
	}
	return &OrderView{client: c, notify: n, confirm: cf, log: log}
}

func (v *OrderView) Orders() []models.Order {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.orders
}

// Refresh reloads the history; on failure the list becomes empty.
func (v *OrderView) Refresh(ctx context.Context) []models.Order {
	orders, err := v.client.ListUserOrders(ctx)
	if err != nil {
		v.log.Warn(ctx, "list orders failed", "error", err)
		orders = []models.Order{}
	}

	v.mu.Lock()
	v.orders = orders
	v.mu.Unlock()
	return orders
}

func (v *OrderView) Delete(ctx context.Context, orderID uint64) ([]models.Order, error) {
	return v.mutate(ctx, fmt.Sprintf("delete order %d", orderID),
		fmt.Sprintf("Delete order #%d?", orderID),
		func(ctx context.Context) error { return v.client.DeleteOrder(ctx, orderID) },
		"Order deleted", "Failed to delete order")
}

func (v *OrderView) ClearAll(ctx context.Context) ([]models.Order, error) {
	return v.mutate(ctx, "clear orders",
		"Delete all orders?",
		v.client.ClearUserOrders,
		"All orders cleared", "Failed to clear orders")
}

// mutate runs one confirmed destructive call followed by a refresh.
func (v *OrderView) mutate(ctx context.Context, op, prompt string, call func(context.Context) error, okMsg, failMsg string) ([]models.Order, error) {
	if !v.acquire() {
		return v.Orders(), common.ErrBusy
	}
	defer v.release()

	if !v.confirm.Confirm(ctx, prompt) {
		return v.Orders(), common.ErrCancelled
	}

	if err := call(ctx); err != nil {
		v.notify.Error(ctx, errorMessage(err, failMsg))
		return v.Orders(), fmt.Errorf("%s: %w", op, err)
	}

	v.notify.Success(ctx, okMsg)
	return v.Refresh(ctx), nil
}
