package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

const (
	msgItemsLoadFailed = "Failed to load items"
	msgInvalidItem     = "Please provide valid name and price"
)

// Catalog holds the item list shown in the store.
type Catalog struct {
	busy

	client  client.Client
	notify  Notifier
	confirm Confirmer
	log     logging.Logger

	mu    sync.RWMutex
	items []models.Item
}

func NewCatalog(c client.Client, n Notifier, cf Confirmer, log logging.Logger) *Catalog {
	if n == nil {
		n = nopNotifier{}
	}
	if cf == nil {
		cf = alwaysConfirm{}
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Catalog{client: c, notify: n, confirm: cf, log: log}
}

// Items returns the current snapshot.
func (c *Catalog) Items() []models.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}

// Refresh reloads the list. On failure the previous list is kept.
func (c *Catalog) Refresh(ctx context.Context) []models.Item {
	items, err := c.client.ListItems(ctx)
	if err != nil {
		c.log.Warn(ctx, "list items failed", "error", err)
		c.notify.Error(ctx, msgItemsLoadFailed)
		return c.Items()
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return items
}

// Visible is the current snapshot narrowed by query.
func (c *Catalog) Visible(query string) []models.Item {
	return Filter(c.Items(), query)
}

// Create validates draft before touching the network. image may be empty.
func (c *Catalog) Create(ctx context.Context, draft models.ItemDraft, image []byte) (*models.Item, error) {
	item, err := draft.Validate()
	if err != nil {
		c.notify.Error(ctx, msgInvalidItem)
		return nil, err
	}
	item.ImageData = client.EncodeDataURL(image)

	if !c.acquire() {
		return nil, common.ErrBusy
	}
	defer c.release()

	created, err := c.client.CreateItem(ctx, item)
	if err != nil {
		c.notify.Error(ctx, errorMessage(err, "Failed to create item"))
		return nil, fmt.Errorf("create item: %w", err)
	}

	c.notify.Success(ctx, fmt.Sprintf("Item %q created", created.Name))
	c.Refresh(ctx)
	return created, nil
}

func (c *Catalog) Delete(ctx context.Context, itemID uint64) error {
	if !c.acquire() {
		return common.ErrBusy
	}
	defer c.release()

	if !c.confirm.Confirm(ctx, fmt.Sprintf("Delete item #%d?", itemID)) {
		return common.ErrCancelled
	}

	if err := c.client.DeleteItem(ctx, itemID); err != nil {
		c.notify.Error(ctx, errorMessage(err, "Failed to delete item"))
		return fmt.Errorf("delete item %d: %w", itemID, err)
	}

	c.notify.Success(ctx, "Item deleted")
	c.Refresh(ctx)
	return nil
}

// Filter keeps the items whose name or description contains query, ignoring
// case. An empty query returns items as is.
func Filter(items []models.Item, query string) []models.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	out := make([]models.Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(it.Description), q) {
			out = append(out, it)
		}
	}
	return out
}
