package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/services"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

// Items refreshes the catalog and prints the entries matching query.
func (a *App) Items(ctx context.Context, query string) error {
	a.catalog.Refresh(ctx)
	fmt.Fprintln(a.out, renderItems(a.catalog.Visible(query)))
	return nil
}

// AddItem collects the form fields of a new catalog item. The image path is
// optional; the file is embedded into the request.
func (a *App) AddItem(ctx context.Context) error {
	var (
		draft models.ItemDraft
		err   error
	)

	if draft.Name, err = getSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if draft.Price, err = getSimpleText(a.reader, "Price", a.out); err != nil {
		return err
	}
	if draft.Description, err = GetMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	path, err := getSimpleText(a.reader, "Image file (optional)", a.out)
	if err != nil {
		return err
	}

	var image []byte
	if path != "" {
		image, err = readFile(path)
		if err != nil {
			a.notifier.Error(ctx, fmt.Sprintf("Cannot read image: %v", err))
			return err
		}
	}

	item, err := a.catalog.Create(ctx, draft, image)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, item.String())
	return nil
}

func (a *App) DeleteItem(ctx context.Context, id uint64) error {
	return a.catalog.Delete(ctx, id)
}

func (a *App) AddToCart(ctx context.Context, id uint64) error {
	return a.cart.AddItem(ctx, id)
}

func (a *App) RemoveFromCart(ctx context.Context, id uint64) error {
	cart, err := a.cart.RemoveItem(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderCart(cart))
	return nil
}

func (a *App) ShowCart(ctx context.Context) error {
	fmt.Fprintln(a.out, renderCart(a.cart.Refresh(ctx)))
	return nil
}

// Checkout places an order for cartID, or for the current cart when nil.
func (a *App) Checkout(ctx context.Context, cartID *uint64) error {
	order, err := a.cart.Checkout(ctx, cartID)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderOrder(*order))
	return nil
}

func (a *App) Orders(ctx context.Context) error {
	fmt.Fprintln(a.out, renderOrders(a.orders.Refresh(ctx)))
	return nil
}

func (a *App) DeleteOrder(ctx context.Context, id uint64) error {
	orders, err := a.orders.Delete(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderOrders(orders))
	return nil
}

func (a *App) ClearOrders(ctx context.Context) error {
	_, err := a.orders.ClearAll(ctx)
	return err
}

// ToggleTheme switches between the light and the dark palette.
func (a *App) ToggleTheme(ctx context.Context) error {
	theme, err := a.prefs.ToggleTheme(ctx)
	if err != nil {
		a.notifier.Error(ctx, "Failed to save theme")
		return err
	}
	a.notifier.setTheme(string(theme))
	a.notifier.Success(ctx, fmt.Sprintf("Theme: %s", theme))
	return nil
}

// loadTheme applies the saved theme at startup.
func (a *App) loadTheme(ctx context.Context) {
	theme, err := a.prefs.Theme(ctx)
	if err != nil {
		a.log.Warn(ctx, "load theme", "error", err)
		theme = services.ThemeLight
	}
	a.notifier.setTheme(string(theme))
}
