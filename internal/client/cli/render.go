package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/services"
)

const (
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

// paint colors s for the dark theme; the light theme stays plain.
func paint(theme, color, s string) string {
	if theme != string(services.ThemeDark) {
		return s
	}
	return color + s + colorReset
}

func renderItems(items []models.Item) string {
	if len(items) == 0 {
		return "No items found"
	}

	var b strings.Builder
	for _, it := range items {
		b.WriteString(it.String())
		if it.Description != "" {
			fmt.Fprintf(&b, "\n    %s", it.Description)
		}
		if it.ImageURL != "" {
			fmt.Fprintf(&b, "\n    image: %s", it.ImageURL)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCart(c *models.Cart) string {
	if c.IsEmpty() {
		return "Your cart is empty"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Cart #%d\n", c.ID)
	for _, l := range c.Items {
		fmt.Fprintf(&b, "  #%d %s x%d  $%s\n", l.ItemID, l.Item.Name, l.Quantity, l.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: $%s (%d items)", c.Total().StringFixed(2), c.Count())
	return b.String()
}

func renderOrder(o models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order #%d", o.ID)
	if !o.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "  %s", o.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(&b, "  $%s", o.Total.StringFixed(2))
	for _, l := range o.Items {
		fmt.Fprintf(&b, "\n  #%d %s x%d  $%s", l.ItemID, l.Item.Name, l.Quantity, l.Price.StringFixed(2))
	}
	return b.String()
}

func renderOrders(orders []models.Order) string {
	if len(orders) == 0 {
		return "No orders yet"
	}
	parts := make([]string, len(orders))
	for i, o := range orders {
		parts[i] = renderOrder(o)
	}
	return strings.Join(parts, "\n")
}
