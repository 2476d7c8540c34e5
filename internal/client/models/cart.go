package models

import "github.com/shopspring/decimal"

// CartLine is one item of a cart. The server keeps lines unique by ItemID.
type CartLine struct {
	ID       uint64 `json:"id"`
	CartID   uint64 `json:"cart_id"`
	ItemID   uint64 `json:"item_id"`
	Quantity int    `json:"quantity"`
	Item     Item   `json:"item"`
}

// Subtotal is price × quantity for the line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the server-side cart of the current user. A nil *Cart means no cart
// (or an unknown one after a failed refresh) and behaves as empty.
type Cart struct {
	ID     uint64     `json:"id"`
	UserID uint64     `json:"user_id"`
	Items  []CartLine `json:"items"`
}

// Total is recomputed from the lines on every call.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	if c == nil {
		return total
	}
	for _, l := range c.Items {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, l := range c.Items {
		n += l.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// Contains reports whether some line holds itemID.
func (c *Cart) Contains(itemID uint64) bool {
	if c == nil {
		return false
	}
	for _, l := range c.Items {
		if l.ItemID == itemID {
			return true
		}
	}
	return false
}
