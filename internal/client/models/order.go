package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine keeps the unit price that was charged at purchase time.
type OrderLine struct {
	ID       uint64          `json:"id"`
	OrderID  uint64          `json:"order_id"`
	ItemID   uint64          `json:"item_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Item     Item            `json:"item"`
}

// Order is immutable once created; it can only be deleted.
type Order struct {
	ID        uint64          `json:"id"`
	UserID    uint64          `json:"user_id"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	Items     []OrderLine     `json:"items"`
}
