package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/shopspring/decimal"
)

// Item is a purchasable catalog entry.
type Item struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url,omitempty"`
}

func (i Item) String() string {
	return fmt.Sprintf("#%d %s  $%s", i.ID, i.Name, i.Price.StringFixed(2))
}

// ItemDraft is raw form input for a new catalog item.
type ItemDraft struct {
	Name        string
	Price       string
	Description string
}

// NewItem is a validated ItemDraft. ImageData, when set, is a data URL
// embedding the picture.
type NewItem struct {
	Name        string
	Price       decimal.Decimal
	Description string
	ImageData   string
}

// Validate requires a non-empty name and a numeric price. It wraps
// common.ErrValidation on failure.
func (d ItemDraft) Validate() (NewItem, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return NewItem{}, fmt.Errorf("%w: name is required", common.ErrValidation)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(d.Price))
	if err != nil {
		return NewItem{}, fmt.Errorf("%w: price %q is not a number", common.ErrValidation, d.Price)
	}

	return NewItem{Name: name, Price: price, Description: strings.TrimSpace(d.Description)}, nil
}
