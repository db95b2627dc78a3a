package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartLine struct {
	UserID    uint
	ProductID uint
	Quantity  int
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Item is a cart line joined with the current catalog state. Price and
// stock are live values, not a snapshot.
type Item struct {
	ProductID   uint
	ProductName string
	Price       decimal.Decimal
	Stock       int
	Quantity    int
	Subtotal    decimal.Decimal
}

type CartView struct {
	Items []Item
	Total decimal.Decimal
}
