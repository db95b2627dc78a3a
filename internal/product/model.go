package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock status filter values accepted by product listings.
const (
	StockAvailable = "available"
	StockSoldOut   = "soldout"
	StockLow       = "low"
)

// lowStockThreshold marks the upper bound of the "low" stock bucket.
const lowStockThreshold = 5

type Product struct {
	ID           uint
	Name         string
	Description  string
	Price        decimal.Decimal
	Stock        int
	Condition    string
	Brand        *string
	CategoryID   uint
	CategoryName string
	Image        *string
	CreatedAt    time.Time
}

// StockStatus buckets the current stock level using the same vocabulary the
// listing filter accepts.
func (p *Product) StockStatus() string {
	switch {
	case p.Stock == 0:
		return StockSoldOut
	case p.Stock <= lowStockThreshold:
		return StockLow
	default:
		return StockAvailable
	}
}

// Filter carries the catalog listing query parameters. Zero values mean
// "no constraint".
type Filter struct {
	Search      string
	CategoryID  uint
	Condition   string
	Brand       string
	StockStatus string
}

type CreateParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Condition   string
	Brand       *string
	CategoryID  uint
	Image       *string
}

type UpdateParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Condition   string
	Brand       *string
	CategoryID  uint
	Image       *string
}

type ListResult struct {
	Products   []*Product
	Total      int
	Page       int
	TotalPages int
}
