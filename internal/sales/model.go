package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Granularity selects the report bucket size.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

func (g Granularity) Valid() bool {
	switch g {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return true
	}
	return false
}

// truncUnit maps a granularity onto the date_trunc field. Weeks start on
// Monday.
func (g Granularity) truncUnit() string {
	switch g {
	case GranularityWeekly:
		return "week"
	case GranularityMonthly:
		return "month"
	default:
		return "day"
	}
}

// Bucket is one aggregated period as it comes out of storage. Start is the
// truncated period start (midnight of the day, the Monday of the week, or the
// first of the month).
type Bucket struct {
	Start       time.Time
	TotalOrders int
	TotalSales  decimal.Decimal
}

// Row is a renderer-facing report line with the period already formatted for
// display.
type Row struct {
	Period      string
	TotalOrders int
	TotalSales  decimal.Decimal
}

// Renderer turns report rows into a downloadable document.
type Renderer interface {
	Render(rows []Row) ([]byte, error)
}
