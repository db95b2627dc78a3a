package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusDeclined  Status = "Declined"
)

// StatusProcessing is a derived listing bucket (Pending + Approved), never
// stored on an order row.
const StatusProcessing = "Processing"

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusShipped, StatusDelivered, StatusDeclined:
		return true
	}
	return false
}

// PaymentMethodOnline is the payment method that requires a proof upload.
const PaymentMethodOnline = "Online Payment"

type Order struct {
	ID            uint
	UserID        uint
	CustomerName  string
	PaymentMethod string
	PaymentProof  *string
	Status        Status
	DeclineReason *string
	CreatedAt     time.Time
	Lines         []Line
}

// Line snapshots quantity and unit price at purchase time. It never changes
// after checkout, so historical totals survive later price edits.
type Line struct {
	OrderID     uint
	ProductID   uint
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// Total folds over the lines. There is no stored total column anywhere.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// CheckoutInput is everything the checkout transaction needs.
type CheckoutInput struct {
	UserID        uint
	PaymentMethod string
	PaymentProof  *string

	// SelectedIDs restricts checkout to these cart lines.
	SelectedIDs []uint

	// Overrides maps product id to an effective quantity replacing the
	// cart's stored quantity for that line.
	Overrides map[uint]int
}

// StatusCounts backs the per-bucket tabs on the customer order page.
type StatusCounts struct {
	Processing int
	Shipped    int
	Delivered  int
	Declined   int
}

type ListResult struct {
	Orders     []*Order
	Counts     StatusCounts
	Page       int
	TotalPages int
}

// AdminFilter carries the admin order listing query parameters.
type AdminFilter struct {
	Search string
	Status string
}
