package inventory

import "time"

// ChangeType selects how a manual adjustment moves the stock counter.
type ChangeType string

const (
	// ChangeAdd increases stock by the quantity.
	ChangeAdd ChangeType = "ADD"
	// ChangeRemove decreases stock by the quantity, clamped at zero.
	ChangeRemove ChangeType = "REMOVE"
	// ChangeAdjust replaces stock with the quantity as the new absolute value.
	ChangeAdjust ChangeType = "ADJUST"
)

func (c ChangeType) Valid() bool {
	switch c {
	case ChangeAdd, ChangeRemove, ChangeAdjust:
		return true
	}
	return false
}

// LogEntry is one append-only row of the stock audit trail. Quantity is the
// quantity as requested, not the applied delta, so a clamped REMOVE still
// records what the operator asked for.
type LogEntry struct {
	ID            uint
	ProductID     uint
	ProductName   string
	ChangeType    ChangeType
	Quantity      int
	PreviousStock int
	NewStock      int
	Remarks       string
	CreatedAt     time.Time
}

// AdjustInput carries one manual stock adjustment.
type AdjustInput struct {
	ProductID  uint
	ChangeType ChangeType
	Quantity   int
	Remarks    string
}
