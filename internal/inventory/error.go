package inventory

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidChangeType = errors.New("invalid change type")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrTxConflict        = errors.New("transaction conflict, please retry")
)
