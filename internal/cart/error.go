package cart

import "errors"

var (
	ErrLineNotFound = errors.New("no matching cart item found")
)
