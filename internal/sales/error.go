package sales

import "errors"

var ErrInvalidGranularity = errors.New("invalid report granularity")
