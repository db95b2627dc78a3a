package product

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductReferenced = errors.New("product is linked to other records")
	ErrInvalidProduct    = errors.New("invalid product")
)
