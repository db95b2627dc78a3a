package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category has existing products")
	ErrEmptyName        = errors.New("category name cannot be empty")
)
