package products

import "errors"

var (
	// ErrNotFound indicates a product does not exist.
	ErrNotFound = errors.New("product not found")
	// ErrInvalidInput indicates a caller-supplied value is unusable.
	ErrInvalidInput = errors.New("invalid input")
)
