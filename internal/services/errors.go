package services

import "errors"

// All business errors here are recoverable: a rejected operation leaves the
// prior state untouched and the caller surfaces a message.
var (
	// ErrOutOfStock rejects adding a product with zero stock to an order.
	ErrOutOfStock = errors.New("product is out of stock")

	// ErrLineNotFound rejects a positive-quantity update for a product that
	// was never added to the order. Quantity updates are absolute sets and
	// never resurrect a removed line; this is treated as a hard caller error
	// everywhere, not a silent no-op.
	ErrLineNotFound = errors.New("order line not found")

	// ErrProductNotFound rejects operations on unknown catalog ids.
	ErrProductNotFound = errors.New("product not found")

	// ErrCartEmpty rejects checkout of an order with no lines.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrCategoryInUse rejects removing a category that products still reference.
	ErrCategoryInUse = errors.New("category still has products")

	// ErrCategoryNotFound rejects updates against an unknown category id.
	ErrCategoryNotFound = errors.New("category not found")
)
