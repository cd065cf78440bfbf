package pos

import "errors"

// ErrNotFound indicates the referenced product or sale does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned when the provided value fails validation.
var ErrInvalidInput = errors.New("invalid input")

// ErrInsufficientStock is returned when a cart mutation would exceed the
// quantity currently on hand.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrEmptyCart is returned when a sale is processed against an empty cart.
var ErrEmptyCart = errors.New("cannot process sale with empty cart")
