package service

import "errors"

var (
	// ErrInvalidPrice rejects negative base or choice prices. Pricing never
	// clamps to zero; the whole call fails.
	ErrInvalidPrice = errors.New("price must not be negative")

	// ErrInsufficientPayment means cash tendered is below the cart total.
	// The caller is expected to re-prompt for payment.
	ErrInsufficientPayment = errors.New("amount tendered is below the total")

	ErrCartNotFound = errors.New("cart not found")
	ErrLineNotFound = errors.New("cart line not found")

	// ErrEmptyReceipt is the single fatal normalization case: the payload
	// carries neither products nor totals, so there is nothing to show.
	ErrEmptyReceipt = errors.New("payload has no products and no totals")
)
