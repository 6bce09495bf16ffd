package errors

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("invalid input")
	ErrUnauthorized     = errors.New("admin rights required")
	ErrUnknownPromoCode = errors.New("unknown promo code")
	ErrNotification     = errors.New("notification failed")
)
