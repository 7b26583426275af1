package utils

import (
	"errors"
	"fmt"
)

// Validation failures surface to callers as 4xx and are never retried.
var (
	ErrInvalidCoupon      = errors.New("invalid or inactive coupon")
	ErrCouponExpired      = errors.New("coupon has expired")
	ErrCouponBelowMinimum = errors.New("cart total is below the coupon minimum")
	ErrCouponExists       = errors.New("coupon code already exists")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrProductNotFound    = errors.New("product not found")
)

// Trust/integrity failures are rejected outright and logged, never corrected.
var (
	ErrSignatureMismatch   = errors.New("payment signature verification failed")
	ErrShipmentNotCreated  = errors.New("shipment has not been created for this order")
	ErrAwbAlreadyGenerated = errors.New("AWB has already been generated for this order")
	ErrAwbNotGenerated     = errors.New("AWB has not been generated for this order")
)

// ErrShippingUnavailable signals the aggregator rejected us even after a
// token refresh; the caller must not retry further.
var ErrShippingUnavailable = errors.New("shipping service unavailable")

// StockError carries the product context for an insufficient-stock failure.
type StockError struct {
	ProductID uint
	Name      string
	Available int
	Requested int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("product '%s' does not have enough stock: available %d, requested %d",
		e.Name, e.Available, e.Requested)
}

func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}

// MissingProductError identifies the order line whose product no longer exists.
type MissingProductError struct {
	ProductID uint
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("product with ID %d not found", e.ProductID)
}

func (e *MissingProductError) Unwrap() error {
	return ErrProductNotFound
}
