package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrCustomerHasDependents is returned when a customer still has an
	// account or orders and therefore cannot be deleted.
	ErrCustomerHasDependents = errors.New("customer has dependent records")

	ErrNoLineItems     = errors.New("order must contain at least one line item")
	ErrInvalidQuantity = errors.New("line item quantity must be a positive integer")
)

// ProductNotFoundError names the product id that an order line referenced.
type ProductNotFoundError struct {
	ID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found with ID: %d", e.ID)
}

// Store is the record access layer. It wraps the single gorm handle the
// application opens at startup; handlers receive it explicitly instead of
// reaching for package globals.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
