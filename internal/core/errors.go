package core

import "errors"

var (
	// ErrValidation is the base of all mutation-boundary validation
	// failures. Check with errors.Is.
	ErrValidation = errors.New("validation failed")

	ErrInvalidAmount    = errors.New("invalid amount")
	ErrAmountSign       = errors.New("amount sign does not match transaction type")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyName        = errors.New("empty name")
	ErrEmptyCategory    = errors.New("empty category")
	ErrEmptyAccount     = errors.New("empty account")
	ErrEmptyTitle       = errors.New("empty title")
	ErrInvalidType      = errors.New("invalid type")
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrInvalidPeriod    = errors.New("invalid period")
	ErrZeroDate         = errors.New("date cannot be zero")
	ErrInvalidTarget    = errors.New("target amount must be positive")

	// ErrCategoryInUse rejects deleting a category still referenced by a
	// transaction. Enforced by the state store, not the repository.
	ErrCategoryInUse = errors.New("category is referenced by transactions")
)
