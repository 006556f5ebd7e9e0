package book_batch

import "errors"

var (
	// ErrMissingTenant returned when the tenant identifier is absent
	ErrMissingTenant = errors.New("book_batch: tenant id is required")

	// ErrEmptyBatch returned when the batch contains no items
	ErrEmptyBatch = errors.New("book_batch: batch must contain at least one item")

	// ErrInvalidInput returned on malformed input
	ErrInvalidInput = errors.New("book_batch: invalid input data")

	// ErrNoResourceAvailable recorded per item when the resolved category
	// has no free resource left for the requested range
	ErrNoResourceAvailable = errors.New("book_batch: no resource available for category")

	// ErrInternal returned on internal usecase failures
	ErrInternal = errors.New("book_batch: internal error")
)
