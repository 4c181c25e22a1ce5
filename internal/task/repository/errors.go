package repository

import "errors"

// Sentinel errors for the repository layer. Callers treat any of these as a
// persistence failure; the underlying cause is logged where it happens.
var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")
)
