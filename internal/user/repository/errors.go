package repository

import "errors"

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicate      = errors.New("duplicate key")
	ErrFailedToInsert = errors.New("failed to insert")
	ErrFailedToGet    = errors.New("failed to get")
	ErrFailedToUpdate = errors.New("failed to update")
)
