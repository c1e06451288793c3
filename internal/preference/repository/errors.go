package repository

import "errors"

var (
	ErrNotFound       = errors.New("preference not found")
	ErrFailedToGet    = errors.New("failed to get")
	ErrFailedToUpsert = errors.New("failed to upsert")
)
