package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get value")
	ErrFailedToPut    = errors.New("failed to put value")
	ErrFailedToDelete = errors.New("failed to delete value")
	ErrInvalidKey     = errors.New("invalid key")
)
