package models

import "errors"

// Use errors.Is to check: errors.Is(err, models.ErrNotFound)
var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotCached    = errors.New("record is not in the local list")
)
