package domain

import "errors"

// ErrInsufficientStock is returned when a guarded decrement would drive a
// plant's quantity below zero.
var ErrInsufficientStock = errors.New("insufficient stock")
