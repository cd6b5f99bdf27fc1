package service

import (
	"errors"
	"math"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrConflict   = errors.New("conflict")   // 409
)

// round2 rounds money values to 2 decimal places; every stored total
// and unit price goes through it.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
