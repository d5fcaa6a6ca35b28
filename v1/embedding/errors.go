package embedding

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when vectors are empty or differ in dimension.
var ErrInvalidArgument = errors.New("embedding: invalid argument")

// IsInvalidArgumentError checks if the error is a vector validation error.
func IsInvalidArgumentError(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// validatePair ensures both vectors are non-empty and share a dimension.
func validatePair(a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return fmt.Errorf("%w: embeddings must be non-empty", ErrInvalidArgument)
	}
	if len(a) != len(b) {
		return fmt.Errorf("%w: dimension mismatch (%d != %d)", ErrInvalidArgument, len(a), len(b))
	}
	return nil
}
