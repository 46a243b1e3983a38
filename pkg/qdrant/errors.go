package qdrant

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig      = errors.New("qdrant: invalid configuration")
	ErrCollectionNotFound = errors.New("qdrant: collection not found")
	ErrInvalidVector      = errors.New("qdrant: invalid vector")
	ErrInvalidPointID     = errors.New("qdrant: invalid point ID")
	ErrEmptyCollection    = errors.New("qdrant: collection name cannot be empty")
	ErrInvalidVectorSize  = errors.New("qdrant: invalid vector size")
	ErrEmptyFilter        = errors.New("qdrant: filter must have at least one condition")
)

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
