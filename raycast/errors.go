package raycast

import (
	"errors"
	"fmt"
)

// ErrInvariant is wrapped by every error that means a caller broke a
// contract of the ray caster (bad map, bad texture or a viewer outside the
// map). The frame that produced it must be discarded.
var ErrInvariant = errors.New("raycast: core invariant broken")

var (
	ErrOutOfBounds   = fmt.Errorf("%w: tile out of bounds", ErrInvariant)
	ErrIterationCap  = fmt.Errorf("%w: traversal iteration cap exceeded", ErrInvariant)
	ErrTextureBounds = fmt.Errorf("%w: texture sample out of bounds", ErrInvariant)
	ErrNoTexture     = fmt.Errorf("%w: wall has no texture", ErrInvariant)
	ErrBadDistance   = fmt.Errorf("%w: corrected distance is negative or not finite", ErrInvariant)
)

// Components reported by InvariantError.
const (
	ComponentTraversal  = "traversal"
	ComponentProjection = "projection"
	ComponentTexture    = "texture"
)

// InvariantError identifies the component, screen column and offending
// value behind an invariant violation.
type InvariantError struct {
	Component string
	Column    int // -1 when not tied to a screen column
	Value     any
	Err       error
}

func (e *InvariantError) Error() string {
	if e.Column >= 0 {
		return fmt.Sprintf("%s (column %d): %v: %v", e.Component, e.Column, e.Err, e.Value)
	}
	return fmt.Sprintf("%s: %v: %v", e.Component, e.Err, e.Value)
}

func (e *InvariantError) Unwrap() error { return e.Err }

func invariant(component string, err error, value any) *InvariantError {
	return &InvariantError{Component: component, Column: -1, Value: value, Err: err}
}

// withColumn tags an invariant error with the screen column it came from.
func withColumn(err error, column int) error {
	var ie *InvariantError
	if errors.As(err, &ie) && ie.Column < 0 {
		ie.Column = column
	}
	return err
}
