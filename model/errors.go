package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid or cell is given a width or height <= 0.
	ErrInvalidDimensions = errors.New("dimensions must be positive")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "width=%d height=%d", width, height)
	}
	return nil
}
