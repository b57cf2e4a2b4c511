package arena

import "errors"

// Sentinel errors for arena construction and obstacle registration.
var (
	// ErrOutOfBounds indicates a coordinate falls outside [0, width-1] x [0, height-1].
	ErrOutOfBounds = errors.New("arena: coordinate out of bounds")

	// ErrDuplicateObstacle indicates an obstacle with the same (x, y, direction)
	// was already registered.
	ErrDuplicateObstacle = errors.New("arena: duplicate obstacle")

	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("arena: width and height must be positive")
)
