package matrix

import "errors"

// Sentinel errors for matrix construction and access.
var (
	// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index is outside the valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNonSquare indicates an operation that requires a square matrix was given a rectangular one.
	ErrNonSquare = errors.New("matrix: matrix is not square")
)
