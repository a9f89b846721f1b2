package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Image Errors.

	// ErrDimensionMismatch indicates two images (or a pixel buffer and its
	// declared size) do not describe the same W×H RGBA surface.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrUnsupportedFormat indicates an image file could not be decoded.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// Game Errors.

	// ErrInvalidRadius indicates a dilation radius outside the allowed set.
	ErrInvalidRadius = errors.New("invalid radius")

	// ErrDifferenceCount indicates a game has too few or too many differences.
	ErrDifferenceCount = errors.New("invalid number of differences")

	// ErrOutOfBounds indicates a clicked point lies outside the game image.
	ErrOutOfBounds = errors.New("point out of bounds")

	// ErrStoreUnavailable indicates no game store is configured.
	ErrStoreUnavailable = errors.New("game store unavailable")
)
