// Package domain defines the core business entities for polydiff.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Point, Rectangle: pixel coordinates and inclusive axis-aligned boxes
//   - Difference: one connected region, partitioned into rectangles
//   - ImageDiffs: every difference of an image pair plus its difficulty
//   - Game: a persisted spot-the-difference record (the answer key)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
