// Package engine computes the differences between two same-size images.
//
// The pipeline runs in one synchronous pass and keeps no state between
// calls:
//
//  1. ComputeMask classifies every pixel pair, flags exterior differing
//     pixels as seeds and dilates them with filled disks.
//  2. ExtractDifferences flood-fills the mask from the seeds, producing one
//     point list per 8-connected region.
//  3. SortPoints orders each list row-major with a stable merge sort.
//  4. Decompose turns a sorted list into rectangles (line merge, then
//     rectangle merge).
//  5. Classify rates the result Facile or Difficile.
//
// FindDifferences and Find chain the steps together.
//
// # Import Rules
//
//   - Can Import: domain package and the standard library
//   - Cannot Import: Any adapter or service package
package engine
