// Package domain defines the core business entities for leetgen.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Question: One practice question record, kept as a field map
//   - Document: One loaded question database, tagged by shape
//   - Difficulty: The fixed beginner < easy < medium < hard scale
//   - Progression: Per-difficulty question batches in ascending order
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
