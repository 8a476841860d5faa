// Package grid provides a dense, fixed-size 2D container addressed by
// integer cells, plus the small amount of cell geometry the rest of
// areanav builds on.
//
// What:
//
//   - Grid[T] stores Width×Height values in a row-major slice.
//   - Cell is an (X, Y) value type with derived cardinal neighbours.
//   - All enumerates every cell in row-major order.
//   - Components collects 4-connected regions that satisfy a predicate.
//
// Why:
//
//   - Terrain, free masks and area labels share one container type.
//   - Out-of-range reads through Get/Set are programming errors and panic;
//     callers at map edges use InBounds/IsOutOfBound instead.
//
// Complexity:
//
//   - Get, Set, InBounds, Index, Coordinate: O(1).
//   - All, Clone, Fill:                      O(W×H).
//   - Components:                            O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      width or height is not positive.
//   - ErrNonRectangular: FromRows received rows of differing lengths.
package grid
