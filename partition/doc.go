// Package partition decomposes a free/blocked grid into areas: labelled,
// roughly rectangular regions of mutually reachable free cells.
//
// What:
//
//	Partition runs a scan-line decomposition. It repeatedly seeds a new area
//	at the topmost, then leftmost, unlabelled free cell and grows it row by
//	row. Each row is a contiguous span that starts under the previous row's
//	span. An area stops growing when the next row offers no aligned free
//	cell, or when a side that has already shrunk would grow again; in the
//	latter case on the right side the offending row is unlabelled first.
//
// Guarantees:
//
//   - Coverage: every free cell gets a label in [1, N]; blocked cells keep 0.
//   - Disjointness: one label per cell.
//   - Each area is 4-connected.
//
// Verify checks the three guarantees and is used to reject corrupt cached
// labelings.
//
// Complexity:
//
//   - Partition: O(W×H) amortised; each cell is labelled and unlabelled at most once per area attempt.
//   - Verify:    O(W×H).
//
// Errors (Verify):
//
//   - ErrShapeMismatch, ErrUncovered, ErrBlockedLabeled, ErrLabelRange,
//     ErrDisconnectedArea.
package partition
