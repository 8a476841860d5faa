// Package mapfile parses grid maps in the MovingAI text format:
//
//	type octile
//	height 4
//	width 6
//	map
//	......
//	..@@..
//	..TT..
//	......
//
// Header lines may come in any order before the "map" sentinel; "type" is
// ignored. Exactly height rows of width terrain characters must follow.
// Terrain characters are classified by a lookup table:
//
//	free:    .  G  S
//	blocked: @  O  T  W
//
// A parsed Map also carries a Digest (SHA-256 over the dimensions and the
// terrain), which identifies the map in the derived-state cache.
//
// Errors:
//
//   - ErrMissingDimension: height or width absent before "map".
//   - ErrBadDimension:     non-numeric or non-positive dimension.
//   - ErrMissingMapSentinel: no "map" line.
//   - ErrShortMap:         fewer rows than height.
//   - ErrRowLength:        a row's length differs from width.
//   - ErrUnknownTerrain:   a character outside the lookup table.
//
// No partial Map is returned on error.
package mapfile
