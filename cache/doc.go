// Package cache persists the derived state of a navmap.Map in SQLite so a
// later run can skip ComputeMap.
//
// Bundles are keyed by the map digest (mapfile.Digest). The schema is
// versioned with golang-migrate; migrations are embedded and applied on
// Open. Area labels are stored as one length-prefixed uvarint record;
// groups, portals and edges are stored as rows in build order so that a
// reload reproduces the same ids and the same portal order.
//
// Every Load re-checks the labels with partition.Verify (through
// navmap.Map.Restore). A bundle that fails is deleted and reported as a
// miss.
//
// Errors:
//
//   - ErrCorrupt  - a stored record cannot be decoded.
//   - ErrMismatch - the stored terrain differs from the map being loaded.
package cache
