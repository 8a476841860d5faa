// Package navmap is the ground-truth side of the hierarchy: a parsed map
// together with its derived area labels, portal graphs and the mutable
// open/closed state of every portal square.
//
// What:
//
//   - ComputeMap partitions the free cells and builds the portal graphs.
//     It is idempotent and replaces any prior derived state.
//   - IsFree/Area answer per-cell queries; cells outside the map are
//     blocked and belong to area 0.
//   - SetGroupState/GroupState open or close one side of a portal group.
//     Only portal squares are mutable; area shapes never change after
//     ComputeMap.
//   - Snapshot/Restore export and reinstall the derived state so that a
//     cache can skip ComputeMap.
//   - CloseRandom flips a random fraction of the groups, for trials.
//
// Errors:
//
//   - ErrNilSource       - New called with a nil map.
//   - ErrOptionViolation - invalid option.
//   - ErrUnknownGroup    - group does not belong to this map.
//   - ErrWrongSide       - the side is not one of the group's areas.
//   - ErrBadFraction     - CloseRandom fraction outside [0,1].
//   - ErrSnapshotMismatch- snapshot does not fit the map.
//
// A Map is safe for concurrent readers; writers are serialised.
package navmap
