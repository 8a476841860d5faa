// Package belief keeps one agent's view of portal passability.
//
// The view is a set of entries, one per portal group the agent has
// observed: (passable, last updated). Entries are created lazily and may
// disagree with the ground truth. A group without an entry defers to the
// ground truth.
//
// Time is a logical step counter owned by the Model. The driving loop
// advances it with Tick (or SetNow); every update stamps the entry with the
// current step.
//
// ReviewOlderThan(window) forgives stale observations: every entry whose
// stamp is at most Now-window is reset to passable. Nothing is checked
// against the ground truth; a wrong guess is corrected the next time the
// agent looks.
//
// Cells are mapped onto groups: a portal square is believed free when every
// group touching it is believed passable; other cells follow the ground
// truth.
//
// Complexity:
//
//   - UpdateCell:      O(k) for k groups at the cell.
//   - IsFree:          O(k).
//   - ReviewOlderThan: O(E) for E entries.
//   - Clean:           O(G) for G groups in the world.
//
// A Model is not safe for concurrent use; each agent owns its own.
package belief
