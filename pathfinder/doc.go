// Package pathfinder answers shortest-path queries on a navmap.Map through
// an agent's belief.
//
// What:
//
//   - FindPath plans in two tiers. The coarse tier runs A* over portal
//     groups seen from each of their areas, with a dummy group at the start
//     cell and one at the goal cell. A plan alternates walks inside an area
//     with crossings; crossing a group the agent believes closed costs
//     +Inf. The fine tier turns each walk into a cell-level A* leg
//     restricted to the current area. The final leg ends at the goal.
//   - When a fine leg fails, the coarse hop it refined is excluded and the
//     coarse tier runs again. When the coarse tier fails, stale beliefs
//     are forgiven with windows from MaxWindow down to MinWindow. When the
//     smallest window is exhausted the query fails with ErrNoPath.
//   - Agent.Travel executes a route cell by cell against the ground truth.
//     A blocked cell is recorded in the belief and triggers a replan from
//     the last reached cell. Entering an area refreshes the beliefs about
//     that area's groups.
//   - FlatPath is the omniscient baseline: Dijkstra over ground-truth
//     cells.
//
// Queries whose endpoints lie in areas that are not connected in the area
// graph are rejected before any A* runs.
//
// Errors:
//
//   - ErrNilWorld        - nil map or belief.
//   - ErrOptionViolation - invalid option.
//   - ErrBlockedEndpoint - start or goal is blocked or off the map.
//   - ErrNoPath          - no route, even after forgiving stale beliefs.
//   - ErrReplanLimit     - Travel replanned more than MaxReplans times.
//   - astar.ErrExpansionLimit (wrapped) - a search hit MaxExpansions.
//
// Pathfinders and Agents are not safe for concurrent use.
package pathfinder
