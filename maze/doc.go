// Package maze decodes textual grid mazes, computes hop distances from the
// goal with a flood fill, and walks those distances back from the start to
// produce a shortest path.
//
// What:
//
//   - Maze wraps a rectangular row-major grid of Tile values (Path or Wall).
//   - Decode parses "w<W>h<H>s<S>g<G>#<tiles>" descriptions; Encode is its inverse.
//   - FloodFill writes the minimum number of hops to the goal into every Path
//     tile reachable from it.
//   - Solve descends the distance table from start to goal.
//   - Regions labels 4-connected groups of Path tiles.
//
// Why:
//
//   - Puzzle and game boards: shortest routes on tile maps.
//   - Robot / agent planning on occupancy grids with unit step cost.
//
// Determinism:
//
//	Neighbors are always visited North, South, West, East. Solve picks the
//	first strictly smallest neighbor in that order unless TieBreakStraight is
//	requested, in which case the neighbor continuing the previous step wins a
//	tie. Identical mazes therefore always produce identical paths.
//
// Complexity:
//
//   - Decode:     O(W×H), Memory: O(W×H).
//   - FloodFill:  O(W×H×4) relaxations in practice, Memory: O(W×H).
//   - Solve:      O(path length × 4).
//   - Regions:    O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrInvalidToken: malformed literal, count or tile character.
//   - ErrUnexpectedEnding: description truncated at or before "#".
//   - ErrInvalidSize: tile run length differs from W×H, or W/H is zero.
//   - ErrInvalidPosition: start or goal outside the grid, or goal on a Wall.
//
// An unsolvable maze is not an error: Solve reports it with ok == false.
package maze
