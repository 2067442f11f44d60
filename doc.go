// Package floodmaze solves grid mazes by flood fill: distances are spread
// from the goal over open cells, then a path is read off by walking downhill
// from the start.
//
// What is floodmaze?
//
//	A small, dependency-light toolkit made of:
//		• maze:   Tile/Maze types, the "w<W>h<H>s<S>g<G>#<tiles>" codec,
//		          flood fill, path reconstruction and region labelling
//		• render: text and PNG views of a maze and its solution
//		• cmd/mazesolve: command-line front end
//
// Quick ASCII example (5×5, S = start, G = goal, # = wall, * = route):
//
//	G***.
//	###*#
//	S***#
//	#.#.#
//	..#..
//
// is the solution of "w5h5s10g0#0000011101000011010100100".
//
// Usage:
//
//	m, err := maze.Decode("w5h5s10g0#0000011101000011010100100")
//	if err != nil {
//		// ErrInvalidToken, ErrUnexpectedEnding, ErrInvalidSize or ErrInvalidPosition
//	}
//	m.FloodFill()
//	path, ok := m.Solve()
//
//	go install github.com/katalvlaran/floodmaze/cmd/mazesolve@latest
package floodmaze
