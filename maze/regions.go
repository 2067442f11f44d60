package maze

// Regions finds all 4-connected groups of Path tiles.
// Returns a slice of regions; each region lists cell indices in BFS discovery
// order, and regions appear in row-major order of their first cell.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (m *Maze) Regions() [][]int {
	seen := make([]bool, len(m.tiles))
	var regions [][]int
	buf := make([]step, 0, 4)

	for i0, t := range m.tiles {
		if t != Path || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			buf = m.openNeighbors(queue[qi], buf[:0])
			for _, nb := range buf {
				if !seen[nb.index] {
					seen[nb.index] = true
					queue = append(queue, nb.index)
				}
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

// Connected reports whether cells a and b are both Path tiles in the same
// region. Out-of-range indices are never connected.
// Complexity: O(W·H·4) worst case; stops as soon as b is found.
func (m *Maze) Connected(a, b int) bool {
	n := len(m.tiles)
	if a < 0 || a >= n || b < 0 || b >= n {
		return false
	}
	if m.tiles[a] != Path || m.tiles[b] != Path {
		return false
	}
	seen := make([]bool, n)
	seen[a] = true
	queue := []int{a}
	buf := make([]step, 0, 4)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == b {
			return true
		}
		buf = m.openNeighbors(u, buf[:0])
		for _, nb := range buf {
			if !seen[nb.index] {
				seen[nb.index] = true
				queue = append(queue, nb.index)
			}
		}
	}
	return false
}
