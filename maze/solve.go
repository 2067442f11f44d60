package maze

// Solve walks the distance table from the start to the goal and returns the
// visited indices, start and goal included. ok is false when the start was
// not reached by FloodFill (including when FloodFill was never run).
//
// At every cell Solve moves to the Path neighbor with the strictly smallest
// known distance. Equal candidates are resolved by Options.TieBreak:
//
//   - TieBreakFixed:    first minimum in North, South, West, East order.
//   - TieBreakStraight: the candidate in the direction of the previous step,
//     else the TieBreakFixed choice.
//
// On a table produced by FloodFill every step lowers the distance by exactly
// one, so the path is a shortest path. If no strictly smaller neighbor
// exists, the table is inconsistent and Solve returns nil, false.
// The table is read under the read lock and never modified.
// Complexity: O(len(path) × 4).
func (m *Maze) Solve(opts ...Option) (path []int, ok bool) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.reached[m.start] {
		return nil, false
	}

	cur := m.start
	path = make([]int, 0, m.dist[cur]+1)
	path = append(path, cur)
	o.OnStep(cur, m.dist[cur])

	prev := Direction(-1)
	buf := make([]step, 0, 4)
	for cur != m.goal {
		buf = m.openNeighbors(cur, buf[:0])
		best, found := m.descend(cur, buf, prev, o.TieBreak)
		if !found {
			return nil, false
		}
		cur, prev = best.index, best.dir
		path = append(path, cur)
		o.OnStep(cur, m.dist[cur])
	}
	return path, true
}

// descend picks the next step out of cur among the open neighbors in cands.
// Only candidates with a known distance strictly below cur's qualify.
func (m *Maze) descend(cur int, cands []step, prev Direction, tb TieBreak) (step, bool) {
	var best step
	found := false
	for _, c := range cands {
		if !m.reached[c.index] || m.dist[c.index] >= m.dist[cur] {
			continue
		}
		switch {
		case !found, m.dist[c.index] < m.dist[best.index]:
			best, found = c, true
		case tb == TieBreakStraight && m.dist[c.index] == m.dist[best.index] && c.dir == prev:
			best = c
		}
	}
	return best, found
}
