package maze

// FloodFill computes, for every Path tile reachable from the goal through a
// chain of Path tiles, the minimum number of hops to the goal. Walls and
// unreachable Path tiles stay without a distance.
//
// Behavior:
//  1. Clear the table, set dist[goal] = 0 and add goal to the worklist.
//  2. Take i with distance d. For each existing Path neighbor n of i:
//     • n has no distance yet          → dist[n] = d+1, add n
//     • dist[n] > d+1                  → dist[n] = d+1, add n again
//  3. Stop when the worklist is empty.
//
// The worklist is consumed first-in first-out, so on a unit-cost grid each
// tile is settled the first time it is labelled. A LIFO worklist converges to
// the same table but re-relaxes open areas many times over. The loop ends
// because distances only ever decrease and are bounded by 0.
// The goal is seeded even when it is a Wall (only possible through New).
//
// FloodFill clears previous results first, so calling it again on the same
// maze yields the same table.
// Complexity: O(W×H×4), Memory: O(W×H).
func (m *Maze) FloodFill() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.resetLocked()
	m.dist[m.goal] = 0
	m.reached[m.goal] = true

	work := make([]int, 0, len(m.tiles))
	work = append(work, m.goal)
	buf := make([]step, 0, 4)

	for head := 0; head < len(work); head++ {
		i := work[head]
		next := m.dist[i] + 1

		buf = m.openNeighbors(i, buf[:0])
		for _, nb := range buf {
			if m.reached[nb.index] && m.dist[nb.index] <= next {
				continue
			}
			m.dist[nb.index] = next
			m.reached[nb.index] = true
			work = append(work, nb.index)
		}
	}
}

// ResetDistances forgets every computed distance.
func (m *Maze) ResetDistances() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
}

func (m *Maze) resetLocked() {
	for i := range m.dist {
		m.dist[i] = 0
		m.reached[i] = false
	}
}

// Distance returns the hop distance from cell i to the goal and whether the
// flood fill reached i at all.
func (m *Maze) Distance(i int) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.dist) || !m.reached[i] {
		return 0, false
	}
	return m.dist[i], true
}

// Distances returns a copy of the distance table, using -1 for cells the
// flood fill did not reach.
func (m *Maze) Distances() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]int, len(m.dist))
	for i, d := range m.dist {
		if !m.reached[i] {
			d = -1
		}
		out[i] = d
	}
	return out
}
