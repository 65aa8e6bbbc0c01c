package budget

// BruteForce enumerates every feasible activation order without memoisation
// and returns the best score. It follows the same move rules as Maximize and
// serves as an independent reference on small instances: O(k!) time.
func BruteForce(dist Distances, rewards []uint32, start int, active []int, timeBudget uint32) (uint32, error) {
	m, err := NewMaximizer(dist, rewards, active)
	if err != nil {
		return 0, err
	}
	if err = m.CheckStart(start); err != nil {
		return 0, err
	}
	if err = m.CheckBudget(timeBudget); err != nil {
		return 0, err
	}

	visited := make([]bool, len(m.universe))
	var walk func(node int, left uint32) uint32
	walk = func(node int, left uint32) uint32 {
		var best uint32
		for p, v := range m.universe {
			if visited[p] || rewards[v] == 0 {
				continue
			}
			d, ok := dist.At(node, v)
			if !ok || uint64(d)+1 >= uint64(left) {
				continue
			}
			rem := left - d - 1
			visited[p] = true
			if total := rewards[v]*rem + walk(v, rem); total > best {
				best = total
			}
			visited[p] = false
		}
		return best
	}

	return walk(start, timeBudget), nil
}
