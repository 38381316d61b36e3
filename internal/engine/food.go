package engine

// spawnFood picks a uniformly random free cell. Rejection sampling is tried
// first; once it has failed maxFoodAttempts times the free cells are listed
// and one is drawn directly, so placement terminates even on a nearly full
// board. ok is false when no free cell exists.
func spawnFood(snake []Point, rng *Rand) (Point, bool) {
	if len(snake) >= CellCount*CellCount {
		return Point{}, false
	}

	for i := 0; i < maxFoodAttempts; i++ {
		p := Point{X: rng.Intn(CellCount), Y: rng.Intn(CellCount)}
		if !occupied(snake, p) {
			return p, true
		}
	}

	taken := make(map[Point]struct{}, len(snake))
	for _, seg := range snake {
		taken[seg] = struct{}{}
	}
	free := make([]Point, 0, CellCount*CellCount-len(snake))
	for y := 0; y < CellCount; y++ {
		for x := 0; x < CellCount; x++ {
			p := Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[rng.Intn(len(free))], true
}
