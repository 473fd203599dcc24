package gridgraph

// ConnectedComponents finds all contiguous regions of open cells according to
// gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.Index(x, y)
			if !gg.Open[y][x] || seen[i0] {
				continue
			}
			comps = append(comps, gg.flood([]int{i0}, seen))
		}
	}
	return comps
}

// ReachableFromTop marks every open cell connected to an open top-row cell.
// The result is indexed row-major; closed cells are always false.
//
// Time:   O(W·H·d). Memory: O(W·H).
func (gg *GridGraph) ReachableFromTop() []bool {
	seen := make([]bool, gg.Width*gg.Height)
	var sources []int
	for x := 0; x < gg.Width; x++ {
		if gg.Open[0][x] {
			i := gg.Index(x, 0)
			seen[i] = true
			sources = append(sources, i)
		}
	}
	if len(sources) > 0 {
		gg.flood(sources, seen)
	}
	return seen
}

// Spans reports whether some open bottom-row cell is reachable from the top row.
func (gg *GridGraph) Spans() bool {
	reach := gg.ReachableFromTop()
	for x := 0; x < gg.Width; x++ {
		if reach[gg.Index(x, gg.Height-1)] {
			return true
		}
	}
	return false
}

// flood runs a multi-source BFS over open cells. Sources must already be
// marked in seen. Returns the visited cells in BFS order.
func (gg *GridGraph) flood(sources []int, seen []bool) []int {
	for _, s := range sources {
		seen[s] = true
	}
	queue := append([]int(nil), sources...)
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) || !gg.Open[vy][vx] {
				continue
			}
			vi := gg.Index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}
