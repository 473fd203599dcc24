package gridgraph

import (
	"container/list"
)

// ExpandToSpan finds the fewest closed cells that must be opened so that the
// top row connects to the bottom row. Each closed-cell conversion costs 1;
// entering an open cell is free.
// Returns the sequence of cell‐indices (row‐major) from a top-row cell to a
// bottom-row cell, and the total conversion cost. A grid that already spans
// yields cost 0.
//
// Behavior:
//  1. Multi‐source 0–1‐BFS from every top-row cell, seeded with its own cost.
//  2. Moving into an open cell   → cost 0 (push front).
//     Moving into a closed cell  → cost 1 (push back).
//  3. Stop at the first bottom-row cell popped from the deque.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) ExpandToSpan() (path []int, cost int, err error) {
	N := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, N)
	prev := make([]int, N)
	done := make([]bool, N)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for x := 0; x < gg.Width; x++ {
		i := gg.Index(x, 0)
		if gg.Open[0][x] {
			dist[i] = 0
			dq.PushFront(i)
		} else {
			dist[i] = 1
			dq.PushBack(i)
		}
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		ux, uy := gg.Coordinate(u)
		if uy == gg.Height-1 {
			target = u
			break
		}
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.Index(vx, vy)
			step := 0
			if !gg.Open[vy][vx] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append([]int{at}, path...)
	}
	return path, dist[target], nil
}
