package bellmanford

import (
	"strconv"
	"strings"
)

// reconstruct rebuilds the cycle proven by the relaxable edge u→v.
//
// The walk starts from [v, u] and follows prev[] from u, appending each
// predecessor until one repeats. The list is cut at the first occurrence of
// the repeated node (discarding the tail that leads into the loop), closed
// by appending that node once more, and reversed into conversion order.
//
// Returns nil if the chain runs out (NoPredecessor) before closing.
// Complexity: O(n).
func reconstruct(prev []int, u, v int) []int {
	// 1) Working list and the position of each node in it.
	list := make([]int, 0, len(prev)+1)
	list = append(list, v, u)
	pos := make(map[int]int, len(prev))
	pos[v] = 0
	pos[u] = 1

	// 2) Walk backwards until a node repeats.
	x := u
	for {
		p := prev[x]
		if p == NoPredecessor {
			return nil
		}
		if first, ok := pos[p]; ok {
			// 3) Cut, close and reverse.
			loop := make([]int, 0, len(list)-first+1)
			loop = append(loop, list[first:]...)
			loop = append(loop, p)
			reverse(loop)

			return loop
		}
		pos[p] = len(list)
		list = append(list, p)
		x = p
	}
}

// reverse flips s in place.
func reverse(s []int) {
	var i, j int
	for i, j = 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Canonical returns the closed cycle rotated to start at its smallest index,
// preserving direction. [2 0 1 2] becomes [0 1 2 0].
// Input must be closed (first == last) with at least two elements.
func Canonical(cycle []int) []int {
	if len(cycle) < 2 {
		return append([]int(nil), cycle...)
	}
	open := cycle[:len(cycle)-1]

	// 1) Locate the smallest index.
	minAt := 0
	var i int
	for i = 1; i < len(open); i++ {
		if open[i] < open[minAt] {
			minAt = i
		}
	}

	// 2) Rotate and close.
	out := make([]int, 0, len(cycle))
	out = append(out, open[minAt:]...)
	out = append(out, open[:minAt]...)
	out = append(out, out[0])

	return out
}

// cycleKey returns the rotation-independent signature of a closed cycle.
func cycleKey(cycle []int) string {
	c := Canonical(cycle)
	parts := make([]string, len(c))
	var i int
	for i = range c {
		parts[i] = strconv.Itoa(c[i])
	}

	return strings.Join(parts, ",")
}
