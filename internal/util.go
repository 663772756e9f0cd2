package internal

// ReconstructPath walks the previous links from goal until it reaches an id
// with no predecessor (-1). The ids come back in goal-to-start order.
func ReconstructPath(previous []int, goal int) []int {
	path := []int{goal}
	for current := previous[goal]; current != -1; current = previous[current] {
		path = append(path, current)
	}
	return path
}

// Reverse returns a reversed copy of s.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i, j := 0, len(s)-1; j >= 0; i, j = i+1, j-1 {
		out[i] = s[j]
	}
	return out
}
