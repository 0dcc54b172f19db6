package utils

// FindIndex returns the position of item in slice, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Other returns the element of pair that is not item. item must be one of them.
func Other[T comparable](pair [2]T, item T) T {
	if pair[0] == item {
		return pair[1]
	}
	return pair[0]
}
