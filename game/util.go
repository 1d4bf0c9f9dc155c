package game

func findIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func contains[T comparable](slice []T, item T) bool {
	return findIndex(slice, item) >= 0
}
