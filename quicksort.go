package ledger

// quickSort sorts s in place in ascending order according to less. It
// partitions around the last element of each range. The order of equal
// elements is not preserved.
func quickSort[T any](s []T, less func(a, b T) bool) {
	quickSortRange(s, 0, len(s)-1, less)
}

func quickSortRange[T any](s []T, low, high int, less func(a, b T) bool) {
	for low < high {
		p := partition(s, low, high, less)
		// Recurse into the smaller side to bound stack depth.
		if p-low < high-p {
			quickSortRange(s, low, p-1, less)
			low = p + 1
		} else {
			quickSortRange(s, p+1, high, less)
			high = p - 1
		}
	}
}

func partition[T any](s []T, low, high int, less func(a, b T) bool) int {
	pivot := s[high]
	i := low - 1
	for j := low; j < high; j++ {
		if less(s[j], pivot) {
			i++
			s[i], s[j] = s[j], s[i]
		}
	}
	s[i+1], s[high] = s[high], s[i+1]
	return i + 1
}
