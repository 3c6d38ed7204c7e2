package minscan

// PrefixMinima returns a new slice whose element i is the minimum of
// a[0] through a[i], computed by a single left-to-right pass. It accepts
// slices of any length and serves as a reference for Scan.
func PrefixMinima(a []int) []int {
	result := make([]int, len(a))
	for i, v := range a {
		if i > 0 && result[i-1] < v {
			v = result[i-1]
		}
		result[i] = v
	}
	return result
}

// SuffixMinima returns a new slice whose element i is the minimum of
// a[i] through a[len(a)-1], computed by a single right-to-left pass.
func SuffixMinima(a []int) []int {
	result := make([]int, len(a))
	for i := len(a) - 1; i >= 0; i-- {
		v := a[i]
		if i < len(a)-1 && result[i+1] < v {
			v = result[i+1]
		}
		result[i] = v
	}
	return result
}

// Minima dispatches to PrefixMinima or SuffixMinima.
func Minima(a []int, d Direction) []int {
	if d == Suffix {
		return SuffixMinima(a)
	}
	return PrefixMinima(a)
}
