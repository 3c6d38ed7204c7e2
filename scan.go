package minscan

import "fmt"

/*
Scan replaces every element of buffer with the minimum of the
corresponding prefix or suffix of the original contents, depending on
d. The two phases of each recursion level are executed by x.

The length of buffer must be a positive power of two. Scan panics
otherwise, rather than silently producing a wrong answer.

Scan works in place and offers no rollback: if x panics partway, the
contents of buffer are undefined.
*/
func Scan(buffer []int, d Direction, x Executor) {
	if !IsPowerOfTwo(len(buffer)) {
		panic(fmt.Sprintf("invalid buffer length: %v is not a power of two", len(buffer)))
	}
	scan(buffer, d, x)
}

func scan(buffer []int, d Direction, x Executor) {
	n := len(buffer)
	if n == 1 {
		return
	}
	z := make([]int, n/2)
	x.Range(n, func(low, high int) {
		reduce(buffer, z, low, high)
	})
	scan(z, d, x)
	switch d {
	case Prefix:
		x.Range(n, func(low, high int) {
			fillPrefix(buffer, z, low, high)
		})
	case Suffix:
		x.Range(n, func(low, high int) {
			fillSuffix(buffer, z, low, high)
		})
	}
}

// reduce writes the pairwise minima of buffer[low:high] into z[low/2:high/2].
func reduce(buffer, z []int, low, high int) {
	for i := low; i < high; i += 2 {
		z[i/2] = min(buffer[i], buffer[i+1])
	}
}

func fillPrefix(buffer, z []int, low, high int) {
	for i := low; i < high; i++ {
		switch {
		case i%2 == 1:
			buffer[i] = z[i/2]
		case i > 0:
			buffer[i] = min(buffer[i], z[i/2-1])
		}
	}
}

func fillSuffix(buffer, z []int, low, high int) {
	last := len(buffer) - 1
	for i := low; i < high; i++ {
		switch {
		case i%2 == 0:
			buffer[i] = z[i/2]
		case i < last:
			buffer[i] = min(buffer[i], z[i/2+1])
		}
	}
}
