// Package sequential provides the sequential executor for minscan.Scan.
//
// It executes every phase in the calling goroutine and is the reference
// the parallel package is tested against.
package sequential

import "github.com/exascience/minscan"

// Executor implements minscan.Executor by invoking f once on the whole
// range.
type Executor struct{}

// Range implements minscan.Executor.
func (Executor) Range(n int, f func(low, high int)) {
	f(0, n)
}

// Scan computes the prefix or suffix minima of buffer in place. The
// length of buffer must be a positive power of two.
func Scan(buffer []int, d minscan.Direction) {
	minscan.Scan(buffer, d, Executor{})
}
