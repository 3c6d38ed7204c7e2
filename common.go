package minscan

import (
	"fmt"
	"math/bits"
)

// A Direction selects between prefix and suffix minima. Its underlying type
// has exactly two values, so every Direction is valid.
type Direction bool

const (
	// Prefix makes element i the minimum of elements 0 through i.
	Prefix Direction = false

	// Suffix makes element i the minimum of elements i through n-1.
	Suffix Direction = true
)

func (d Direction) String() string {
	if d == Suffix {
		return "suffix"
	}
	return "prefix"
}

// An Executor runs one phase of one recursion level of Scan.
//
// Range invokes f on disjoint subranges [low, high) that together cover the
// half-open interval [0, n). Every subrange starts at an even index and has
// even length, so that no pair of adjacent elements is split. Range returns
// only when all invocations of f have terminated.
type Executor interface {
	Range(n int, f func(low, high int))
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

/*
ChooseWorkerCount determines how many workers to use for a sub-problem
of the given size.

It starts at maxWorkers and repeatedly halves that number while
workers * minOpsPerWorker exceeds problemSize and more than one worker
is left. This keeps goroutine creation from dominating the running
time of the small levels deep in the recursion.

The result is always in [1, maxWorkers], and a power of two whenever
maxWorkers is. For a fixed maxWorkers and problemSize, the result is
non-increasing in minOpsPerWorker.

ChooseWorkerCount panics if maxWorkers < 1 or problemSize < 0.
*/
func ChooseWorkerCount(maxWorkers, problemSize, minOpsPerWorker int) int {
	if maxWorkers < 1 {
		panic(fmt.Sprintf("invalid number of workers: %v", maxWorkers))
	}
	if problemSize < 0 {
		panic(fmt.Sprintf("invalid problem size: %v", problemSize))
	}
	workers := maxWorkers
	// minOps > size/workers is workers*minOps > size without overflow.
	for workers > 1 && minOpsPerWorker > problemSize/workers {
		workers /= 2
	}
	return workers
}
