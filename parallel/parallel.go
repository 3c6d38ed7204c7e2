// Package parallel provides a fork-join executor for minscan.Scan, and the
// parallel prefix and suffix minima scan built on it.
//
// Each phase of each recursion level is executed by a fresh group of
// goroutines, one per chunk, that is joined before the phase returns. No
// goroutine outlives the phase that started it.
package parallel

import (
	"fmt"
	"sync"

	"golang.org/x/sys/cpu"

	"github.com/exascience/minscan"
	"github.com/exascience/minscan/internal"
)

// An Executor runs each phase of minscan.Scan on up to MaxWorkers
// goroutines.
//
// For a level of length n, the number of goroutines is
// minscan.ChooseWorkerCount(MaxWorkers, n, MinOpsPerWorker), capped at
// n/2 so that every chunk covers whole pairs. MaxWorkers must be a
// power of two, and MinOpsPerWorker must be positive.
type Executor struct {
	MaxWorkers      int
	MinOpsPerWorker int
}

// A task describes the chunk handed to one worker of one phase. Workers
// only write their own task, so tasks are padded to separate cache lines.
type task struct {
	low, high int
	p         interface{}
	_         cpu.CacheLinePad
}

func (x Executor) validate() {
	if !minscan.IsPowerOfTwo(x.MaxWorkers) {
		panic(fmt.Sprintf("invalid number of workers: %v is not a power of two", x.MaxWorkers))
	}
	if x.MinOpsPerWorker < 1 {
		panic(fmt.Sprintf("invalid minimum operations per worker: %v", x.MinOpsPerWorker))
	}
}

// Workers returns the number of goroutines x uses for a level of length n.
func (x Executor) Workers(n int) int {
	x.validate()
	return min(minscan.ChooseWorkerCount(x.MaxWorkers, n, x.MinOpsPerWorker), max(1, n/2))
}

// Range implements minscan.Executor.
//
// Range divides [0, n) into Workers(n) equal contiguous chunks and
// invokes f for each chunk in its own goroutine, returning only when all
// invocations have terminated. With a single chunk, f is invoked in the
// calling goroutine.
//
// If one or more invocations panic, the corresponding goroutines
// recover the panics, and Range eventually panics with the left-most
// recovered panic value.
func (x Executor) Range(n int, f func(low, high int)) {
	workers := x.Workers(n)
	if workers == 1 {
		f(0, n)
		return
	}
	tasks := make([]task, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for id := range tasks {
		t := &tasks[id]
		t.low, t.high = internal.ChunkBounds(id, workers, n)
		go func() {
			defer func() {
				t.p = internal.WrapPanic(recover())
				wg.Done()
			}()
			f(t.low, t.high)
		}()
	}
	wg.Wait()
	for i := range tasks {
		if p := tasks[i].p; p != nil {
			panic(p)
		}
	}
}

// Scan computes the prefix or suffix minima of buffer in place, executing
// each phase on up to maxWorkers goroutines, but never giving a goroutine
// fewer than minOpsPerWorker elements of a level unless it is the only
// one.
//
// The length of buffer must be a positive power of two, maxWorkers must
// be a power of two, and minOpsPerWorker must be positive. Scan panics
// otherwise. The result is identical to that of sequential.Scan.
func Scan(buffer []int, d minscan.Direction, maxWorkers, minOpsPerWorker int) {
	x := Executor{MaxWorkers: maxWorkers, MinOpsPerWorker: minOpsPerWorker}
	x.validate()
	minscan.Scan(buffer, d, x)
}

// PrefixMinima is Scan with minscan.Prefix.
func PrefixMinima(buffer []int, maxWorkers, minOpsPerWorker int) {
	Scan(buffer, minscan.Prefix, maxWorkers, minOpsPerWorker)
}

// SuffixMinima is Scan with minscan.Suffix.
func SuffixMinima(buffer []int, maxWorkers, minOpsPerWorker int) {
	Scan(buffer, minscan.Suffix, maxWorkers, minOpsPerWorker)
}
