// Package minscan computes prefix and suffix minima of integer slices by
// recursive doubling, the technique also known as a Brent-Kung scan: adjacent
// pairs are combined into a half-length slice, that slice is scanned
// recursively, and the skipped positions are then filled in from the
// recursive result.
//
// The recursion is shared by all execution strategies. What differs between
// them is how the two phases of each level, the pairwise reduce and the
// odd/even fill, are executed. An Executor decides that at call time.
//
// Minscan provides the following subpackages:
//
// minscan/sequential executes both phases in the calling goroutine. It is the
// reference for the parallel strategy.
//
// minscan/parallel executes both phases of every level as a fork-join group
// of goroutines whose size adapts to the length of the level.
//
// minscan/seed reads the whitespace separated integer files that seed the
// benchmark, and minscan/bench times both strategies over a range of input
// sizes and worker budgets.
package minscan
