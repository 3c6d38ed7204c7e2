package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// ChunkBounds returns the half-open range [low, high) of chunk id when n is
// divided into the given number of equal contiguous chunks. The number of
// chunks must divide n.
func ChunkBounds(id, chunks, n int) (low, high int) {
	switch {
	case chunks < 1 || n%chunks != 0:
		panic(fmt.Sprintf("invalid number of chunks: %v for length %v", chunks, n))
	case id < 0 || id >= chunks:
		panic(fmt.Sprintf("invalid chunk id: %v of %v", id, chunks))
	}
	size := n / chunks
	return id * size, (id + 1) * size
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
