package parallel_test

import (
	"fmt"
	"math/rand"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exascience/minscan"
	"github.com/exascience/minscan/parallel"
	"github.com/exascience/minscan/sequential"
)

func makeRandomSlice(size, limit int) []int {
	result := make([]int, size)
	for i := 0; i < size; i++ {
		result[i] = rand.Intn(limit)
	}
	return result
}

func TestScan(t *testing.T) {
	orgSlice := makeRandomSlice(1<<14, 1<<30)

	for _, d := range []minscan.Direction{minscan.Prefix, minscan.Suffix} {
		s1 := append([]int(nil), orgSlice...)
		sequential.Scan(s1, d)

		for maxWorkers := 1; maxWorkers <= 32; maxWorkers <<= 1 {
			for _, minOps := range []int{1, 16, 1024} {
				t.Run(fmt.Sprintf("%v/%v/%v", d, maxWorkers, minOps), func(t *testing.T) {
					s2 := append([]int(nil), orgSlice...)
					parallel.Scan(s2, d, maxWorkers, minOps)
					if !reflect.DeepEqual(s1, s2) {
						t.Errorf("Parallel %v scan incorrect.", d)
					}
				})
			}
		}
	}
}

func TestScanSmallLengths(t *testing.T) {
	for size := 1; size <= 64; size <<= 1 {
		a := makeRandomSlice(size, 100)
		prefix := append([]int(nil), a...)
		parallel.PrefixMinima(prefix, 8, 1)
		assert.Equal(t, minscan.PrefixMinima(a), prefix, "length %v", size)

		suffix := append([]int(nil), a...)
		parallel.SuffixMinima(suffix, 8, 1)
		assert.Equal(t, minscan.SuffixMinima(a), suffix, "length %v", size)
	}
}

func TestScanScenario(t *testing.T) {
	a := []int{5, 3, 8, 1, 9, 2, 7, 4}
	parallel.Scan(a, minscan.Prefix, 4, 1)
	assert.Equal(t, []int{5, 3, 3, 1, 1, 1, 1, 1}, a)

	b := []int{5, 3, 8, 1, 9, 2, 7, 4}
	parallel.Scan(b, minscan.Suffix, 4, 1)
	assert.Equal(t, []int{1, 1, 1, 1, 2, 2, 4, 4}, b)
}

func TestScanRejectsInvalidArguments(t *testing.T) {
	assert.Panics(t, func() { parallel.Scan(make([]int, 8), minscan.Prefix, 3, 1) })
	assert.Panics(t, func() { parallel.Scan(make([]int, 8), minscan.Prefix, 0, 1) })
	assert.Panics(t, func() { parallel.Scan(make([]int, 8), minscan.Prefix, 4, 0) })
	assert.Panics(t, func() { parallel.Scan(make([]int, 6), minscan.Prefix, 4, 1) })
}

func TestWorkers(t *testing.T) {
	x := parallel.Executor{MaxWorkers: 16, MinOpsPerWorker: 256}
	assert.Equal(t, 16, x.Workers(1<<16))
	assert.Equal(t, 4, x.Workers(1024))
	assert.Equal(t, 1, x.Workers(256))

	x = parallel.Executor{MaxWorkers: 16, MinOpsPerWorker: 1}
	assert.Equal(t, 4, x.Workers(8))
	assert.Equal(t, 1, x.Workers(2))
}

func TestRangeCoversDisjointChunks(t *testing.T) {
	x := parallel.Executor{MaxWorkers: 8, MinOpsPerWorker: 4}
	const n = 256
	var visits [n]int32
	var calls int32
	x.Range(n, func(low, high int) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, 0, low%2)
		assert.Equal(t, 0, (high-low)%2)
		for i := low; i < high; i++ {
			atomic.AddInt32(&visits[i], 1)
		}
	})
	require.Equal(t, int32(8), calls)
	for i, v := range visits {
		assert.Equal(t, int32(1), v, "index %v", i)
	}
}

func TestRangeRethrowsPanic(t *testing.T) {
	x := parallel.Executor{MaxWorkers: 4, MinOpsPerWorker: 1}
	var finished int32
	assert.Panics(t, func() {
		x.Range(64, func(low, high int) {
			defer atomic.AddInt32(&finished, 1)
			if low == 16 {
				panic("worker failed")
			}
		})
	})
	assert.Equal(t, int32(4), atomic.LoadInt32(&finished))
}

func BenchmarkScan(b *testing.B) {
	orgSlice := makeRandomSlice(1<<18, 1<<30)
	s := make([]int, len(orgSlice))

	b.Run("Sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			copy(s, orgSlice)
			b.StartTimer()
			sequential.Scan(s, minscan.Prefix)
		}
	})

	for maxWorkers := 1; maxWorkers <= 16; maxWorkers <<= 1 {
		b.Run(fmt.Sprintf("Th%02d", maxWorkers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(s, orgSlice)
				b.StartTimer()
				parallel.Scan(s, minscan.Prefix, maxWorkers, 4096)
			}
		})
	}
}

func ExampleScan() {
	a := []int{5, 3, 8, 1, 9, 2, 7, 4}
	parallel.Scan(a, minscan.Prefix, 4, 1)
	fmt.Println(a)

	// Output:
	// [5 3 3 1 1 1 1 1]
}
