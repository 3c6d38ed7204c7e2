// Package bench times the sequential and parallel minima scans over a set
// of input sizes and worker budgets, and formats the results as a table.
package bench

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/exascience/minscan"
	"github.com/exascience/minscan/parallel"
	"github.com/exascience/minscan/sequential"
)

var (
	// ErrSeedTooShort is returned when a requested input size exceeds the
	// number of integers in the seed.
	ErrSeedTooShort = errors.New("seed is shorter than the requested input size")

	// ErrMismatch is returned when verification finds a scan result that
	// differs from the reference minima.
	ErrMismatch = errors.New("scan result differs from reference")
)

// DefaultSizes are the input sizes of the original benchmark table.
var DefaultSizes = []int{4096, 8192, 16384, 32768, 65536, 131072, 262144}

// Config describes one benchmark run.
type Config struct {
	Sizes           []int
	Iterations      int
	MaxWorkers      int
	MinOpsPerWorker int
	// Verify compares every result with minscan.PrefixMinima and
	// minscan.SuffixMinima.
	Verify bool
}

// DefaultConfig returns the configuration of the original benchmark.
func DefaultConfig() Config {
	return Config{
		Sizes:           append([]int(nil), DefaultSizes...),
		Iterations:      1,
		MaxWorkers:      16,
		MinOpsPerWorker: 1024,
	}
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("no input sizes")
	}
	for _, n := range c.Sizes {
		if !minscan.IsPowerOfTwo(n) {
			return fmt.Errorf("input size %d is not a power of two", n)
		}
	}
	if c.Iterations < 1 {
		return fmt.Errorf("invalid number of iterations: %d", c.Iterations)
	}
	if !minscan.IsPowerOfTwo(c.MaxWorkers) {
		return fmt.Errorf("maximum number of workers %d is not a power of two", c.MaxWorkers)
	}
	if c.MinOpsPerWorker < 1 {
		return fmt.Errorf("invalid minimum operations per worker: %d", c.MinOpsPerWorker)
	}
	return nil
}

// Budgets returns the worker budgets 1, 2, 4, ... up to c.MaxWorkers.
func (c Config) Budgets() []int {
	var result []int
	for w := 1; w <= c.MaxWorkers; w <<= 1 {
		result = append(result, w)
	}
	return result
}

// A Timing summarizes the iterations of one configuration.
type Timing struct {
	Mean, StdDev time.Duration
}

// A Row holds the timings for one input size: the sequential scan first,
// then one entry per worker budget.
type Row struct {
	Size       int
	Iterations int
	Sequential Timing
	Parallel   []Timing
}

// A Report is the result of Run.
type Report struct {
	Budgets []int
	Rows    []Row
}

type strategy func(buffer []int, d minscan.Direction)

// Run benchmarks both strategies for every size in c, using the first n
// integers of seed as input of size n. Each iteration computes the prefix
// minima and then, from a fresh copy of the input, the suffix minima.
func Run(seed []int, c Config, logger *slog.Logger) (Report, error) {
	if err := c.Validate(); err != nil {
		return Report{}, err
	}
	report := Report{Budgets: c.Budgets()}
	for _, n := range c.Sizes {
		if n > len(seed) {
			return Report{}, fmt.Errorf("%w: size %d, seed %d", ErrSeedTooShort, n, len(seed))
		}
		input := seed[:n]
		row := Row{Size: n, Iterations: c.Iterations}

		var err error
		if row.Sequential, err = measure(input, c, sequential.Scan); err != nil {
			return Report{}, fmt.Errorf("sequential, size %d: %w", n, err)
		}
		logger.Debug("measured", "strategy", "sequential", "size", n, "mean", row.Sequential.Mean)

		for _, w := range report.Budgets {
			run := func(buffer []int, d minscan.Direction) {
				parallel.Scan(buffer, d, w, c.MinOpsPerWorker)
			}
			timing, err := measure(input, c, run)
			if err != nil {
				return Report{}, fmt.Errorf("parallel %d, size %d: %w", w, n, err)
			}
			logger.Debug("measured", "strategy", "parallel", "workers", w, "size", n, "mean", timing.Mean)
			row.Parallel = append(row.Parallel, timing)
		}
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}

func measure(input []int, c Config, s strategy) (Timing, error) {
	buffer := make([]int, len(input))
	samples := make([]float64, c.Iterations)
	for i := range samples {
		var elapsed time.Duration
		for _, d := range []minscan.Direction{minscan.Prefix, minscan.Suffix} {
			copy(buffer, input)
			start := time.Now()
			s(buffer, d)
			elapsed += time.Since(start)
			if c.Verify && !reflect.DeepEqual(buffer, minscan.Minima(input, d)) {
				return Timing{}, fmt.Errorf("%w: %v", ErrMismatch, d)
			}
		}
		samples[i] = elapsed.Seconds()
	}
	if len(samples) == 1 {
		return Timing{Mean: seconds(samples[0])}, nil
	}
	mean, std := stat.MeanStdDev(samples, nil)
	return Timing{Mean: seconds(mean), StdDev: seconds(std)}, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// formatSeconds renders d the way the original table does: seconds with
// six fractional digits.
func formatSeconds(d time.Duration) string {
	us := d.Microseconds()
	return fmt.Sprintf("%d.%06d", us/1000000, us%1000000)
}

// WriteTable writes r as a Markdown table with one column per strategy.
func (r Report) WriteTable(w io.Writer) error {
	var b strings.Builder
	b.WriteString("|NSize|Iterations|Seq|")
	for _, workers := range r.Budgets {
		fmt.Fprintf(&b, "Th%02d|", workers)
	}
	b.WriteString("\n")
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "| %d | %d | %s |", row.Size, row.Iterations, formatSeconds(row.Sequential.Mean))
		for _, timing := range row.Parallel {
			fmt.Fprintf(&b, " %s |", formatSeconds(timing.Mean))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
