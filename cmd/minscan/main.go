// Command minscan benchmarks the sequential and parallel prefix/suffix
// minima scans on a seed array read from a text file, and prints one table
// row per input size.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/exascience/minscan/bench"
	"github.com/exascience/minscan/seed"
)

func parseSizes(s string) ([]int, error) {
	var result []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", field, err)
		}
		result = append(result, n)
	}
	return result, nil
}

func newLogger(level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

func cpuInfo() string {
	return fmt.Sprintf("%s/%s GOMAXPROCS=%d AVX2=%v AVX512F=%v ASIMD=%v",
		runtime.GOOS, runtime.GOARCH, runtime.GOMAXPROCS(0),
		cpu.X86.HasAVX2, cpu.X86.HasAVX512F, cpu.ARM64.HasASIMD)
}

func generate(name string, n int) error {
	a := make([]int, n)
	for i := range a {
		a[i] = int(rand.Int31())
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := seed.Write(f, a); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func run() int {
	defaults := bench.DefaultConfig()
	file := flag.String("file", "", "seed file of whitespace separated integers")
	sizes := flag.String("sizes", "", "comma separated input sizes, powers of two (default 4096..262144)")
	iterations := flag.Int("iterations", defaults.Iterations, "timed iterations per configuration")
	maxWorkers := flag.Int("max-workers", defaults.MaxWorkers, "largest worker budget, a power of two")
	minOps := flag.Int("min-ops", defaults.MinOpsPerWorker, "minimum elements per worker")
	verify := flag.Bool("verify", false, "check every result against a linear reference scan")
	gen := flag.Int("generate", 0, "write this many random integers to -file and exit")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	logFormat := flag.String("log-format", "text", "text or json")
	flag.Parse()

	logger, err := newLogger(*logLevel, *logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid logging flags: %v\n", err)
		return 2
	}
	if *file == "" {
		logger.Error("please specify the data file with -file")
		return 2
	}

	if *gen > 0 {
		if err := generate(*file, *gen); err != nil {
			logger.Error("generating seed failed", "file", *file, "err", err)
			return 1
		}
		logger.Info("seed written", "file", *file, "count", *gen)
		return 0
	}

	c := defaults
	c.Iterations, c.MaxWorkers, c.MinOpsPerWorker, c.Verify = *iterations, *maxWorkers, *minOps, *verify
	if *sizes != "" {
		if c.Sizes, err = parseSizes(*sizes); err != nil {
			logger.Error("invalid -sizes", "err", err)
			return 2
		}
	}
	if err := c.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		return 2
	}

	a, err := seed.ReadFile(*file)
	if err != nil {
		logger.Error("cannot read seed", "err", err)
		return 1
	}
	logger.Info("seed loaded", "file", *file, "count", len(a), "cpu", cpuInfo())

	report, err := bench.Run(a, c, logger)
	if err != nil {
		logger.Error("benchmark failed", "err", err)
		return 1
	}
	if err := report.WriteTable(os.Stdout); err != nil {
		logger.Error("writing table failed", "err", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
