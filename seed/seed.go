// Package seed reads the integer arrays that seed the benchmark.
//
// A seed file is plain text holding decimal integers separated by any
// amount of white space, including line breaks. There is no header and no
// count; the array ends with the file.
package seed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrEmpty is returned when a seed contains no integers.
var ErrEmpty = errors.New("seed contains no integers")

// A SyntaxError reports a token that is not a decimal integer.
type SyntaxError struct {
	Index int
	Token string
	Err   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("seed token %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Read parses all integers from r.
func Read(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var result []int
	for scanner.Scan() {
		token := scanner.Text()
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, &SyntaxError{Index: len(result), Token: token, Err: err}
		}
		result = append(result, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading seed: %w", err)
	}
	if len(result) == 0 {
		return nil, ErrEmpty
	}
	return result, nil
}

// ReadFile parses all integers from the named file.
func ReadFile(name string) ([]int, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening seed: %w", err)
	}
	defer f.Close()
	result, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return result, nil
}

// Write writes a as a single line of space separated integers, the format
// Read accepts.
func Write(w io.Writer, a []int) error {
	bw := bufio.NewWriter(w)
	for i, v := range a {
		if i > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(strconv.Itoa(v)); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
