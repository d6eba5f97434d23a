// Package ioutil parses the whitespace-separated ASCII double format shared
// by every axis and coefficient data file in the catalog.
package ioutil

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

// ParseDoubles reads exactly want whitespace-separated floating point tokens
// from path. It returns ErrMalformed wrapped with context if fewer tokens
// are present or a token fails to parse. Extra trailing tokens are ignored.
func ParseDoubles(path string, want int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	defer f.Close()

	out := make([]float64, 0, want)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	for len(out) < want && sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: token %q: %w", path, sc.Text(), ErrMalformed)
		}
		out = append(out, v)
	}
	if len(out) < want {
		return nil, fmt.Errorf("%s: got %d of %d values: %w", path, len(out), want, ErrMalformed)
	}
	return out, nil
}
