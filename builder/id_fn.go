// SPDX-License-Identifier: MIT
// Package: relaxviz/builder
//
// id_fn.go: vertex ID schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be a pure, deterministic function.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// AlphabetIDFn maps idx to the idx-th rune of alphabet, e.g. "ABCDEF": 2→"C".
// Panics on an empty alphabet; the returned IDFn panics if idx is out of range.
func AlphabetIDFn(alphabet string) IDFn {
	runes := []rune(alphabet)
	if len(runes) == 0 {
		panic("AlphabetIDFn: empty alphabet")
	}
	return func(idx int) string {
		if idx < 0 || idx >= len(runes) {
			panic(fmt.Sprintf("AlphabetIDFn: idx must be in [0,%d], got %d", len(runes)-1, idx))
		}
		return string(runes[idx])
	}
}

// WithAlphabet sets the ID scheme to AlphabetIDFn(alphabet).
func WithAlphabet(alphabet string) BuilderOption {
	return WithIDScheme(AlphabetIDFn(alphabet))
}
