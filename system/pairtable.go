// SPDX-License-Identifier: MIT
package system

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/prism/matrix"
)

// Pair is an unordered site-type pair with I <= J.
type Pair struct {
	I, J int
	A, B string
}

func (p Pair) String() string { return p.A + "-" + p.B }

// PairTable stores one value per unordered type pair. (a,b) and (b,a) are
// the same entry.
type PairTable[T any] struct {
	types  []string
	index  map[string]int
	values []T
	set    []bool
}

// NewPairTable builds an empty table over the given types.
func NewPairTable[T any](types []string) (*PairTable[T], error) {
	index, err := indexTypes(types)
	if err != nil {
		return nil, err
	}
	n := matrix.PairCount(len(types))

	return &PairTable[T]{
		types:  append([]string(nil), types...),
		index:  index,
		values: make([]T, n),
		set:    make([]bool, n),
	}, nil
}

func indexTypes(types []string) (map[string]int, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("no types: %w", ErrBadTypes)
	}
	index := make(map[string]int, len(types))
	for i, t := range types {
		if strings.TrimSpace(t) == "" {
			return nil, fmt.Errorf("blank type at %d: %w", i, ErrBadTypes)
		}
		if _, dup := index[t]; dup {
			return nil, fmt.Errorf("duplicate type %q: %w", t, ErrBadTypes)
		}
		index[t] = i
	}

	return index, nil
}

func (t *PairTable[T]) slot(a, b string) (int, error) {
	i, ok := t.index[a]
	if !ok {
		return 0, fmt.Errorf("%q: %w", a, ErrUnknownType)
	}
	j, ok := t.index[b]
	if !ok {
		return 0, fmt.Errorf("%q: %w", b, ErrUnknownType)
	}

	return matrix.PairIndex(i, j, len(t.types)), nil
}

func (t *PairTable[T]) pair(p int) Pair {
	i, j := matrix.PairAt(p, len(t.types))

	return Pair{I: i, J: j, A: t.types[i], B: t.types[j]}
}

// Set stores v for the pair (a, b).
func (t *PairTable[T]) Set(a, b string, v T) error {
	p, err := t.slot(a, b)
	if err != nil {
		return err
	}
	t.values[p] = v
	t.set[p] = true

	return nil
}

// Get returns the value of (a, b); ErrPairUnset when it was never set.
func (t *PairTable[T]) Get(a, b string) (T, error) {
	var zero T
	p, err := t.slot(a, b)
	if err != nil {
		return zero, err
	}
	if !t.set[p] {
		return zero, fmt.Errorf("%s-%s: %w", a, b, ErrPairUnset)
	}

	return t.values[p], nil
}

// At returns the value at type indices (i, j) and whether it is set.
func (t *PairTable[T]) At(i, j int) (T, bool) {
	var zero T
	n := len(t.types)
	if i < 0 || j < 0 || i >= n || j >= n {
		return zero, false
	}
	p := matrix.PairIndex(i, j, n)

	return t.values[p], t.set[p]
}

// SetAll overwrites every pair with v.
func (t *PairTable[T]) SetAll(v T) {
	for p := range t.values {
		t.values[p] = v
		t.set[p] = true
	}
}

// FillUnset sets v on every pair that has no value and returns how many
// pairs it filled.
func (t *PairTable[T]) FillUnset(v T) int {
	filled := 0
	for p := range t.values {
		if !t.set[p] {
			t.values[p] = v
			t.set[p] = true
			filled++
		}
	}

	return filled
}

// Unset lists the pairs without a value in pair order.
func (t *PairTable[T]) Unset() []Pair {
	var out []Pair
	for p, ok := range t.set {
		if !ok {
			out = append(out, t.pair(p))
		}
	}

	return out
}

// Pairs lists every pair in pair order.
func (t *PairTable[T]) Pairs() []Pair {
	out := make([]Pair, len(t.values))
	for p := range out {
		out[p] = t.pair(p)
	}

	return out
}

// Each calls fn for every set pair in pair order.
func (t *PairTable[T]) Each(fn func(p Pair, v T)) {
	for p, v := range t.values {
		if t.set[p] {
			fn(t.pair(p), v)
		}
	}
}
