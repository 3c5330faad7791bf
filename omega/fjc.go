// SPDX-License-Identifier: MIT
package omega

import (
	"fmt"
	"math"
	"strings"
)

// bondFactor is sin(kl)/(kl), 1 at k = 0.
func bondFactor(k, l float64) float64 {
	x := k * l
	if x == 0 {
		return 1
	}

	return math.Sin(x) / x
}

// FreelyJointedChain is a chain of Length sites joined by bonds of BondLength.
type FreelyJointedChain struct {
	Length     int
	BondLength float64
}

// NewFreelyJointedChain validates length >= 1 and l > 0.
func NewFreelyJointedChain(length int, l float64) (*FreelyJointedChain, error) {
	if err := checkChain("FreelyJointedChain", l, length); err != nil {
		return nil, err
	}

	return &FreelyJointedChain{Length: length, BondLength: l}, nil
}

// Calculate implements Omega with E = sin(kl)/(kl).
// Complexity: O(len(k)).
func (f *FreelyJointedChain) Calculate(k []float64) ([]float64, error) {
	if err := checkChain("FreelyJointedChain", f.BondLength, f.Length); err != nil {
		return nil, err
	}
	out := make([]float64, len(k))
	for i, kv := range k {
		out[i] = chain(bondFactor(kv, f.BondLength), f.Length)
	}

	return out, nil
}

func (f *FreelyJointedChain) String() string {
	return fmt.Sprintf("Omega<FreelyJointedChain N=%d l=%g>", f.Length, f.BondLength)
}

// FreelyJointedCopolymer is the freely jointed chain correlation restricted to
// the sites labelled pair1 and pair2 of a copolymer sequence.
//
//	same labels:  ω = Σ_{i,j∈I} E^{|i−j|} / |I|
//	distinct:     ω = Σ_{i∈I₁, j∈I₂} E^{|i−j|} / (|I₁| + |I₂|)
//
// The index pairs are collapsed at construction into a histogram of
// separations, so Calculate costs O(len(k)·len(sequence)).
type FreelyJointedCopolymer struct {
	sequence []string
	l        float64
	pair1    string
	pair2    string

	hist []float64 // hist[d] = number of ordered index pairs at separation d
	norm float64
}

// NewFreelyJointedCopolymer builds the separation histogram of the two labels.
// Stage 1 (Validate): l > 0, non-empty sequence, both labels present.
// Stage 2 (Histogram): count index pairs by |i−j|.
// Complexity: O(|I₁|·|I₂|).
func NewFreelyJointedCopolymer(sequence []string, l float64, pair1, pair2 string) (*FreelyJointedCopolymer, error) {
	if err := checkChain("FreelyJointedCopolymer", l, len(sequence)); err != nil {
		return nil, err
	}
	var idx1, idx2 []int
	for i, s := range sequence {
		if s == pair1 {
			idx1 = append(idx1, i)
		}
		if s == pair2 {
			idx2 = append(idx2, i)
		}
	}
	if len(idx1) == 0 {
		return nil, fmt.Errorf("FreelyJointedCopolymer: %q: %w", pair1, ErrLabelNotInSequence)
	}
	if len(idx2) == 0 {
		return nil, fmt.Errorf("FreelyJointedCopolymer: %q: %w", pair2, ErrLabelNotInSequence)
	}

	f := &FreelyJointedCopolymer{
		sequence: append([]string(nil), sequence...),
		l:        l,
		pair1:    pair1,
		pair2:    pair2,
		hist:     make([]float64, len(sequence)),
	}
	for _, i := range idx1 {
		for _, j := range idx2 {
			d := i - j
			if d < 0 {
				d = -d
			}
			f.hist[d]++
		}
	}
	if pair1 == pair2 {
		f.norm = float64(len(idx1))
	} else {
		f.norm = float64(len(idx1) + len(idx2))
	}

	return f, nil
}

// Calculate implements Omega.
func (f *FreelyJointedCopolymer) Calculate(k []float64) ([]float64, error) {
	out := make([]float64, len(k))
	for i, kv := range k {
		e := bondFactor(kv, f.l)
		sum, pow := 0.0, 1.0
		for d, c := range f.hist {
			if d > 0 {
				pow *= e
			}
			sum += c * pow
		}
		out[i] = sum / f.norm
	}

	return out, nil
}

func (f *FreelyJointedCopolymer) String() string {
	return fmt.Sprintf("Omega<FreelyJointedCopolymer %s-%s seq=%s l=%g>",
		f.pair1, f.pair2, strings.Join(f.sequence, ""), f.l)
}
