// SPDX-License-Identifier: MIT
package domain_test

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/prism/domain"
)

// ExampleDomain_ToFourier transforms a step function and back.
func ExampleDomain_ToFourier() {
	d, err := domain.New(0.5, 8)
	if err != nil {
		fmt.Println(err)
		return
	}
	f := []float64{1, 1, 1, 0, 0, 0, 0, 0}
	fk := make([]float64, d.Length())
	back := make([]float64, d.Length())
	_ = d.ToFourier(fk, f)
	_ = d.ToReal(back, fk)

	cells := make([]string, len(back))
	for i, v := range back {
		cells[i] = fmt.Sprint(int(math.Round(v)))
	}
	fmt.Println(strings.Join(cells, " "))
	fmt.Println(d)
	// Output:
	// 1 1 1 0 0 0 0 0
	// Domain(dr=0.5, dk=0.698132, length=8)
}
