// SPDX-License-Identifier: MIT
package solver

// State is the lifecycle stage of a PRISM solver.
type State int

const (
	Unconfigured State = iota
	Assembled
	Iterating
	Converged
	Failed
)

func (s State) String() string {
	switch s {
	case Unconfigured:
		return "Unconfigured"
	case Assembled:
		return "Assembled"
	case Iterating:
		return "Iterating"
	case Converged:
		return "Converged"
	case Failed:
		return "Failed"
	default:
		return "State(?)"
	}
}
