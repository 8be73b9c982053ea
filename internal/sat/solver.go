package sat

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

// Algorithm selects which form of the backtracking search the solver
// runs. Both forms realize the same state machine and produce the same
// solutions in the same order.
type Algorithm int

const (
	Iterative Algorithm = iota
	Recursive
)

func (a Algorithm) String() string {
	switch a {
	case Iterative:
		return "iterative"
	case Recursive:
		return "recursive"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

type Options struct {
	Algorithm Algorithm

	// Trace is the destination of the diagnostic trace: one line per
	// trial and a watchlist/assignment dump per contradiction. A nil
	// Trace disables tracing. Tracing has no effect on the search
	// itself.
	Trace io.Writer
}

var DefaultOptions = Options{
	Algorithm: Iterative,
	Trace:     nil,
}

// Solver enumerates the satisfying assignments of an instance using
// depth-first backtracking search over the variables in ID order,
// pruned by a watchlist. Solvers are not safe for concurrent use.
type Solver struct {
	inst      *Instance
	algorithm Algorithm
	trace     io.Writer

	// Search statistics, updated as the enumeration is consumed.
	TotalTrials         int64
	TotalContradictions int64
}

// NewDefaultSolver returns a solver configured with default options.
// This is equivalent to calling NewSolver with DefaultOptions.
func NewDefaultSolver(inst *Instance) *Solver {
	return NewSolver(inst, DefaultOptions)
}

func NewSolver(inst *Instance, ops Options) *Solver {
	return &Solver{
		inst:      inst,
		algorithm: ops.Algorithm,
		trace:     ops.Trace,
	}
}

// Solutions returns the sequence of assignments satisfying the
// instance. The sequence is lazy: the search only runs as far as needed
// to produce the next solution, and stopping early requires no cleanup.
//
// The yielded slice is the solver's working buffer, indexed by variable
// ID. It is only valid until the enumeration resumes; callers that
// retain a solution must copy it first (see [Solver.Solve] or
// [slices.Clone]).
//
// Values are tried false first, then true, so solutions are enumerated
// in increasing order of the assignment read as a binary number. An
// instance with zero variables has an empty watchlist and yields no
// solutions.
func (s *Solver) Solutions() iter.Seq[[]LBool] {
	if s.algorithm == Recursive {
		return s.solveRecursive()
	}
	return s.solveIterative()
}

// Solve returns the first satisfying assignment, or false if the
// instance is unsatisfiable. The returned slice is a copy and remains
// valid indefinitely.
func (s *Solver) Solve() ([]LBool, bool) {
	for assignment := range s.Solutions() {
		return slices.Clone(assignment), true
	}
	return nil, false
}

// falseLiteral returns the literal over variable varID that is
// falsified by assigning the variable the given value: assigning true
// falsifies the negation, assigning false the variable itself.
func falseLiteral(varID int, value bool) Literal {
	if value {
		return NegativeLiteral(varID)
	}
	return PositiveLiteral(varID)
}

func (s *Solver) tryValue(wl *watchlist, assignment []LBool, varID int, value bool) bool {
	if s.trace != nil {
		fmt.Fprintf(s.trace, "trying %s = %s\n", s.inst.VarName(varID), Lift(value))
	}
	s.TotalTrials++
	assignment[varID] = Lift(value)
	if wl.update(falseLiteral(varID, value), assignment) {
		return true
	}
	s.TotalContradictions++
	return false
}

// solveIterative runs the search as an explicit state machine: a depth
// counter, the shared assignment buffer, and a per-depth record of
// which values have been tried (bit 0 for false, bit 1 for true).
func (s *Solver) solveIterative() iter.Seq[[]LBool] {
	return func(yield func([]LBool) bool) {
		n := s.inst.NumVariables()
		if n == 0 {
			return
		}
		wl := newWatchlist(s.inst, s.trace)
		assignment := make([]LBool, n)
		tried := make([]uint8, n)

		d := 0
		for {
			if d == n {
				if !yield(assignment) {
					return
				}
				// Backtrack into the last variable to look for more
				// solutions.
				d--
				continue
			}

			triedValue := false
			for bit := uint8(0); bit < 2; bit++ {
				if tried[d]&(1<<bit) != 0 {
					continue
				}
				tried[d] |= 1 << bit
				triedValue = true
				if s.tryValue(wl, assignment, d, bit == 1) {
					d++
					break
				}
				assignment[d] = Unknown
			}

			if !triedValue {
				// Both values failed at this depth.
				if d == 0 {
					return
				}
				tried[d] = 0
				assignment[d] = Unknown
				d--
			}
		}
	}
}

// solveRecursive runs the same search with the depth state on the call
// stack instead.
func (s *Solver) solveRecursive() iter.Seq[[]LBool] {
	return func(yield func([]LBool) bool) {
		n := s.inst.NumVariables()
		if n == 0 {
			return
		}
		wl := newWatchlist(s.inst, s.trace)
		assignment := make([]LBool, n)
		s.recurse(wl, assignment, 0, yield)
	}
}

// recurse tries both values of the variable at depth d and descends on
// success. It returns false when the consumer stopped the enumeration.
func (s *Solver) recurse(wl *watchlist, assignment []LBool, d int, yield func([]LBool) bool) bool {
	if d == len(assignment) {
		return yield(assignment)
	}
	for _, value := range [2]bool{false, true} {
		if !s.tryValue(wl, assignment, d, value) {
			continue
		}
		if !s.recurse(wl, assignment, d+1, yield) {
			return false
		}
	}
	assignment[d] = Unknown
	return true
}
