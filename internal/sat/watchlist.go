package sat

import (
	"fmt"
	"io"
	"strings"
)

// watchlist indexes, for every literal, the FIFO queue of clauses
// currently watching that literal. A clause watches a single literal at
// a time, one that is not falsified under the current assignment; a
// clause whose watch cannot be moved off a falsified literal is
// contradicted.
//
// Watch moves are never undone on backtrack. When a variable is
// unassigned again, none of its literals is falsified anymore, so a
// watch left sitting on one of them is still a valid choice. This makes
// the structure safe to mutate destructively during speculative search
// without any checkpoint or rollback mechanism.
type watchlist struct {
	inst   *Instance
	queues []*Queue[Clause]
	trace  io.Writer
}

// newWatchlist builds the watchlist for the given instance. Each clause
// starts by watching its first literal. The choice of initial watch is
// free; picking the first literal keeps enumeration reproducible.
func newWatchlist(inst *Instance, trace io.Writer) *watchlist {
	wl := &watchlist{
		inst:   inst,
		queues: make([]*Queue[Clause], 2*inst.NumVariables()),
		trace:  trace,
	}
	for i := range wl.queues {
		wl.queues[i] = NewQueue[Clause](2)
	}
	for i := 0; i < inst.NumClauses(); i++ {
		c := inst.Clause(i)
		wl.queues[c[0]].Push(c)
	}
	return wl
}

// update processes the queue of clauses watching falseLit, which has
// just been falsified by the latest assignment, and moves each watch to
// a literal of the clause that is unassigned or true. It returns false
// if some clause admits no such literal: that clause is contradicted by
// the current assignment and the caller must backtrack. The contradicted
// clause stays at the front of falseLit's queue, which is where it must
// be once the falsifying assignment is retracted; clauses behind it are
// left unprocessed.
func (wl *watchlist) update(falseLit Literal, assignment []LBool) bool {
	q := wl.queues[falseLit]
	for !q.IsEmpty() {
		clause := q.Peek()
		foundAlternative := false
		for _, alt := range clause {
			if alt.Value(assignment) != False {
				foundAlternative = true
				q.Pop()
				wl.queues[alt].Push(clause)
				break
			}
		}
		if !foundAlternative {
			if wl.trace != nil {
				wl.dump(wl.trace)
				fmt.Fprintf(wl.trace, "current assignment: %s\n",
					wl.inst.AssignmentString(assignment, false, ""))
				fmt.Fprintf(wl.trace, "clause %s contradicted\n",
					wl.inst.ClauseString(clause))
			}
			return false
		}
	}
	return true
}

// dump writes the full watchlist to w, one line per literal.
func (wl *watchlist) dump(w io.Writer) {
	fmt.Fprintln(w, "current watchlist:")
	for i, q := range wl.queues {
		clauses := make([]string, 0, q.Size())
		for _, c := range q.Slice() {
			clauses = append(clauses, wl.inst.ClauseString(c))
		}
		fmt.Fprintf(w, "%s: %s\n",
			wl.inst.LiteralString(Literal(i)), strings.Join(clauses, ", "))
	}
}
