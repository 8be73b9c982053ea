package sat_test

import (
	"fmt"

	"github.com/rhartert/watchsat/internal/sat"
)

func ExampleSolver_Solutions() {
	// Problem: (a ∨ b) ∧ (¬a ∨ b)
	inst := sat.NewInstance()
	inst.ParseClause("a b")
	inst.ParseClause("~a b")

	s := sat.NewDefaultSolver(inst)
	for assignment := range s.Solutions() {
		fmt.Println(inst.AssignmentString(assignment, false, ""))
	}

	// Output:
	// ~a b
	// a b
}

func ExampleSolver_Solve() {
	inst := sat.NewInstance()
	inst.ParseClause("x")
	inst.ParseClause("~x")

	if _, ok := sat.NewDefaultSolver(inst).Solve(); !ok {
		fmt.Println("not satisfiable")
	}

	// Output:
	// not satisfiable
}
