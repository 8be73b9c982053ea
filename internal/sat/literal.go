package sat

import "fmt"

// Literal represents a boolean variable or its negation. A literal is
// encoded as varID<<1 for the variable itself and varID<<1|1 for its
// negation, so the literals of an n-variable instance occupy the dense
// range [0, 2n) and can index slices directly.
type Literal int

// PositiveLiteral returns the literal representing the given variable.
func PositiveLiteral(varID int) Literal {
	return Literal(varID << 1)
}

// NegativeLiteral returns the literal representing the negation of the
// given variable.
func NegativeLiteral(varID int) Literal {
	return PositiveLiteral(varID).Opposite()
}

// VarID returns the ID of the literal's variable.
func (l Literal) VarID() int {
	return int(l >> 1)
}

// IsPositive returns true if and only if the literal represents the
// value of its variable (i.e. not its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the opposite literal. Opposite is an involution:
// l.Opposite().Opposite() == l.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

// Value returns the value of the literal under the given assignment:
// True if the literal is satisfied, False if it is falsified, and
// Unknown if its variable is unassigned.
func (l Literal) Value(assignment []LBool) LBool {
	v := assignment[l.VarID()]
	if l.IsPositive() {
		return v
	}
	return v.Opposite()
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("~%d", l.VarID())
}
