package sat

import (
	"strings"
)

// Clause is a disjunction of literals. Clauses are never modified once
// added to an instance.
type Clause []Literal

func (c Clause) String() string {
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	for i, l := range c {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Instance is a boolean formula in clausal form: a list of named
// variables and a list of clauses over those variables. An instance
// carries no assignment or search state and is read-only once built.
type Instance struct {
	variables []string
	varIndex  map[string]int
	clauses   []Clause

	// Scratch set shared between AddClause calls to deduplicate the
	// literals of a clause.
	seenLits resetSet
}

func NewInstance() *Instance {
	return &Instance{varIndex: map[string]int{}}
}

// NumVariables returns the number of distinct variables interned so
// far.
func (in *Instance) NumVariables() int {
	return len(in.variables)
}

// NumClauses returns the number of clauses added so far.
func (in *Instance) NumClauses() int {
	return len(in.clauses)
}

// Clause returns the i-th clause of the instance. The caller must not
// modify it.
func (in *Instance) Clause(i int) Clause {
	return in.clauses[i]
}

// Var returns the ID of the variable with the given name, interning the
// name at the next free ID if it has not been seen before.
func (in *Instance) Var(name string) int {
	if id, ok := in.varIndex[name]; ok {
		return id
	}
	id := len(in.variables)
	in.variables = append(in.variables, name)
	in.varIndex[name] = id
	in.seenLits.Expand()
	return id
}

// VarName returns the name of the variable with the given ID.
func (in *Instance) VarName(varID int) string {
	return in.variables[varID]
}

// AddClause adds a clause with the given literals to the instance.
// Duplicate literals are dropped, keeping the first occurrence of each.
// A variable and its negation may both appear: the resulting clause is
// trivially satisfiable but is not treated specially.
func (in *Instance) AddClause(literals []Literal) {
	in.seenLits.Clear()
	clause := make(Clause, 0, len(literals))
	for _, l := range literals {
		if in.seenLits.Contains(l) {
			continue
		}
		in.seenLits.Add(l)
		clause = append(clause, l)
	}
	in.clauses = append(in.clauses, clause)
}

// ParseClause parses a textual clause and adds it to the instance. A
// clause is a whitespace-separated list of tokens, each a variable name
// optionally preceded by '~' to negate it. New variable names are
// interned in order of first appearance. The line must not be blank or
// a comment; filtering those out is the concern of the caller.
func (in *Instance) ParseClause(line string) {
	tokens := strings.Fields(line)
	literals := make([]Literal, 0, len(tokens))
	for _, tok := range tokens {
		name, negated := strings.CutPrefix(tok, "~")
		varID := in.Var(name)
		if negated {
			literals = append(literals, NegativeLiteral(varID))
		} else {
			literals = append(literals, PositiveLiteral(varID))
		}
	}
	in.AddClause(literals)
}

// LiteralString renders a literal using its variable's name, prefixing
// '~' if the literal is negated.
func (in *Instance) LiteralString(l Literal) string {
	if l.IsPositive() {
		return in.variables[l.VarID()]
	}
	return "~" + in.variables[l.VarID()]
}

// ClauseString renders a clause as a space-separated list of named
// literals, i.e. in the same format accepted by ParseClause.
func (in *Instance) ClauseString(c Clause) string {
	sb := strings.Builder{}
	for i, l := range c {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(in.LiteralString(l))
	}
	return sb.String()
}

// AssignmentString renders an assignment as a space-separated list of
// variable names, prefixing '~' on variables assigned false. Unassigned
// variables are omitted. If brief is set, only variables assigned true
// are listed. If prefix is non-empty, only variables whose name starts
// with prefix are listed.
func (in *Instance) AssignmentString(assignment []LBool, brief bool, prefix string) string {
	sb := strings.Builder{}
	for varID, name := range in.variables {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		switch assignment[varID] {
		case False:
			if brief {
				continue
			}
			name = "~" + name
		case Unknown:
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(name)
	}
	return sb.String()
}
