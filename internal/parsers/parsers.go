// Package parsers loads SAT instances from their textual forms: the
// simple clause-per-line formula format and DIMACS CNF.
package parsers

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rhartert/dimacs"
	"github.com/rhartert/watchsat/internal/sat"
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadFormula reads a formula in the clause-per-line format: each line
// is one clause of whitespace-separated literals, a literal being a
// variable name optionally prefixed with '~'. Blank lines and lines
// starting with '#' are ignored. Variable names are interned in order
// of first appearance.
func LoadFormula(r io.Reader) (*sat.Instance, error) {
	inst := sat.NewInstance()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inst.ParseClause(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return inst, nil
}

// LoadFormulaFile is LoadFormula reading from the given file, which may
// be gzip compressed.
func LoadFormulaFile(filename string, gzipped bool) (*sat.Instance, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()
	return LoadFormula(r)
}

// LoadDIMACS parses the DIMACS CNF file and returns the corresponding
// instance. Variable k of the DIMACS file is named "k", so variables
// are interned in numeric order.
func LoadDIMACS(filename string, gzipped bool) (*sat.Instance, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &builder{inst: sat.NewInstance()}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.inst, nil
}

// builder wraps an instance to implement dimacs.Builder.
type builder struct {
	inst *sat.Instance
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem")
	}
	for k := 1; k <= nVars; k++ {
		b.inst.Var(strconv.Itoa(k))
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	if len(tmpClause) == 0 {
		return fmt.Errorf("empty clause")
	}
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			clause[i] = sat.NegativeLiteral(b.inst.Var(strconv.Itoa(-l)))
		} else {
			clause[i] = sat.PositiveLiteral(b.inst.Var(strconv.Itoa(l)))
		}
	}
	b.inst.AddClause(clause)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// ReadModels returns the list of models (if any) contained in the given
// file, one model per line using the same literals as the corresponding
// DIMACS instance file.
func ReadModels(filename string) ([][]bool, error) {
	r, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files should not have problem lines")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil // ignore comments
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
