package main

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rhartert/watchsat/internal/parsers"
	"github.com/rhartert/watchsat/internal/sat"
	"github.com/samber/lo"
)

// This test suite verifies that the solver finds the exact set of
// models of each instance in testdata, with both forms of the search.
//
// Each test case is a pair of files:
//
//   - An instance file containing a DIMACS CNF instance, with the
//     ".cnf" file extension.
//   - A models file containing the (possibly empty) set of the
//     instance's models, one model per line using the same literals as
//     in the instance file, with the ".cnf.models" file extension.
var testdataDir = "testdata"

type testCase struct {
	instanceName string
	instanceFile string
	modelsFile   string
}

func listTestCases(dir string) ([]testCase, error) {
	testCases := []testCase{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".cnf") {
			return nil
		}
		testCases = append(testCases, testCase{
			instanceName: d.Name(),
			instanceFile: path,
			modelsFile:   path + ".models",
		})
		return nil
	})
	return testCases, err
}

// toString returns a binary string representation of the given model.
// For example, model [true, false, false] results in string "100".
func toString(model []bool) string {
	s := make([]byte, 0, len(model))
	for _, b := range model {
		if b {
			s = append(s, '1')
		} else {
			s = append(s, '0')
		}
	}
	return string(s)
}

// toSet converts a slice of models into a set of binary strings.
func toSet(models [][]bool) map[string]struct{} {
	keys := lo.Map(models, func(m []bool, _ int) string { return toString(m) })
	return lo.SliceToMap(keys, func(k string) (string, struct{}) { return k, struct{}{} })
}

// solveAll returns all the instance's models, in enumeration order.
func solveAll(inst *sat.Instance, algorithm sat.Algorithm) [][]bool {
	var models [][]bool
	s := sat.NewSolver(inst, sat.Options{Algorithm: algorithm})
	for assignment := range s.Solutions() {
		model := make([]bool, len(assignment))
		for i, v := range assignment {
			model[i] = v.Bool()
		}
		models = append(models, model)
	}
	return models
}

func TestSolveAll(t *testing.T) {
	testCases, err := listTestCases(testdataDir)
	if err != nil {
		t.Fatalf("Error listing test cases: %s", err)
	}
	if len(testCases) == 0 {
		t.Fatal("no test cases found")
	}

	for _, tc := range testCases {
		t.Run(tc.instanceName, func(t *testing.T) {
			t.Parallel()

			want, err := parsers.ReadModels(tc.modelsFile)
			if err != nil {
				t.Fatalf("Model parsing error: %s", err)
			}

			for _, algorithm := range []sat.Algorithm{sat.Iterative, sat.Recursive} {
				inst, err := parsers.LoadDIMACS(tc.instanceFile, false)
				if err != nil {
					t.Fatalf("Instance parsing error: %s", err)
				}

				got := solveAll(inst, algorithm)

				if len(got) != len(want) {
					t.Errorf("[%s] incorrect number of models: got %d, want %d",
						algorithm, len(got), len(want))
				}
				if !cmp.Equal(toSet(got), toSet(want)) {
					t.Errorf("[%s] model mismatch", algorithm)
				}
			}
		})
	}
}

// TestSolveAll_formsAgree verifies that the two forms of the search
// enumerate the models of every testdata instance in the same order.
func TestSolveAll_formsAgree(t *testing.T) {
	testCases, err := listTestCases(testdataDir)
	if err != nil {
		t.Fatalf("Error listing test cases: %s", err)
	}

	for _, tc := range testCases {
		t.Run(tc.instanceName, func(t *testing.T) {
			inst, err := parsers.LoadDIMACS(tc.instanceFile, false)
			if err != nil {
				t.Fatalf("Instance parsing error: %s", err)
			}
			gotIterative := solveAll(inst, sat.Iterative)

			inst, err = parsers.LoadDIMACS(tc.instanceFile, false)
			if err != nil {
				t.Fatalf("Instance parsing error: %s", err)
			}
			gotRecursive := solveAll(inst, sat.Recursive)

			if !slices.EqualFunc(gotIterative, gotRecursive, slices.Equal) {
				t.Errorf("enumeration order differs:\niterative: %v\nrecursive: %v",
					gotIterative, gotRecursive)
			}
		})
	}
}
