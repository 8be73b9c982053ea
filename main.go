// Command watchsat decides satisfiability of a boolean formula in
// clausal form and enumerates its satisfying assignments, using a
// watchlist-based backtracking search.
//
// By default the input is read from stdin in the clause-per-line
// format: one clause per line, literals separated by whitespace, '~'
// negating a variable, '#' starting a comment line. The -dimacs flag
// switches to DIMACS CNF input instead.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/mitchellh/mapstructure"
	"github.com/rhartert/watchsat/internal/parsers"
	"github.com/rhartert/watchsat/internal/sat"
	"github.com/samber/lo"
)

var flagRecursive = flag.Bool(
	"r",
	false,
	"use the recursive form of the search instead of the iterative one",
)

var flagVerbose = flag.Bool(
	"v",
	false,
	"write a trace of trials and contradictions to stderr",
)

var flagAll = flag.Bool(
	"a",
	false,
	"enumerate all satisfying assignments instead of the first one",
)

var flagBrief = flag.Bool(
	"brief",
	false,
	"only print variables assigned true",
)

var flagPrefix = flag.String(
	"prefix",
	"",
	"only print variables whose name starts with the given prefix",
)

var flagDIMACS = flag.Bool(
	"dimacs",
	false,
	"read the input as DIMACS CNF instead of the clause-per-line format",
)

var flagGzip = flag.Bool(
	"gzip",
	false,
	"treat the input file as gzip compressed",
)

var flagConfig = flag.String(
	"config",
	"",
	"JSON file providing defaults for the other flags",
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

type config struct {
	instanceFile string
	recursive    bool
	verbose      bool
	all          bool
	brief        bool
	prefix       string
	dimacs       bool
	gzipped      bool
	cpuProfile   bool
	memProfile   bool
}

// fileConfig is the shape of the optional -config JSON file.
type fileConfig struct {
	Algorithm string `mapstructure:"algorithm"`
	Verbose   bool   `mapstructure:"verbose"`
	All       bool   `mapstructure:"all"`
	Brief     bool   `mapstructure:"brief"`
	Prefix    string `mapstructure:"prefix"`
}

var validAlgorithms = []string{"iterative", "recursive"}

func parseConfig() (*config, error) {
	flag.Parse()

	cfg := &config{
		recursive:  *flagRecursive,
		verbose:    *flagVerbose,
		all:        *flagAll,
		brief:      *flagBrief,
		prefix:     *flagPrefix,
		dimacs:     *flagDIMACS,
		gzipped:    *flagGzip,
		cpuProfile: *flagCPUProfile,
		memProfile: *flagMemProfile,
	}
	if flag.NArg() > 0 {
		cfg.instanceFile = flag.Arg(0)
	}

	if *flagConfig != "" {
		if err := applyConfigFile(cfg, *flagConfig); err != nil {
			return nil, fmt.Errorf("could not apply config file: %s", err)
		}
	}
	return cfg, nil
}

// applyConfigFile fills cfg with the values of the JSON config file,
// keeping any value that was set explicitly on the command line.
func applyConfigFile(cfg *config, filename string) error {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	configJSON := map[string]any{}
	if err := json.Unmarshal(raw, &configJSON); err != nil {
		return err
	}
	fc := fileConfig{Algorithm: "iterative"}
	if err := mapstructure.Decode(configJSON, &fc); err != nil {
		return err
	}
	if !lo.Contains(validAlgorithms, fc.Algorithm) {
		return fmt.Errorf("%q is not a valid algorithm (valid: %v)", fc.Algorithm, validAlgorithms)
	}

	setFlags := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	if !setFlags["r"] {
		cfg.recursive = fc.Algorithm == "recursive"
	}
	if !setFlags["v"] {
		cfg.verbose = fc.Verbose
	}
	if !setFlags["a"] {
		cfg.all = fc.All
	}
	if !setFlags["brief"] {
		cfg.brief = fc.Brief
	}
	if !setFlags["prefix"] {
		cfg.prefix = fc.Prefix
	}
	return nil
}

func loadInstance(cfg *config) (*sat.Instance, error) {
	if cfg.instanceFile == "" {
		if cfg.dimacs {
			return nil, fmt.Errorf("DIMACS input requires an instance file")
		}
		return parsers.LoadFormula(os.Stdin)
	}
	if cfg.dimacs {
		return parsers.LoadDIMACS(cfg.instanceFile, cfg.gzipped)
	}
	return parsers.LoadFormulaFile(cfg.instanceFile, cfg.gzipped)
}

func solverOptions(cfg *config) sat.Options {
	options := sat.DefaultOptions
	if cfg.recursive {
		options.Algorithm = sat.Recursive
	}
	if cfg.verbose {
		options.Trace = os.Stderr
	}
	return options
}

func run(cfg *config) error {
	instance, err := loadInstance(cfg)
	if err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	s := sat.NewSolver(instance, solverOptions(cfg))

	found := false
	for assignment := range s.Solutions() {
		fmt.Println(instance.AssignmentString(assignment, cfg.brief, cfg.prefix))
		found = true
		if !cfg.all {
			break
		}
	}

	if cfg.verbose {
		if !found {
			fmt.Fprintln(os.Stderr, "no satisfying assignment exists.")
		}
		fmt.Fprintf(os.Stderr, "trials:         %d\n", s.TotalTrials)
		fmt.Fprintf(os.Stderr, "contradictions: %d\n", s.TotalContradictions)
	}
	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
