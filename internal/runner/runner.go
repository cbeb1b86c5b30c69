// Package runner is the benchmark-runner collaborator spec.md treats as
// external to the engine: it selects a corpus of CNF files, invokes a chosen
// search variant on each, and reports satisfiability, wall-time and
// recursive-entry counts. Adapted from the Python original's
// run_dp_on_files/main() pair, which globs a SAT and a non-SAT folder,
// optionally extends or replaces that list with larger fixed instances, and
// repeats each file --num_runs times while summing elapsed time.
package runner

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/tevian/dpsat/internal/dimacsio"
	"github.com/tevian/dpsat/internal/engine"
)

// Algorithm is the common shape every search variant is adapted to so the
// runner can dispatch on a string name. numVars is unused by the four
// pure-CNF variants but threaded through uniformly since dpll_watchers needs
// it to size its database.
type Algorithm func(clauses engine.CNF, numVars int, counter *engine.Counter, logger engine.Logger) engine.Status

// Algorithms maps every CLI --algorithm value to its entry point, mirroring
// the Python original's Algorithms.str_to_algorithm table.
var Algorithms = map[string]Algorithm{
	"dp_default": func(c engine.CNF, _ int, ctr *engine.Counter, l engine.Logger) engine.Status {
		return engine.DPBaseline(c, ctr, l)
	},
	"dp": func(c engine.CNF, _ int, ctr *engine.Counter, l engine.Logger) engine.Status {
		return engine.DP(c, ctr, l)
	},
	"dpll": func(c engine.CNF, _ int, ctr *engine.Counter, l engine.Logger) engine.Status {
		return engine.DPLL(c, ctr, l)
	},
	"classical_dpll": func(c engine.CNF, _ int, ctr *engine.Counter, l engine.Logger) engine.Status {
		return engine.ClassicalDPLL(c, ctr, l)
	},
	"dpll_watchers": func(c engine.CNF, n int, ctr *engine.Counter, l engine.Logger) engine.Status {
		return engine.DPLLWatchers(c, n, ctr, l)
	},
}

// Default corpus globs, mirroring the Python original's sat_folder/
// non_sat_folder. Large fixed instances are appended (--run_on_large_cnf) or
// substituted entirely (--run_on_large_cnf_only) for the default globs.
const (
	defaultSATGlob    = "testdata/uf50/*.cnf"
	defaultNonSATGlob = "testdata/uuf50/*.cnf"
)

var largeCNFFiles = []string{
	"testdata/large/uf175-01.cnf",
	"testdata/large/uuf150-01.cnf",
}

// Config mirrors the runner's CLI surface (spec §6), owned by the
// command-line collaborator and passed in here already parsed.
type Config struct {
	Algorithm         string
	FileName          string
	RunOnLargeCNF     bool
	RunOnLargeCNFOnly bool
	NumRuns           int
}

// SelectFiles resolves a Config's corpus selection flags into a list of CNF
// file paths to run, exactly reproducing the precedence the Python
// original's main() applies: FileName overrides everything; otherwise
// RunOnLargeCNFOnly replaces the default globs; otherwise RunOnLargeCNF
// appends the large fixed instances to the default globs. The default globs'
// matches are sorted; the large instances follow them in their fixed order.
func SelectFiles(cfg Config) ([]string, error) {
	if cfg.FileName != "" {
		return []string{cfg.FileName}, nil
	}

	if cfg.RunOnLargeCNFOnly {
		return append([]string(nil), largeCNFFiles...), nil
	}

	files, err := globAll(defaultSATGlob, defaultNonSATGlob)
	if err != nil {
		return nil, err
	}
	if cfg.RunOnLargeCNF {
		files = append(files, largeCNFFiles...)
	}
	return files, nil
}

func globAll(patterns ...string) ([]string, error) {
	var out []string
	for _, p := range patterns {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("runner: bad glob %q: %w", p, err)
		}
		out = append(out, matches...)
	}
	sort.Strings(out)
	return out, nil
}

// FileResult reports one file's outcome over its --num_runs repeats: Elapsed
// is summed across the repeats, while Status and Calls come from the last
// repeat alone.
type FileResult struct {
	File     string
	Status   engine.Status
	Elapsed  time.Duration
	Calls    int64
	NumRuns  int
	ParseErr error
}

// Run executes cfg.Algorithm over every file cfg selects, --num_runs times
// each, logging file name, result, elapsed time and recursive-entry count
// through logger as it goes. A file that fails to parse is logged and
// skipped rather than aborting the run, per spec §7's error policy.
func Run(cfg Config, logger engine.Logger) ([]FileResult, time.Duration, error) {
	algo, ok := Algorithms[cfg.Algorithm]
	if !ok {
		return nil, 0, fmt.Errorf("runner: unknown algorithm %q", cfg.Algorithm)
	}

	files, err := SelectFiles(cfg)
	if err != nil {
		return nil, 0, err
	}

	numRuns := cfg.NumRuns
	if numRuns < 1 {
		numRuns = 1
	}

	var results []FileResult
	var total time.Duration

	for _, file := range files {
		formula, err := dimacsio.Load(file)
		if err != nil {
			logger.Error("skipping file", "file", file, "error", err)
			results = append(results, FileResult{File: file, ParseErr: err})
			continue
		}
		clauses := engine.NewCNF(formula.Clauses)

		logger.Info("starting search", "file", file, "algorithm", cfg.Algorithm)

		var elapsed time.Duration
		var status engine.Status
		var counter engine.Counter
		for i := 0; i < numRuns; i++ {
			var runCounter engine.Counter
			start := time.Now()
			status = algo(clauses, formula.NumVars, &runCounter, logger)
			elapsed += time.Since(start)
			counter = runCounter
		}

		logger.Info("finished search",
			"file", file,
			"result", status.String(),
			"elapsed", elapsed.String(),
			"calls", counter.Entries(),
		)

		results = append(results, FileResult{
			File:    file,
			Status:  status,
			Elapsed: elapsed,
			Calls:   counter.Entries(),
			NumRuns: numRuns,
		})
		total += elapsed
	}

	logger.Info("total time taken",
		"elapsed", total.String(),
		"files", len(files),
		"num_runs", numRuns,
	)

	return results, total, nil
}
