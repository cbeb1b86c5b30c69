package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/tevian/dpsat/internal/logging"
	"github.com/tevian/dpsat/internal/runner"
)

var (
	flagAlgorithm         = flag.String("algorithm", "dpll_watchers", "solver variant: dp_default, dp, dpll, classical_dpll, or dpll_watchers")
	flagFileName          = flag.String("file_name", "", "single CNF file to solve (overrides the default corpus)")
	flagRunOnLargeCNF     = flag.Bool("run_on_large_cnf", false, "append the large fixed instances to the default corpus")
	flagRunOnLargeCNFOnly = flag.Bool("run_on_large_cnf_only", false, "run only the large fixed instances")
	flagNumRuns           = flag.Int("num_runs", 1, "number of times to repeat solving each file")
	flagProfile           = flag.Bool("profile", false, "save a pprof CPU profile to cpuprof")
	flagLogLevel          = flag.String("log_level", "info", "logger severity: debug, info, warn, error, off")
)

func parseConfig() (runner.Config, error) {
	flag.Parse()

	if *flagNumRuns < 1 {
		return runner.Config{}, fmt.Errorf("--num_runs must be at least 1, got %d", *flagNumRuns)
	}
	if _, ok := runner.Algorithms[*flagAlgorithm]; !ok {
		return runner.Config{}, fmt.Errorf("unknown --algorithm %q", *flagAlgorithm)
	}

	return runner.Config{
		Algorithm:         *flagAlgorithm,
		FileName:          *flagFileName,
		RunOnLargeCNF:     *flagRunOnLargeCNF,
		RunOnLargeCNFOnly: *flagRunOnLargeCNFOnly,
		NumRuns:           *flagNumRuns,
	}, nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if *flagProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	logger := logging.New(*flagLogLevel)

	start := time.Now()
	results, total, err := runner.Run(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range results {
		if r.ParseErr != nil {
			fmt.Printf("c %-40s PARSE ERROR: %s\n", r.File, r.ParseErr)
			continue
		}
		fmt.Printf("c %-40s %-6s %10s  (%d calls, %d run(s))\n",
			r.File, r.Status.String(), r.Elapsed, r.Calls, r.NumRuns)
	}
	fmt.Printf("c total: %s across %d file(s), wall-clock %s\n", total, len(results), time.Since(start))
}
