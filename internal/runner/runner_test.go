package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tevian/dpsat/internal/engine"
)

func writeCNF(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestSelectFiles_FileNameOverridesEverything(t *testing.T) {
	cfg := Config{FileName: "only-this.cnf", RunOnLargeCNF: true, RunOnLargeCNFOnly: true}
	got, err := SelectFiles(cfg)
	if err != nil {
		t.Fatalf("SelectFiles() error = %v", err)
	}
	if len(got) != 1 || got[0] != "only-this.cnf" {
		t.Errorf("SelectFiles() = %v, want [only-this.cnf]", got)
	}
}

func TestSelectFiles_RunOnLargeCNFOnlyReplacesDefaults(t *testing.T) {
	cfg := Config{RunOnLargeCNFOnly: true}
	got, err := SelectFiles(cfg)
	if err != nil {
		t.Fatalf("SelectFiles() error = %v", err)
	}
	if len(got) != len(largeCNFFiles) {
		t.Errorf("SelectFiles() = %v, want exactly the large fixed instances", got)
	}
}

func TestSelectFiles_RunOnLargeCNFAppends(t *testing.T) {
	cfg := Config{RunOnLargeCNF: true}
	got, err := SelectFiles(cfg)
	if err != nil {
		t.Fatalf("SelectFiles() error = %v", err)
	}
	for _, want := range largeCNFFiles {
		found := false
		for _, f := range got {
			if f == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("SelectFiles() = %v, want it to include %s", got, want)
		}
	}
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	_, _, err := Run(Config{Algorithm: "not-a-real-algorithm"}, engine.NopLogger{})
	if err == nil {
		t.Error("Run() with an unknown algorithm should return an error")
	}
}

func TestRun_SkipsMissingFileAndReportsParseError(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.cnf")

	results, _, err := Run(Config{Algorithm: "dpll", FileName: missing}, engine.NopLogger{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(results) != 1 || results[0].ParseErr == nil {
		t.Errorf("Run() results = %+v, want one result with a parse error", results)
	}
}

func TestRun_SolvesASingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeCNF(t, dir, "sat.cnf", "p cnf 1 1\n1 0\n")

	results, _, err := Run(Config{Algorithm: "dpll_watchers", FileName: path, NumRuns: 3}, engine.NopLogger{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %+v, want exactly one", results)
	}
	r := results[0]
	if r.Status != engine.Sat {
		t.Errorf("Status = %s, want SAT", r.Status)
	}
	if r.NumRuns != 3 {
		t.Errorf("NumRuns = %d, want 3", r.NumRuns)
	}
	if r.Calls != 1 {
		t.Errorf("Calls = %d, want 1 (dpll_watchers on a trivial instance)", r.Calls)
	}
}
