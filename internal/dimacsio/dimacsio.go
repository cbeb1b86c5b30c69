// Package dimacsio reads DIMACS CNF files into the engine's clause
// representation, adapted from the teacher repo's parsers package: a thin
// wrapper around github.com/rhartert/dimacs's ReadBuilder that feeds the
// parsed clauses to a builder instead of a live solver.
package dimacsio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/tevian/dpsat/internal/engine"
)

// Formula is the parsed result of a DIMACS CNF file: its declared variable
// count and the clauses read from it, not yet deduplicated or canonicalized
// (NewCNF performs that once the caller is ready to hand it to the engine).
type Formula struct {
	NumVars int
	Clauses []engine.Clause
}

func openReader(filename string) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if strings.HasSuffix(filename, ".gz") {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, err
		}
	}
	return rc, nil
}

// stripAfterPercent returns the content of r up to (but excluding) the first
// line beginning with "%", which the DIMACS benchmark convention uses to
// mark end-of-instance. github.com/rhartert/dimacs has no notion of this
// terminator, so it is handled here, once, before the line ever reaches it.
func stripAfterPercent(r io.Reader) io.Reader {
	var out strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "%") {
			break
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return strings.NewReader(out.String())
}

// Load parses the DIMACS CNF file at filename, gzip-decompressing it first
// if its name ends in ".gz". Malformed files and missing files are returned
// as errors; per the engine's error-handling policy, callers are expected to
// log and skip rather than treat this as fatal.
func Load(filename string) (Formula, error) {
	rc, err := openReader(filename)
	if err != nil {
		return Formula{}, fmt.Errorf("dimacsio: opening %q: %w", filename, err)
	}
	defer rc.Close()

	b := &formulaBuilder{}
	if err := dimacs.ReadBuilder(stripAfterPercent(rc), b); err != nil {
		return Formula{}, fmt.Errorf("dimacsio: parsing %q: %w", filename, err)
	}

	return Formula{NumVars: b.numVars, Clauses: b.clauses}, nil
}

// formulaBuilder implements dimacs.Builder, translating each reported clause
// into an engine.Clause. An empty literal line is skipped rather than kept
// as a zero-length clause: NewClause would canonicalize it to the empty
// clause (⊥), which would force the whole formula UNSAT regardless of its
// other clauses.
type formulaBuilder struct {
	numVars int
	clauses []engine.Clause
}

func (b *formulaBuilder) Problem(nVars int, nClauses int) {
	b.numVars = nVars
	b.clauses = make([]engine.Clause, 0, nClauses)
}

func (b *formulaBuilder) Clause(tmpClause []int) {
	if len(tmpClause) == 0 {
		return
	}
	lits := make([]engine.Literal, len(tmpClause))
	for i, l := range tmpClause {
		lits[i] = engine.Literal(l)
	}
	b.clauses = append(b.clauses, engine.NewClause(lits))
}

func (b *formulaBuilder) Comment(line string) {} // ignore comments
