package engine

import "sort"

// CNF is an unordered collection of clauses with set semantics: identical
// clauses collapse. The collection is kept in a canonical sorted order
// (shortest clauses first, ties broken lexicographically by literal) purely
// so that every operation below iterates deterministically, which the
// determinism property in spec §8 requires.
type CNF []Clause

// NewCNF builds a canonical CNF from a slice of clauses, deduplicating
// identical clauses.
func NewCNF(clauses []Clause) CNF {
	seen := make(map[string]bool, len(clauses))
	out := make(CNF, 0, len(clauses))
	for _, c := range clauses {
		k := c.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	sortCNF(out)
	return out
}

func sortCNF(clauses CNF) {
	sort.Slice(clauses, func(i, j int) bool {
		a, b := clauses[i], clauses[j]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
}

// HasEmptyClause reports whether the collection contains the empty clause.
func (cnf CNF) HasEmptyClause() bool {
	for _, c := range cnf {
		if c.IsEmpty() {
			return true
		}
	}
	return false
}

// Equal reports whether two CNF collections contain the same set of clauses.
// Both collections are assumed canonical (as produced by NewCNF), so this is
// a straightforward element-wise comparison.
func (cnf CNF) Equal(other CNF) bool {
	if len(cnf) != len(other) {
		return false
	}
	for i := range cnf {
		if len(cnf[i]) != len(other[i]) {
			return false
		}
		for j := range cnf[i] {
			if cnf[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// RemoveTautologies is Rule 1: filter out every tautological clause.
func RemoveTautologies(clauses CNF) CNF {
	out := make([]Clause, 0, len(clauses))
	for _, c := range clauses {
		if !c.IsTautology() {
			out = append(out, c)
		}
	}
	return NewCNF(out)
}

// DropValue returns a new collection in which literal v has been removed from
// every clause. Clauses that become empty remain in the collection and
// represent ⊥.
func DropValue(clauses CNF, v Literal) CNF {
	out := make([]Clause, 0, len(clauses))
	for _, c := range clauses {
		out = append(out, c.withoutLiteral(v))
	}
	return NewCNF(out)
}

// DropClausesWith returns a new collection omitting every clause that
// contains literal v.
func DropClausesWith(clauses CNF, v Literal) CNF {
	out := make([]Clause, 0, len(clauses))
	for _, c := range clauses {
		if !c.Contains(v) {
			out = append(out, c)
		}
	}
	return NewCNF(out)
}

// FindUnitLiterals returns the set of sole members of every unit clause,
// sorted for deterministic iteration by callers.
func FindUnitLiterals(clauses CNF) []Literal {
	seen := map[Literal]bool{}
	var out []Literal
	for _, c := range clauses {
		if c.IsUnit() && !seen[c[0]] {
			seen[c[0]] = true
			out = append(out, c[0])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FindPureLiterals returns every literal l such that l appears in some
// clause and its negation -l appears in none, built with a single pass that
// records each observed literal before testing against its negation.
func FindPureLiterals(clauses CNF) []Literal {
	observed := map[Literal]bool{}
	for _, c := range clauses {
		for _, l := range c {
			observed[l] = true
		}
	}

	var out []Literal
	for l := range observed {
		if !observed[l.Opposite()] {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SubsumptionFilter removes every clause that is a proper superset of some
// other clause in the collection. Clauses are processed smallest-first so
// that each surviving clause is checked against every strictly smaller
// clause that could subsume it, preserving at least one representative of
// each minimum-size equivalence class.
func SubsumptionFilter(clauses CNF) CNF {
	ordered := make(CNF, len(clauses))
	copy(ordered, clauses)
	sortCNF(ordered)

	removed := make([]bool, len(ordered))
	for i, small := range ordered {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(ordered); j++ {
			if removed[j] {
				continue
			}
			if small.isProperSubsetOf(ordered[j]) {
				removed[j] = true
			}
		}
	}

	out := make([]Clause, 0, len(ordered))
	for i, c := range ordered {
		if !removed[i] {
			out = append(out, c)
		}
	}
	return NewCNF(out)
}
