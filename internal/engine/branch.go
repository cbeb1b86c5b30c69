package engine

import "sort"

// SelectBranchLiteral implements the C2 branch heuristic over a pure CNF
// collection. It picks a variable appearing in both polarities that
// maximizes the combined frequency, returning it with the sign of whichever
// polarity occurs more often (ties favour the positive polarity). It returns
// 0 if no such variable exists, meaning no branch is needed.
//
// Variants b and c (dp, dpll) operate on a fresh CNF value each recursive
// call, so frequency here is recomputed with a plain map keyed by variable
// id, matching the Python original's dictionary-based approach rather than
// the fixed-size arrays the watched-literal database (C3) maintains
// incrementally.
func SelectBranchLiteral(clauses CNF) Literal {
	posFreq := map[int]int{}
	negFreq := map[int]int{}

	for _, c := range clauses {
		for _, l := range c {
			if l.IsPositive() {
				posFreq[l.VarID()]++
			} else {
				negFreq[l.VarID()]++
			}
		}
	}

	return pickMaxFrequencyVar(posFreq, negFreq)
}

// pickMaxFrequencyVar applies the C2 contract given per-variable positive and
// negative occurrence counts: among variables with both counts nonzero,
// choose the one with the largest combined count, breaking ties by the
// smallest variable id for determinism.
func pickMaxFrequencyVar(posFreq, negFreq map[int]int) Literal {
	var candidates []int
	for v, pf := range posFreq {
		if pf > 0 && negFreq[v] > 0 {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return 0
	}
	sort.Ints(candidates)

	best := candidates[0]
	bestTotal := posFreq[best] + negFreq[best]
	for _, v := range candidates[1:] {
		total := posFreq[v] + negFreq[v]
		if total > bestTotal {
			best = v
			bestTotal = total
		}
	}

	if posFreq[best] >= negFreq[best] {
		return Literal(best)
	}
	return Literal(-best)
}

// ClassicalBranchLiteral implements the unoptimized "first literal of some
// clause" heuristic used by the classical DPLL baseline (spec §4.2, §9). Any
// deterministic pick suffices; this one returns the first literal of the
// smallest clause in canonical (sorted) order.
func ClassicalBranchLiteral(clauses CNF) Literal {
	for _, c := range clauses {
		if len(c) > 0 {
			return c[0]
		}
	}
	return 0
}
