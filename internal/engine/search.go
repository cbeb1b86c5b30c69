package engine

// BranchSelector picks the next literal to split on given a clause
// collection, or 0 if none is needed. SelectBranchLiteral and
// ClassicalBranchLiteral (branch.go) are the two selectors the runner can
// choose between.
type BranchSelector func(CNF) Literal

// DPBaseline is the pure-CNF reference procedure (variant a). It applies the
// five simplification rules strictly in order, rechecking the SAT/UNSAT
// termination conditions after each one, and recurses on the updated CNF
// whenever a rule's change check reports a difference.
//
// The change check after rules 2, 3 and 4 compares the *previous* rule's
// result against the current state rather than the rule that just ran. This
// mirrors a known quirk of the reference procedure this was built from: the
// check after rule 2 re-applies rule 1 (tautology removal), the check after
// rule 3 re-applies rule 2 (unit propagation), and so on. Once rule 1 has
// already run, re-testing it is close to a no-op, so the early change checks
// rarely fire — this is preserved rather than corrected, since fixing it
// would change which formulas take the "recurse early" path and how many
// recursive entries a given input produces.
func DPBaseline(clauses CNF, counter *Counter, logger Logger) Status {
	counter.Increment()

	// Rule 1: tautology elimination.
	clauses = RemoveTautologies(clauses)
	if len(clauses) == 0 {
		logger.Debug("dp_baseline: all clauses satisfied after rule 1")
		return Sat
	}
	if clauses.HasEmptyClause() {
		logger.Debug("dp_baseline: empty clause after rule 1")
		return Unsat
	}

	// Rule 2: unit propagation, one unit clause per call.
	clauses = ruleUnitOnce(clauses)
	if len(clauses) == 0 {
		return Sat
	}
	if clauses.HasEmptyClause() {
		return Unsat
	}
	if !RemoveTautologies(clauses).Equal(clauses) {
		return DPBaseline(clauses, counter, logger)
	}

	// Rule 3: pure-literal elimination, one literal per call.
	clauses = rulePureOnce(clauses)
	if len(clauses) == 0 {
		return Sat
	}
	if clauses.HasEmptyClause() {
		return Unsat
	}
	if !ruleUnitOnce(clauses).Equal(clauses) {
		return DPBaseline(clauses, counter, logger)
	}

	// Rule 4: subsumption, removing every dominated clause in one pass.
	clauses = SubsumptionFilter(clauses)
	if len(clauses) == 0 {
		return Sat
	}
	if clauses.HasEmptyClause() {
		return Unsat
	}
	if !rulePureOnce(clauses).Equal(clauses) {
		return DPBaseline(clauses, counter, logger)
	}

	// Rule 5: split on a literal whose negation also appears.
	lit := firstNonPureLiteral(clauses)
	if lit == 0 {
		return Unsat
	}
	branchTrue := DropValue(DropClausesWith(clauses, lit), lit.Opposite())
	branchFalse := DropValue(DropClausesWith(clauses, lit.Opposite()), lit)
	if DPBaseline(branchTrue, counter, logger) == Sat {
		return Sat
	}
	return DPBaseline(branchFalse, counter, logger)
}

// ruleUnitOnce applies rule 2 to a single unit clause — the first one in
// canonical order — rather than draining every unit clause to a fixed
// point. It returns clauses unchanged if none is found.
func ruleUnitOnce(clauses CNF) CNF {
	u, ok := firstUnitLiteral(clauses)
	if !ok {
		return clauses
	}
	clauses = DropClausesWith(clauses, u)
	return DropValue(clauses, u.Opposite())
}

// rulePureOnce applies rule 3 to a single pure literal — the first one
// found scanning clauses and their literals in canonical order — rather
// than every pure literal at once.
func rulePureOnce(clauses CNF) CNF {
	l := firstPureLiteral(clauses)
	if l == 0 {
		return clauses
	}
	return DropClausesWith(clauses, l)
}

func firstUnitLiteral(clauses CNF) (Literal, bool) {
	for _, c := range clauses {
		if c.IsUnit() {
			return c[0], true
		}
	}
	return 0, false
}

func firstPureLiteral(clauses CNF) Literal {
	for _, c := range clauses {
		for _, l := range c {
			if !literalExists(clauses, l.Opposite()) {
				return l
			}
		}
	}
	return 0
}

func firstNonPureLiteral(clauses CNF) Literal {
	for _, c := range clauses {
		for _, l := range c {
			if literalExists(clauses, l.Opposite()) {
				return l
			}
		}
	}
	return 0
}

func literalExists(clauses CNF, l Literal) bool {
	for _, c := range clauses {
		if c.Contains(l) {
			return true
		}
	}
	return false
}

// DP is the iterative, fresh-CNF procedure (variant b). Rule 1 runs once;
// unit propagation is driven to a fixed point and, if it changed anything,
// the whole call recurses before pure-literal elimination is even
// attempted. Pure-literal elimination and subsumption each recurse
// immediately whenever they remove something. Only once none of the three
// made progress does it fall through to branching.
func DP(clauses CNF, counter *Counter, logger Logger) Status {
	counter.Increment()

	if len(clauses) == 0 {
		return Sat
	}
	if clauses.HasEmptyClause() {
		return Unsat
	}

	clauses = RemoveTautologies(clauses)

	var changed bool
	clauses, changed = PropagateCNF(clauses)
	if changed {
		logger.Debug("dp: unit propagation made progress, re-entering")
		return DP(clauses, counter, logger)
	}
	if len(clauses) == 0 {
		return Sat
	}
	if clauses.HasEmptyClause() {
		return Unsat
	}

	if pures := FindPureLiterals(clauses); len(pures) > 0 {
		for _, p := range pures {
			clauses = DropClausesWith(clauses, p)
		}
		logger.Debug("dp: pure-literal elimination made progress, re-entering")
		return DP(clauses, counter, logger)
	}

	if filtered := SubsumptionFilter(clauses); !filtered.Equal(clauses) {
		logger.Debug("dp: subsumption made progress, re-entering")
		return DP(filtered, counter, logger)
	}
	if len(clauses) == 0 {
		return Sat
	}
	if clauses.HasEmptyClause() {
		return Unsat
	}

	lit := SelectBranchLiteral(clauses)
	if lit == 0 {
		return Sat
	}
	branchTrue := DropValue(DropClausesWith(clauses, lit), lit.Opposite())
	branchFalse := DropValue(DropClausesWith(clauses, lit.Opposite()), lit)
	if DP(branchTrue, counter, logger) == Sat {
		return Sat
	}
	return DP(branchFalse, counter, logger)
}

// DPLL is the pure-CNF procedure restricted to propagation and pure-literal
// rules (variant c). Tautology removal and subsumption run exactly once, as
// preprocessing before the first recursive entry; the recursion itself only
// ever applies unit propagation, a single pure-literal sweep, and branching.
func DPLL(clauses CNF, counter *Counter, logger Logger) Status {
	return dpllSearch(clauses, counter, logger, SelectBranchLiteral)
}

// ClassicalDPLL is the DPLL variant used for the unoptimized baseline
// comparison: it shares DPLL's pipeline entirely but substitutes
// ClassicalBranchLiteral's "first literal of some clause" rule for the
// frequency-based C2 heuristic.
func ClassicalDPLL(clauses CNF, counter *Counter, logger Logger) Status {
	return dpllSearch(clauses, counter, logger, ClassicalBranchLiteral)
}

func dpllSearch(clauses CNF, counter *Counter, logger Logger, selectBranch BranchSelector) Status {
	clauses = RemoveTautologies(clauses)
	clauses = SubsumptionFilter(clauses)
	return dpllHelper(clauses, counter, logger, selectBranch)
}

// dpllHelper is DPLL's recursive step. Unlike DP, it does not recurse after
// unit propagation or pure-literal elimination: both run once per call (unit
// propagation internally to its own fixed point, pure-literal elimination as
// a single sweep) and execution falls straight through to branching in the
// same call. Repeated sweeps of rules happen naturally across the branch
// recursion instead of via an explicit re-entry, unlike DP.
func dpllHelper(clauses CNF, counter *Counter, logger Logger, selectBranch BranchSelector) Status {
	counter.Increment()

	if len(clauses) == 0 {
		return Sat
	}
	if clauses.HasEmptyClause() {
		return Unsat
	}

	clauses, _ = PropagateCNF(clauses)
	if len(clauses) == 0 {
		return Sat
	}
	if clauses.HasEmptyClause() {
		return Unsat
	}

	if pures := FindPureLiterals(clauses); len(pures) > 0 {
		for _, p := range pures {
			clauses = DropClausesWith(clauses, p)
		}
		if len(clauses) == 0 {
			return Sat
		}
		if clauses.HasEmptyClause() {
			return Unsat
		}
	}

	lit := selectBranch(clauses)
	if lit == 0 {
		return Sat
	}
	branchTrue := DropValue(DropClausesWith(clauses, lit), lit.Opposite())
	branchFalse := DropValue(DropClausesWith(clauses, lit.Opposite()), lit)
	if dpllHelper(branchTrue, counter, logger, selectBranch) == Sat {
		return Sat
	}
	return dpllHelper(branchFalse, counter, logger, selectBranch)
}

// DPLLWatchers is the mutating, watched-literal procedure (variant d). It
// preprocesses the input once (tautology removal, subsumption), builds a
// ClauseDatabase, and recurses over it in place, snapshotting before each
// branch and restoring on backtrack. Subsumption is intentionally never
// re-applied once search begins, even though mutation can cause it to
// re-emerge: re-checking it against a live, mutable database on every entry
// would cost far more than the redundant clauses it would remove.
func DPLLWatchers(clauses CNF, numVars int, counter *Counter, logger Logger) Status {
	clauses = RemoveTautologies(clauses)
	clauses = SubsumptionFilter(clauses)
	db := NewDatabase(clauses, numVars)
	return dpllWatchersHelper(db, counter, logger)
}

func dpllWatchersHelper(db *ClauseDatabase, counter *Counter, logger Logger) Status {
	counter.Increment()

	if db.HasEmptyClause() {
		return Unsat
	}
	if db.IsEmpty() {
		return Sat
	}

	if PropagateAll(db) {
		logger.Debug("dpll_watchers: conflict during unit propagation")
		return Unsat
	}
	if db.IsEmpty() {
		return Sat
	}

	for {
		pures := db.PureLiterals()
		if len(pures) == 0 {
			break
		}
		for _, p := range pures {
			if Propagate(db, p) {
				logger.Debug("dpll_watchers: conflict assigning a pure literal")
				return Unsat
			}
		}
		if db.IsEmpty() {
			return Sat
		}
	}

	if db.HasEmptyClause() {
		return Unsat
	}
	if db.IsEmpty() {
		return Sat
	}

	lit := db.BranchLiteral()
	if lit == 0 {
		return Sat
	}

	snap := db.Snapshot()
	if !Propagate(db, lit) {
		if dpllWatchersHelper(db, counter, logger) == Sat {
			return Sat
		}
	}
	db.Restore(snap)

	snap = db.Snapshot()
	if !Propagate(db, lit.Opposite()) {
		if dpllWatchersHelper(db, counter, logger) == Sat {
			return Sat
		}
	}
	db.Restore(snap)

	return Unsat
}
