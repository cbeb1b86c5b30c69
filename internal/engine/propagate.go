package engine

// PropagateCNF runs unit propagation to a fixed point over a pure CNF value,
// used by the dp and dpll variants. It repeatedly finds every unit clause,
// drops every clause containing its literal, and strikes the literal's
// negation from the remaining clauses, until no unit clauses remain or a
// conflict (empty clause) appears.
//
// It returns the simplified CNF and whether any change was made, so that
// callers can apply the "recurse only on change" discipline spec.md
// describes for dp/dpll.
func PropagateCNF(clauses CNF) (CNF, bool) {
	changed := false
	for {
		units := FindUnitLiterals(clauses)
		if len(units) == 0 {
			return clauses, changed
		}
		for _, u := range units {
			clauses = DropClausesWith(clauses, u)
			clauses = DropValue(clauses, u.Opposite())
		}
		changed = true
		if clauses.HasEmptyClause() {
			return clauses, changed
		}
	}
}

// Propagate drains the watched-literal database's worklist to a fixed point
// (C4), starting with `start`. It returns true if a conflict (empty active
// clause) was produced.
//
// This mirrors dpll_watchers.py's assign_lit: AssignLiteral already returns
// the literals that became unit as a side effect of one assignment; this
// driver extends the worklist with those and checks HasEmptyClause after
// each one, using a Queue[Literal] (adapted from the teacher's ring-buffer
// queue) in place of the Python original's plain list-as-worklist.
//
// db.queued (a ResetSet, adapted from the teacher's internal/sat/set.go)
// tracks which variables are already sitting in the worklist so that a
// variable touched by several overlapping clauses in the same round is only
// queued once; it is cleared at the start of every call.
func Propagate(db *ClauseDatabase, start Literal) bool {
	db.queued.Clear()

	worklist := NewQueue[Literal](8)
	worklist.Push(start)
	db.queued.Add(start.VarID())

	for !worklist.IsEmpty() {
		l := worklist.Pop()

		newlyUnit := db.AssignLiteral(l)
		if db.HasEmptyClause() {
			return true
		}
		for _, u := range newlyUnit {
			if db.queued.Contains(u.VarID()) {
				continue
			}
			db.queued.Add(u.VarID())
			worklist.Push(u)
		}
	}
	return false
}

// PropagateAll drains every currently-unit clause in the database to a fixed
// point. It is used to perform the database's initial unit propagation pass
// before the first branch decision, where no single assignment kicked off
// the worklist.
func PropagateAll(db *ClauseDatabase) bool {
	for {
		unit := findUnitLiteral(db)
		if unit == 0 {
			return false
		}
		if Propagate(db, unit) {
			return true
		}
	}
}

// findUnitLiteral scans the database for any active unit clause and returns
// its sole literal, or 0 if none exists.
func findUnitLiteral(db *ClauseDatabase) Literal {
	for i, active := range db.active {
		if active && len(db.clauses[i]) == 1 {
			return db.clauses[i][0]
		}
	}
	return 0
}
