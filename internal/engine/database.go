package engine

import "github.com/rhartert/yagh"

// ClauseDatabase is the mutable, watched-literal clause store used by the
// dpll_watchers search procedure (C3). Unlike the CNF value type used by the
// other three variants, the database is built once and mutated in place for
// the lifetime of a search, with Snapshot/Restore providing the undo
// discipline needed at branch points.
type ClauseDatabase struct {
	numVars int

	clauses  [][]Literal
	active   []bool
	watchers [][]Literal

	posFreq []int
	negFreq []int
	posOcc  [][]int
	negOcc  [][]int

	queued *ResetSet
}

// NewDatabase builds a watched-literal database from a CNF collection and a
// variable count. Tautological clauses are marked inactive and excluded from
// every index, per spec §4.3.
func NewDatabase(clauses CNF, numVars int) *ClauseDatabase {
	db := &ClauseDatabase{
		numVars:  numVars,
		clauses:  make([][]Literal, len(clauses)),
		active:   make([]bool, len(clauses)),
		watchers: make([][]Literal, len(clauses)),
		posFreq:  make([]int, numVars+1),
		negFreq:  make([]int, numVars+1),
		posOcc:   make([][]int, numVars+1),
		negOcc:   make([][]int, numVars+1),
		queued:   NewResetSet(numVars + 1),
	}

	for i, c := range clauses {
		lits := make([]Literal, len(c))
		copy(lits, c)
		db.clauses[i] = lits

		if c.IsTautology() {
			db.active[i] = false
			continue
		}
		db.active[i] = true

		for _, l := range lits {
			freq := db.freqPtr(l)
			*freq++
			list := db.occListPtr(l)
			*list = append(*list, i)
		}

		switch {
		case len(lits) >= 2:
			db.watchers[i] = []Literal{lits[0], lits[1]}
		case len(lits) == 1:
			db.watchers[i] = []Literal{lits[0]}
		default:
			db.watchers[i] = nil
		}
	}

	return db
}

func (db *ClauseDatabase) freqPtr(l Literal) *int {
	if l.IsPositive() {
		return &db.posFreq[l.VarID()]
	}
	return &db.negFreq[l.VarID()]
}

func (db *ClauseDatabase) occListPtr(l Literal) *[]int {
	if l.IsPositive() {
		return &db.posOcc[l.VarID()]
	}
	return &db.negOcc[l.VarID()]
}

func removeFromOccList(list *[]int, cid int) {
	s := *list
	for i, x := range s {
		if x == cid {
			s[i] = s[len(s)-1]
			*list = s[:len(s)-1]
			return
		}
	}
}

func decrementFreq(p *int) {
	if *p > 0 {
		*p--
	}
}

func containsLiteral(lits []Literal, l Literal) bool {
	for _, x := range lits {
		if x == l {
			return true
		}
	}
	return false
}

func removeLiteral(lits []Literal, l Literal) []Literal {
	for i, x := range lits {
		if x == l {
			lits[i] = lits[len(lits)-1]
			return lits[:len(lits)-1]
		}
	}
	return lits
}

// AssignLiteral asserts that l is true and updates the database accordingly,
// returning the set of literals belonging to clauses that became unit as a
// result (spec §4.3).
func (db *ClauseDatabase) AssignLiteral(l Literal) []Literal {
	var newlyUnit []Literal

	// Step 1: every active clause containing l is now satisfied.
	satisfied := append([]int(nil), *db.occListPtr(l)...)
	for _, cid := range satisfied {
		if !db.active[cid] {
			continue
		}
		db.active[cid] = false
		for _, lp := range db.clauses[cid] {
			decrementFreq(db.freqPtr(lp))
			removeFromOccList(db.occListPtr(lp), cid)
		}
		freeLiteralSlice(db.watchers[cid])
		db.watchers[cid] = nil
	}

	// Step 2: drop the opposite literal from every active clause that still
	// contains it.
	neg := l.Opposite()
	affected := append([]int(nil), *db.occListPtr(neg)...)
	for _, cid := range affected {
		if !db.active[cid] {
			continue
		}
		clause := db.clauses[cid]
		if !containsLiteral(clause, neg) {
			continue
		}

		db.clauses[cid] = removeLiteral(clause, neg)
		decrementFreq(db.freqPtr(neg))
		removeFromOccList(db.occListPtr(neg), cid)

		w := db.watchers[cid]
		if containsLiteral(w, neg) {
			replaced := false
			for _, cand := range db.clauses[cid] {
				if !containsLiteral(w, cand) {
					for i, x := range w {
						if x == neg {
							w[i] = cand
							break
						}
					}
					replaced = true
					break
				}
			}
			if !replaced {
				w = append(w[:0], db.clauses[cid]...)
			}
			db.watchers[cid] = w
		}

		if db.active[cid] && len(db.clauses[cid]) == 1 {
			newlyUnit = append(newlyUnit, db.clauses[cid][0])
		}
	}

	return newlyUnit
}

// IsEmpty reports whether no clause is active (the database is satisfied).
func (db *ClauseDatabase) IsEmpty() bool {
	for _, a := range db.active {
		if a {
			return false
		}
	}
	return true
}

// HasEmptyClause reports whether any active clause has an empty literal set.
func (db *ClauseDatabase) HasEmptyClause() bool {
	for i, a := range db.active {
		if a && len(db.clauses[i]) == 0 {
			return true
		}
	}
	return false
}

// PureLiterals returns every literal whose variable appears in active
// clauses with only one polarity.
func (db *ClauseDatabase) PureLiterals() []Literal {
	var out []Literal
	for v := 1; v <= db.numVars; v++ {
		pf, nf := db.posFreq[v], db.negFreq[v]
		switch {
		case pf > 0 && nf == 0:
			out = append(out, Literal(v))
		case nf > 0 && pf == 0:
			out = append(out, Literal(-v))
		}
	}
	return out
}

// BranchLiteral implements C2 over the database's frequency arrays. It
// builds a fresh max-heap (keyed by combined frequency, via
// github.com/rhartert/yagh as the teacher's own variable-ordering heap does)
// from the current frequency arrays and pops the top candidate, exactly
// mirroring the pop-until-valid pattern in the teacher's
// VarOrder.NextDecision — except here a candidate is valid by construction,
// since only variables with both polarities present are inserted.
func (db *ClauseDatabase) BranchLiteral() Literal {
	heap := yagh.New[int](db.numVars + 1)
	found := false
	for v := 1; v <= db.numVars; v++ {
		pf, nf := db.posFreq[v], db.negFreq[v]
		if pf > 0 && nf > 0 {
			heap.Put(v, -(pf + nf))
			found = true
		}
	}
	if !found {
		return 0
	}

	item, ok := heap.Pop()
	if !ok {
		return 0
	}
	v := item.Elem
	if db.posFreq[v] >= db.negFreq[v] {
		return Literal(v)
	}
	return Literal(-v)
}

// Snapshot deep-copies the database's mutable state for later restoration.
func (db *ClauseDatabase) Snapshot() *Snapshot {
	s := &Snapshot{
		active:  append([]bool(nil), db.active...),
		posFreq: append([]int(nil), db.posFreq...),
		negFreq: append([]int(nil), db.negFreq...),
	}

	s.clauses = make([][]Literal, len(db.clauses))
	for i, c := range db.clauses {
		cp := allocLiteralSlice(len(c))
		cp = append(cp, c...)
		s.clauses[i] = cp
	}

	s.watchers = make([][]Literal, len(db.watchers))
	for i, w := range db.watchers {
		cp := allocLiteralSlice(len(w))
		cp = append(cp, w...)
		s.watchers[i] = cp
	}

	s.posOcc = make([][]int, len(db.posOcc))
	for i, o := range db.posOcc {
		s.posOcc[i] = append([]int(nil), o...)
	}
	s.negOcc = make([][]int, len(db.negOcc))
	for i, o := range db.negOcc {
		s.negOcc[i] = append([]int(nil), o...)
	}

	return s
}

// Restore writes back a previously taken Snapshot, replacing the database's
// current state. The snapshot is consumed by this call and must not be used
// again; the database's current clause and watcher slices are returned to
// the literal-slice pool before being overwritten.
func (db *ClauseDatabase) Restore(s *Snapshot) {
	for _, c := range db.clauses {
		freeLiteralSlice(c)
	}
	for _, w := range db.watchers {
		freeLiteralSlice(w)
	}

	db.active = s.active
	db.clauses = s.clauses
	db.watchers = s.watchers
	db.posOcc = s.posOcc
	db.negOcc = s.negOcc
	db.posFreq = s.posFreq
	db.negFreq = s.negFreq
}

// Snapshot is an opaque, single-use copy of a ClauseDatabase's mutable
// state, produced by ClauseDatabase.Snapshot and consumed by
// ClauseDatabase.Restore.
type Snapshot struct {
	active   []bool
	clauses  [][]Literal
	watchers [][]Literal
	posFreq  []int
	negFreq  []int
	posOcc   [][]int
	negOcc   [][]int
}
