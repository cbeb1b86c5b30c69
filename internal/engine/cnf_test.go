package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func cnfOf(clauses ...[]Literal) CNF {
	cs := make([]Clause, len(clauses))
	for i, c := range clauses {
		cs[i] = NewClause(c)
	}
	return NewCNF(cs)
}

func TestNewCNF_DedupesIdenticalClauses(t *testing.T) {
	got := cnfOf([]Literal{1, 2}, []Literal{2, 1}, []Literal{3})
	want := cnfOf([]Literal{1, 2}, []Literal{3})

	if !got.Equal(want) {
		t.Errorf("NewCNF() = %v, want %v", got, want)
	}
}

func TestRemoveTautologies(t *testing.T) {
	in := cnfOf([]Literal{1, -1, 2}, []Literal{3, 4})
	got := RemoveTautologies(in)
	want := cnfOf([]Literal{3, 4})

	if !got.Equal(want) {
		t.Errorf("RemoveTautologies() = %v, want %v", got, want)
	}
}

func TestDropValue(t *testing.T) {
	in := cnfOf([]Literal{1, 2}, []Literal{2, 3})
	got := DropValue(in, 2)
	want := cnfOf([]Literal{1}, []Literal{3})

	if !got.Equal(want) {
		t.Errorf("DropValue() = %v, want %v", got, want)
	}
}

func TestDropValue_ProducesEmptyClauseOnUnitRemoval(t *testing.T) {
	in := cnfOf([]Literal{1})
	got := DropValue(in, 1)

	if !got.HasEmptyClause() {
		t.Errorf("DropValue(%v, 1) should leave the empty clause, got %v", in, got)
	}
}

func TestDropClausesWith(t *testing.T) {
	in := cnfOf([]Literal{1, 2}, []Literal{2, 3}, []Literal{4})
	got := DropClausesWith(in, 2)
	want := cnfOf([]Literal{4})

	if !got.Equal(want) {
		t.Errorf("DropClausesWith() = %v, want %v", got, want)
	}
}

func TestFindUnitLiterals(t *testing.T) {
	in := cnfOf([]Literal{1}, []Literal{2, 3}, []Literal{-4})
	got := FindUnitLiterals(in)
	want := []Literal{-4, 1}

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("FindUnitLiterals() mismatch (-want +got):\n%s", diff)
	}
}

func TestFindPureLiterals(t *testing.T) {
	in := cnfOf([]Literal{1, 2}, []Literal{1, 3}, []Literal{-2, 3})
	got := FindPureLiterals(in)
	want := []Literal{1, 3}

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("FindPureLiterals() mismatch (-want +got):\n%s", diff)
	}
}

func TestSubsumptionFilter(t *testing.T) {
	in := cnfOf([]Literal{1, 2}, []Literal{1, 2, 3})
	got := SubsumptionFilter(in)
	want := cnfOf([]Literal{1, 2})

	if !got.Equal(want) {
		t.Errorf("SubsumptionFilter() = %v, want %v", got, want)
	}
}

func TestSubsumptionFilter_KeepsIncomparableClauses(t *testing.T) {
	in := cnfOf([]Literal{1, 2}, []Literal{3, 4})
	got := SubsumptionFilter(in)

	if !got.Equal(in) {
		t.Errorf("SubsumptionFilter() should not touch incomparable clauses, got %v want %v", got, in)
	}
}

func TestHasEmptyClause(t *testing.T) {
	if cnfOf([]Literal{1, 2}).HasEmptyClause() {
		t.Error("non-empty clauses should report HasEmptyClause() = false")
	}
	if !cnfOf([]Literal{}).HasEmptyClause() {
		t.Error("an empty clause should report HasEmptyClause() = true")
	}
}
