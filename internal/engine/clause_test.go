package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewClause_SortsAndDedupes(t *testing.T) {
	got := NewClause([]Literal{3, 1, -2, 1, 3})
	want := Clause{-2, 1, 3}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewClause() mismatch (-want +got):\n%s", diff)
	}
}

func TestClause_IsEmpty(t *testing.T) {
	if !NewClause(nil).IsEmpty() {
		t.Error("empty literal slice should produce an empty clause")
	}
	if NewClause([]Literal{1}).IsEmpty() {
		t.Error("unit clause should not be empty")
	}
}

func TestClause_IsUnit(t *testing.T) {
	if !NewClause([]Literal{5}).IsUnit() {
		t.Error("single-literal clause should be unit")
	}
	if NewClause([]Literal{5, -5}).IsUnit() {
		t.Error("two-literal clause should not be unit")
	}
}

func TestClause_Contains(t *testing.T) {
	c := NewClause([]Literal{-3, 1, 4})
	for _, l := range []Literal{-3, 1, 4} {
		if !c.Contains(l) {
			t.Errorf("Contains(%d) = false, want true", l)
		}
	}
	for _, l := range []Literal{3, -1, -4, 2} {
		if c.Contains(l) {
			t.Errorf("Contains(%d) = true, want false", l)
		}
	}
}

func TestClause_IsTautology(t *testing.T) {
	tests := []struct {
		name string
		lits []Literal
		want bool
	}{
		{"tautology", []Literal{1, -1, 2}, true},
		{"not a tautology", []Literal{1, 2, 3}, false},
		{"empty", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewClause(tc.lits).IsTautology(); got != tc.want {
				t.Errorf("IsTautology() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClause_isProperSubsetOf(t *testing.T) {
	small := NewClause([]Literal{1, 2})
	big := NewClause([]Literal{1, 2, 3})
	equal := NewClause([]Literal{1, 2})

	if !small.isProperSubsetOf(big) {
		t.Error("{1,2} should be a proper subset of {1,2,3}")
	}
	if small.isProperSubsetOf(equal) {
		t.Error("a clause should not be a proper subset of an equal clause")
	}
	if big.isProperSubsetOf(small) {
		t.Error("a larger clause cannot be a proper subset of a smaller one")
	}
}
