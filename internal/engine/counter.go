package engine

// Counter tracks the number of recursive entries made by a search procedure.
//
// The Python original threads a one-element list through every recursive
// call to obtain a mutable counter by reference. Go has no need for that
// trick: an explicit pointer receiver gives the same write-through semantics
// without the indirection through a collection type.
type Counter struct {
	entries int64
}

// Increment records a single recursive entry.
func (c *Counter) Increment() {
	c.entries++
}

// Entries returns the number of recorded recursive entries.
func (c *Counter) Entries() int64 {
	return c.entries
}
