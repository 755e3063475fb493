package model

import "fmt"

// Path represents a file system path.
type Path string

// IterationRange is a half-open range of iteration indices [Start, End).
type IterationRange struct {
	Start uint64
	End   uint64
}

// Len returns the number of iterations in the range.
func (r IterationRange) Len() uint64 {
	if r.End <= r.Start {
		return 0
	}

	return r.End - r.Start
}

// Contains reports whether i is inside the range.
func (r IterationRange) Contains(i uint64) bool {
	return i >= r.Start && i < r.End
}

func (r IterationRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// SchemaInfo describes a registered schema for listings.
type SchemaInfo struct {
	Name        string
	Description string
	MinSize     int
	MaxDefault  int
	Variable    bool
}
