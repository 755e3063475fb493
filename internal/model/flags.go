package model

// FixupPolicy overrides whether fixup hooks run after generation or mutation.
type FixupPolicy int

const (
	FixupDefault FixupPolicy = iota
	FixupAlways
	FixupNever
)

// ChancePolicy overrides the outcome of probabilistic events.
type ChancePolicy int

const (
	ChanceDefault ChancePolicy = iota
	ChanceAlwaysSucceed
	ChanceAlwaysFail
)

// MaxActiveFlags is the most flags one iteration can have switched on.
const MaxActiveFlags = 2

// Flags are drawn once per Havoc iteration.
type Flags struct {
	// FieldCount limits how many scalars a pass may touch. Zero means no limit.
	FieldCount int
	Fixup      FixupPolicy
	Chances    ChancePolicy
}

// Active returns how many flags are switched on.
func (f Flags) Active() int {
	n := 0
	if f.FieldCount > 0 {
		n++
	}

	if f.Fixup != FixupDefault {
		n++
	}

	if f.Chances != ChanceDefault {
		n++
	}

	return n
}
