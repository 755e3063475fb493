// Package model defines the data structures shared by the fuzzing engine.
package model

import "fmt"

// ModeKind is the phase of the deterministic mutation sweep.
type ModeKind uint8

const (
	// ModeWalkingBitFlip XORs a contiguous run of bits that slides across the value.
	ModeWalkingBitFlip ModeKind = iota
	// ModeInterestingValues replaces the value with entries of its dangerous number table.
	ModeInterestingValues
	// ModeHavoc picks random strategies. It is absorbing.
	ModeHavoc
)

// MutationMode is the state of the sweep for the current corpus item.
// Bits is only meaningful for ModeWalkingBitFlip.
type MutationMode struct {
	Kind       ModeKind
	Bits       uint8
	CurrentIdx uint8
}

// WalkingBitFlip returns a walking flip mode of run length bits starting at idx.
func WalkingBitFlip(bits, idx uint8) MutationMode {
	return MutationMode{Kind: ModeWalkingBitFlip, Bits: bits, CurrentIdx: idx}
}

// InterestingValues returns the table replacement mode at idx.
func InterestingValues(idx uint8) MutationMode {
	return MutationMode{Kind: ModeInterestingValues, CurrentIdx: idx}
}

// Havoc returns the random mutation mode.
func Havoc() MutationMode {
	return MutationMode{Kind: ModeHavoc}
}

// InitialMode is the mode of a freshly generated corpus item.
func InitialMode() MutationMode {
	return WalkingBitFlip(1, 0)
}

// IsHavoc reports whether the mode is Havoc.
func (m MutationMode) IsHavoc() bool {
	return m.Kind == ModeHavoc
}

func (m MutationMode) String() string {
	switch m.Kind {
	case ModeWalkingBitFlip:
		return fmt.Sprintf("WalkingBitFlip{bits: %d, current_idx: %d}", m.Bits, m.CurrentIdx)
	case ModeInterestingValues:
		return fmt.Sprintf("InterestingValues{current_idx: %d}", m.CurrentIdx)
	default:
		return "Havoc"
	}
}

// MutationStrategy represents a Havoc scalar strategy.
type MutationStrategy string

const (
	// StrategyBitFlip flips one random bit.
	StrategyBitFlip MutationStrategy = "bit_flip"
	// StrategyFlip flips a random number of distinct bits.
	StrategyFlip MutationStrategy = "flip"
	// StrategyArithmetic adds or subtracts a small value with wraparound.
	StrategyArithmetic MutationStrategy = "arithmetic"
)

// HavocStrategies lists the strategies in selection order.
var HavocStrategies = []MutationStrategy{StrategyBitFlip, StrategyFlip, StrategyArithmetic}
