// Package domain contains the fuzz-data engine: generation, mutation, size
// accounting and serialization of schema-described values, plus the worker
// driver and campaign workflow built on it.
package domain

import (
	"math/rand/v2"

	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// Probabilities used across the engine. Set to 0 to disable.
const (
	ChanceToRepeatArrayValue   = 0.01
	ChanceToPickInvalidEnum    = 0.01
	ChanceToIgnoreMinMax       = 0.01
	ChanceToIgnorePostMutation = 0.05
	ChanceToResizeVec          = 0.01
	ChanceToFlipOptionState    = 0.01
	ChanceToSwitchVariant      = 0.01
)

const (
	// chanceToLimitFields is the chance a Havoc iteration limits how many
	// scalars it touches.
	chanceToLimitFields = 0.10
	// chanceToSkipLimitedField is the per-scalar skip chance while the
	// field limit is active.
	chanceToSkipLimitedField = 0.75
	maxLimitedFields         = 10
)

// pcgIncrement is the second PCG word, derived from the seed.
const pcgIncrement = 0x9e3779b97f4a7c15

// Engine owns the random stream, per-iteration flags and corpus state of one
// fuzzing worker. It is not safe for concurrent use.
type Engine struct {
	src   *rand.PCG
	rng   *rand.Rand
	flags m.Flags
	state m.CorpusState
}

// NewEngine creates an engine seeded with seed.
func NewEngine(seed uint64) *Engine {
	src := rand.NewPCG(seed, seed^pcgIncrement)

	return &Engine{
		src:   src,
		rng:   rand.New(src),
		state: m.NewCorpusState(),
	}
}

// Reseed restarts the random stream. Flags and corpus state are kept.
func (e *Engine) Reseed(seed uint64) {
	e.src.Seed(seed, seed^pcgIncrement)
}

// Rand exposes the random stream for callbacks that need their own draws.
func (e *Engine) Rand() *rand.Rand {
	return e.rng
}

// Mode returns the current mutation mode.
func (e *Engine) Mode() m.MutationMode {
	return e.state.Mode
}

// CorpusState returns a copy of the corpus state.
func (e *Engine) CorpusState() m.CorpusState {
	return e.state
}

// SetCorpusState restores a previously saved corpus state.
func (e *Engine) SetCorpusState(state m.CorpusState) {
	e.state = state
}

// Flags returns the flags of the current iteration.
func (e *Engine) Flags() m.Flags {
	return e.flags
}

// SetFlags overrides the flags of the current iteration.
func (e *Engine) SetFlags(flags m.Flags) {
	e.flags = flags
}

// BeginNewCorpus resets the engine for a freshly generated base value.
func (e *Engine) BeginNewCorpus() {
	e.state.Reset()
	e.flags = m.Flags{}
}

// BeginNewIteration closes the previous mutation pass and prepares the next
// one. The mode advances here because only now is the number of scalars in
// the pass known. Havoc iterations also draw new flags.
func (e *Engine) BeginNewIteration() {
	e.advanceMode()
	e.state.ResetIteration()

	if e.state.Mode.IsHavoc() {
		e.randomFlags()
	} else {
		e.flags = m.Flags{}
	}
}

// GenChance reports whether an event of probability p happened. The chance
// policy flag can force the outcome for p strictly between 0 and 1.
func (e *Engine) GenChance(p float64) bool {
	if p <= 0 {
		return false
	}

	if p >= 1 {
		return true
	}

	switch e.flags.Chances {
	case m.ChanceAlwaysSucceed:
		return true
	case m.ChanceAlwaysFail:
		return false
	}

	return e.genChanceIgnoringFlags(p)
}

func (e *Engine) genChanceIgnoringFlags(p float64) bool {
	return e.rng.Float64() < p
}

// ShouldFixup reports whether fixup hooks should run.
func (e *Engine) ShouldFixup() bool {
	switch e.flags.Fixup {
	case m.FixupAlways:
		return true
	case m.FixupNever:
		return false
	}

	return !e.GenChance(ChanceToIgnorePostMutation)
}

// ShouldEarlyBailMutation reports whether the field limit for this pass was
// reached, so composites can stop recursing.
func (e *Engine) ShouldEarlyBailMutation() bool {
	return e.flags.FieldCount > 0 && e.flags.FieldCount == e.state.FieldsFuzzed
}

// randomFlags draws the flags for a Havoc iteration, keeping at most
// m.MaxActiveFlags of them.
func (e *Engine) randomFlags() {
	var flags m.Flags

	if e.genChanceIgnoringFlags(chanceToLimitFields) {
		flags.FieldCount = 1 + e.rng.IntN(maxLimitedFields-1)
	}

	if e.rng.IntN(2) == 0 {
		if e.rng.IntN(2) == 0 {
			flags.Fixup = m.FixupAlways
		} else {
			flags.Fixup = m.FixupNever
		}
	}

	if e.rng.IntN(2) == 0 {
		if e.rng.IntN(2) == 0 {
			flags.Chances = m.ChanceAlwaysSucceed
		} else {
			flags.Chances = m.ChanceAlwaysFail
		}
	}

	if flags.Active() > m.MaxActiveFlags {
		switch e.rng.IntN(3) {
		case 0:
			flags.FieldCount = 0
		case 1:
			flags.Fixup = m.FixupDefault
		default:
			flags.Chances = m.ChanceDefault
		}
	}

	e.flags = flags
}

// markMutationPass records that a composite was mutated in this pass.
func (e *Engine) markMutationPass() {
	e.state.MutationPass = true
}

// advanceMode applies the transition for the pass that just finished. A
// generation pass visits no scalars and leaves the mode untouched. A
// mutation pass that found none has nothing to sweep and goes to Havoc.
func (e *Engine) advanceMode() {
	st := &e.state
	if st.Mode.IsHavoc() {
		return
	}

	if st.FieldsFuzzed == 0 {
		if st.MutationPass {
			st.TargetTotalPasses++
			st.Mode = m.Havoc()
		}

		return
	}

	st.TargetTotalFields = st.FieldsFuzzed
	st.TargetTotalPasses++

	if !st.FinishedIteration {
		// the targeted scalar no longer exists in the value
		st.Mode = m.Havoc()
		return
	}

	switch st.Mode.Kind {
	case m.ModeWalkingBitFlip:
		bits, idx := st.Mode.Bits, st.Mode.CurrentIdx

		switch {
		case bits >= st.TargetBitWidth:
			st.Mode = m.InterestingValues(0)
		case idx+bits == st.TargetBitWidth:
			st.Mode = m.WalkingBitFlip(bits+1, 0)
		default:
			st.Mode = m.WalkingBitFlip(bits, idx+1)
		}
	case m.ModeInterestingValues:
		idx := int(st.Mode.CurrentIdx)

		switch {
		case idx+1 < st.TargetTableLen:
			st.Mode = m.InterestingValues(uint8(idx + 1))
		case st.TargetedFieldIdx+1 >= st.TargetTotalFields:
			st.Mode = m.Havoc()
		default:
			st.TargetedFieldIdx++
			st.Mode = m.InitialMode()
		}
	}
}
