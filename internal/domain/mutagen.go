package domain

import (
	"wirefuzz.dev/pkg/wirefuzz/internal/domain/mutagens"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// MutateScalar mutates v in place according to the current mode. In
// deterministic modes only the targeted scalar of the pass changes; every
// other call is counted and left alone.
func MutateScalar[T m.Number](e *Engine, v *T) {
	info := infoOf[T]()
	table := mutagens.Dangerous(info.width, info.float)

	*v = fromBits[T](e.mutateRaw(toBits(*v), info.width, info.float, table))
}

// MutateScalarWithin mutates v and, in Havoc, pulls an out-of-bounds result
// back into c unless the ignore-bounds chance fires. Deterministic sweeps
// are allowed to leave the declared range.
func MutateScalarWithin[T m.Number](e *Engine, v *T, c *m.Constraints[T]) {
	MutateScalar(e, v)

	if !c.HasBounds() || !e.Mode().IsHavoc() {
		return
	}

	inside := (c.Min == nil || *v >= *c.Min) && (c.Max == nil || *v < *c.Max)
	if !inside && !e.GenChance(ChanceToIgnoreMinMax) {
		*v = GenerateScalar(e, c)
	}
}

// GenerateScalar returns a new value honoring c. Without constraints the
// value is drawn from the whole type. Each bound is dropped with a small
// chance so out-of-range values still show up.
func GenerateScalar[T m.Number](e *Engine, c *m.Constraints[T]) T {
	mustValidate(c)

	if !c.HasBounds() && (c == nil || c.Weighted == m.WeightNone) {
		return randomScalar[T](e)
	}

	lo, hi := typeBounds[T]()

	if c.Min != nil && !e.GenChance(ChanceToIgnoreMinMax) {
		lo = *c.Min
	}

	if c.Max != nil && !e.GenChance(ChanceToIgnoreMinMax) {
		hi = *c.Max
	}

	if !(lo < hi) {
		return lo
	}

	return GenWeightedRange(e, lo, hi, c.Weighted)
}

func randomScalar[T m.Number](e *Engine) T {
	info := infoOf[T]()

	return fromBits[T](e.rng.Uint64() & mutagens.Mask(info.width))
}

// DangerousNumbers returns the boundary value table for T.
func DangerousNumbers[T m.Number]() []T {
	info := infoOf[T]()
	table := mutagens.Dangerous(info.width, info.float)

	out := make([]T, len(table))
	for i, raw := range table {
		out[i] = fromBits[T](raw & mutagens.Mask(info.width))
	}

	return out
}

// mutateRaw is the mode-driven mutation of a scalar held as raw bits.
func (e *Engine) mutateRaw(raw uint64, width uint8, float bool, table []uint64) uint64 {
	mode := e.state.Mode

	if !mode.IsHavoc() {
		if !e.claimField(width, len(table)) {
			return raw
		}

		if mode.Kind == m.ModeWalkingBitFlip {
			return mutagens.WalkingFlip(raw, width, mode.CurrentIdx, min(mode.Bits, width))
		}

		idx := min(int(mode.CurrentIdx), len(table)-1)

		return table[idx] & mutagens.Mask(width)
	}

	if !e.havocField() {
		return raw
	}

	return mutagens.Apply(e.rng, mutagens.PickStrategy(e.rng), raw, width, float)
}

// claimField counts a field visit in a deterministic pass and reports
// whether it is the targeted one.
func (e *Engine) claimField(width uint8, tableLen int) bool {
	st := &e.state

	idx := st.FieldsFuzzed
	st.FieldsFuzzed++

	if idx != st.TargetedFieldIdx {
		return false
	}

	st.FinishedIteration = true
	st.TargetBitWidth = width
	st.TargetTableLen = tableLen

	return true
}

// havocField applies the field limit flag to a Havoc visit.
func (e *Engine) havocField() bool {
	if e.flags.FieldCount == 0 {
		return true
	}

	st := &e.state
	if st.FieldsFuzzed == e.flags.FieldCount || e.genChanceIgnoringFlags(chanceToSkipLimitedField) {
		return false
	}

	st.FieldsFuzzed++

	return true
}

// shouldMutateLeaf is the visit rule for leaves that are not plain scalars
// (strings, unit enums). Targeted in a deterministic pass they take one
// random change, and the sweep then moves to the next field.
func (e *Engine) shouldMutateLeaf() bool {
	if e.state.Mode.IsHavoc() {
		return e.havocField()
	}

	return e.claimField(0, 0)
}
