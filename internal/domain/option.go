package domain

import (
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// OptionalType is a value that may be absent. An absent value serializes
// to nothing.
type OptionalType struct {
	inner Type
}

// Optional wraps inner.
func Optional(inner Type) *OptionalType {
	return &OptionalType{inner: inner}
}

func (t *OptionalType) Name() string {
	return "option<" + t.inner.Name() + ">"
}

func (t *OptionalType) MinNonzeroElementsSize() int {
	return t.inner.MinNonzeroElementsSize()
}

func (t *OptionalType) MaxDefaultObjectSize() int {
	return 0
}

func (t *OptionalType) IsVariableSize() bool {
	return true
}

func (t *OptionalType) Zero() Value {
	return &OptionalValue{}
}

func (t *OptionalType) Generate(e *Engine, c *m.Constraints[int]) Value {
	if e.rng.IntN(2) == 0 {
		return &OptionalValue{}
	}

	return &OptionalValue{inner: t.generateInner(e, c)}
}

// generateInner builds the payload. Nothing was reserved for it, so it
// reserves its own footprint, and it is dropped if it still does not fit.
func (t *OptionalType) generateInner(e *Engine, c *m.Constraints[int]) Value {
	b := newBudget(t, c)
	inner := t.inner.Generate(e, b.child(false))

	if !b.fits(inner.SerializedSize()) {
		return nil
	}

	return inner
}

// Mutate mutates a present payload. In Havoc the state may flip.
func (t *OptionalType) Mutate(e *Engine, v Value, c *m.Constraints[int]) {
	ov := mustValue[*OptionalValue](t, v)
	e.markMutationPass()

	if e.Mode().IsHavoc() && e.GenChance(ChanceToFlipOptionState) {
		if ov.inner != nil {
			ov.inner = nil
		} else {
			ov.inner = t.generateInner(e, c)
		}

		return
	}

	if ov.inner != nil {
		t.inner.Mutate(e, ov.inner, newBudget(t, c).child(false))
	}
}

// OptionalValue is an instance of an OptionalType.
type OptionalValue struct {
	inner Value
}

// Some returns a present optional holding v.
func Some(v Value) *OptionalValue {
	return &OptionalValue{inner: v}
}

// Get returns the payload and whether it is present.
func (v *OptionalValue) Get() (Value, bool) {
	return v.inner, v.inner != nil
}

func (v *OptionalValue) SerializedSize() int {
	if v.inner == nil {
		return 0
	}

	return v.inner.SerializedSize()
}

func (v *OptionalValue) MinEnumVariantSize() int {
	if v.inner == nil {
		return 0
	}

	return v.inner.MinEnumVariantSize()
}

func (v *OptionalValue) Serialize(enc *Encoder) {
	if v.inner != nil {
		v.inner.Serialize(enc)
	}
}

func (v *OptionalValue) Clone() Value {
	if v.inner == nil {
		return &OptionalValue{}
	}

	return &OptionalValue{inner: v.inner.Clone()}
}
