package domain

import (
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// Type describes the shape of a fuzzable value. Types are built once and
// shared read-only between workers; all per-call state lives in the Engine
// and the Value.
type Type interface {
	Name() string
	// Generate builds a new value honoring c. MaxSize in c is the byte
	// budget; Min and Max apply to length-bearing types.
	Generate(e *Engine, c *m.Constraints[int]) Value
	// Mutate changes v in place. v must come from this type.
	Mutate(e *Engine, v Value, c *m.Constraints[int])
	Zero() Value
	// MinNonzeroElementsSize is the smallest size of a non-empty instance.
	MinNonzeroElementsSize() int
	// MaxDefaultObjectSize is the size of a defaulted instance, reserved
	// from the budget before generation.
	MaxDefaultObjectSize() int
	IsVariableSize() bool
}

// Value is an instance of a Type.
type Value interface {
	SerializedSize() int
	// MinEnumVariantSize is the size of the smallest variant for enums and
	// the serialized size for everything else.
	MinEnumVariantSize() int
	Serialize(enc *Encoder)
	Clone() Value
}

// rawValue is a scalar value that can be packed into a bitfield.
type rawValue interface {
	Value
	raw() uint64
	setRaw(raw uint64)
}

// scalarType is a Type whose values are rawValues of a fixed bit width.
type scalarType interface {
	Type
	scalar() scalarInfo
}

// fixedLayout supplies the size answers shared by every fixed-size type.
type fixedLayout struct {
	size int
}

func (l fixedLayout) MinNonzeroElementsSize() int { return l.size }

func (l fixedLayout) MaxDefaultObjectSize() int { return l.size }

func (l fixedLayout) IsVariableSize() bool { return false }

func mustValue[V Value](t Type, v Value) V {
	out, ok := v.(V)
	if !ok {
		panic(errWrongValue(t, v))
	}

	return out
}
