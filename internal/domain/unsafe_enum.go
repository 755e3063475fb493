package domain

import (
	"fmt"

	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// UnsafeEnumType wraps a unit enum so values may carry a discriminant that
// matches no declared variant.
type UnsafeEnumType[I m.Number] struct {
	fixedLayout

	enum          *UnitEnumType[I]
	invalidChance float64
}

// UnsafeEnum wraps enum. Generation yields an invalid discriminant with
// probability ChanceToPickInvalidEnum.
func UnsafeEnum[I m.Number](enum *UnitEnumType[I]) *UnsafeEnumType[I] {
	return &UnsafeEnumType[I]{
		fixedLayout:   enum.fixedLayout,
		enum:          enum,
		invalidChance: ChanceToPickInvalidEnum,
	}
}

// WithInvalidChance returns a copy generating invalid values with
// probability p.
func (t *UnsafeEnumType[I]) WithInvalidChance(p float64) *UnsafeEnumType[I] {
	out := *t
	out.invalidChance = p

	return &out
}

func (t *UnsafeEnumType[I]) Name() string {
	return "unsafe<" + t.enum.Name() + ">"
}

func (t *UnsafeEnumType[I]) Zero() Value {
	return &UnsafeEnumValue[I]{valid: t.enum.Zero().(*UnitEnumValue[I])}
}

func (t *UnsafeEnumType[I]) Generate(e *Engine, c *m.Constraints[int]) Value {
	if e.GenChance(t.invalidChance) {
		return &UnsafeEnumValue[I]{raw: randomScalar[I](e)}
	}

	return &UnsafeEnumValue[I]{valid: t.enum.Generate(e, c).(*UnitEnumValue[I])}
}

// Mutate demotes a valid value to its raw discriminant and mutates that as
// a scalar.
func (t *UnsafeEnumType[I]) Mutate(e *Engine, v Value, _ *m.Constraints[int]) {
	uv := mustValue[*UnsafeEnumValue[I]](t, v)

	uv.demote()
	MutateScalar(e, &uv.raw)
}

// UnsafeEnumValue is either a declared variant or an arbitrary raw
// discriminant.
type UnsafeEnumValue[I m.Number] struct {
	valid *UnitEnumValue[I]
	raw   I
}

// Valid reports whether the value is a declared variant.
func (v *UnsafeEnumValue[I]) Valid() bool {
	return v.valid != nil
}

// Variant returns the declared variant, or nil for invalid values.
func (v *UnsafeEnumValue[I]) Variant() *UnitEnumValue[I] {
	return v.valid
}

// Primitive returns the discriminant as written on the wire.
func (v *UnsafeEnumValue[I]) Primitive() I {
	if v.valid != nil {
		return v.valid.Primitive()
	}

	return v.raw
}

func (v *UnsafeEnumValue[I]) demote() {
	if v.valid != nil {
		v.raw = v.valid.Primitive()
		v.valid = nil
	}
}

func (v *UnsafeEnumValue[I]) SerializedSize() int {
	return infoOf[I]().bytes()
}

func (v *UnsafeEnumValue[I]) MinEnumVariantSize() int {
	return v.SerializedSize()
}

func (v *UnsafeEnumValue[I]) Serialize(enc *Encoder) {
	enc.WriteUint(toBits(v.Primitive()), v.SerializedSize())
}

func (v *UnsafeEnumValue[I]) Clone() Value {
	out := &UnsafeEnumValue[I]{raw: v.raw}
	if v.valid != nil {
		out.valid = v.valid.Clone().(*UnitEnumValue[I])
	}

	return out
}

func (v *UnsafeEnumValue[I]) String() string {
	if v.valid != nil {
		return v.valid.String()
	}

	return fmt.Sprintf("Invalid(%v)", v.raw)
}
