package domain

import (
	"fmt"
	"strconv"

	"wirefuzz.dev/pkg/wirefuzz/internal/domain/mutagens"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// ScalarType is a fixed-width number with optional bounds and bias.
type ScalarType[T m.Number] struct {
	fixedLayout

	info   scalarInfo
	min    *T
	max    *T
	weight m.Weighted
}

// Scalar returns an unconstrained scalar type for T.
func Scalar[T m.Number]() *ScalarType[T] {
	info := infoOf[T]()

	return &ScalarType[T]{
		fixedLayout: fixedLayout{size: info.bytes()},
		info:        info,
	}
}

func U8() *ScalarType[uint8] { return Scalar[uint8]() }
func U16() *ScalarType[uint16] { return Scalar[uint16]() }
func U32() *ScalarType[uint32] { return Scalar[uint32]() }
func U64() *ScalarType[uint64] { return Scalar[uint64]() }
func I8() *ScalarType[int8] { return Scalar[int8]() }
func I16() *ScalarType[int16] { return Scalar[int16]() }
func I32() *ScalarType[int32] { return Scalar[int32]() }
func I64() *ScalarType[int64] { return Scalar[int64]() }
func F32() *ScalarType[float32] { return Scalar[float32]() }
func F64() *ScalarType[float64] { return Scalar[float64]() }

// Between returns a copy of t limited to [min, max). It panics if
// min >= max.
func (t *ScalarType[T]) Between(min, max T) *ScalarType[T] {
	out := *t
	out.min, out.max = &min, &max

	mustValidate(out.own())

	return &out
}

// WeightTo returns a copy of t biased toward w.
func (t *ScalarType[T]) WeightTo(w m.Weighted) *ScalarType[T] {
	out := *t
	out.weight = w

	return &out
}

func (t *ScalarType[T]) Name() string {
	switch {
	case t.info.float:
		return "f" + strconv.Itoa(int(t.info.width))
	case t.info.signed:
		return "i" + strconv.Itoa(int(t.info.width))
	default:
		return "u" + strconv.Itoa(int(t.info.width))
	}
}

func (t *ScalarType[T]) scalar() scalarInfo {
	return t.info
}

func (t *ScalarType[T]) own() *m.Constraints[T] {
	return &m.Constraints[T]{Min: t.min, Max: t.max, Weighted: t.weight}
}

// constraints merges the type's own bounds with integer bounds handed down
// by the parent, which take precedence.
func (t *ScalarType[T]) constraints(c *m.Constraints[int]) *m.Constraints[T] {
	out := t.own().Clone()

	if c != nil {
		if c.Min != nil {
			out.WithMin(T(*c.Min))
		}

		if c.Max != nil {
			out.WithMax(T(*c.Max))
		}

		if out.Weighted == m.WeightNone {
			out.Weighted = c.Weighted
		}
	}

	if !out.HasBounds() && out.Weighted == m.WeightNone {
		return nil
	}

	return out
}

func (t *ScalarType[T]) Generate(e *Engine, c *m.Constraints[int]) Value {
	return &ScalarValue[T]{V: GenerateScalar(e, t.constraints(c))}
}

func (t *ScalarType[T]) Mutate(e *Engine, v Value, c *m.Constraints[int]) {
	sv := mustValue[*ScalarValue[T]](t, v)

	MutateScalarWithin(e, &sv.V, t.constraints(c))
}

func (t *ScalarType[T]) Zero() Value {
	return &ScalarValue[T]{}
}

// ScalarValue holds one number.
type ScalarValue[T m.Number] struct {
	V T
}

func (v *ScalarValue[T]) SerializedSize() int {
	return infoOf[T]().bytes()
}

func (v *ScalarValue[T]) MinEnumVariantSize() int {
	return v.SerializedSize()
}

func (v *ScalarValue[T]) Serialize(enc *Encoder) {
	enc.WriteUint(toBits(v.V), v.SerializedSize())
}

func (v *ScalarValue[T]) Clone() Value {
	out := *v
	return &out
}

func (v *ScalarValue[T]) String() string {
	return fmt.Sprint(v.V)
}

func (v *ScalarValue[T]) raw() uint64 {
	return toBits(v.V)
}

func (v *ScalarValue[T]) setRaw(raw uint64) {
	v.V = fromBits[T](raw)
}

// BoolType is a one-byte boolean. Mutation treats it as a one-bit scalar.
type BoolType struct {
	fixedLayout
}

// Bool returns the boolean type.
func Bool() *BoolType {
	return &BoolType{fixedLayout: fixedLayout{size: 1}}
}

func (t *BoolType) Name() string {
	return "bool"
}

// scalar reports the backing byte so booleans can head a bitfield run.
func (t *BoolType) scalar() scalarInfo {
	return scalarInfo{width: 8}
}

func (t *BoolType) Generate(e *Engine, _ *m.Constraints[int]) Value {
	return &BoolValue{V: e.rng.IntN(2) == 1}
}

func (t *BoolType) Mutate(e *Engine, v Value, _ *m.Constraints[int]) {
	bv := mustValue[*BoolValue](t, v)

	bv.setRaw(e.mutateRaw(bv.raw(), 1, false, mutagens.Dangerous(1, false)))
}

func (t *BoolType) Zero() Value {
	return &BoolValue{}
}

// BoolValue holds one boolean.
type BoolValue struct {
	V bool
}

func (v *BoolValue) SerializedSize() int { return 1 }

func (v *BoolValue) MinEnumVariantSize() int { return 1 }

func (v *BoolValue) Serialize(enc *Encoder) {
	enc.WriteUint(v.raw(), 1)
}

func (v *BoolValue) Clone() Value {
	out := *v
	return &out
}

func (v *BoolValue) raw() uint64 {
	if v.V {
		return 1
	}

	return 0
}

func (v *BoolValue) setRaw(raw uint64) {
	v.V = raw&1 == 1
}
