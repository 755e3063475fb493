package domain

import (
	"encoding/binary"
	"fmt"

	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// Field is a named member of a struct or variant.
type Field struct {
	name         string
	typ          Type
	ignore       bool
	ignoreChance float64
	init         func(e *Engine) Value
	bits         uint8
	order        binary.AppendByteOrder
}

// FieldOption configures a Field.
type FieldOption func(*Field)

// NewField declares a field of type typ.
func NewField(name string, typ Type, opts ...FieldOption) *Field {
	f := &Field{name: name, typ: typ}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Ignore keeps the field at its zero value and out of mutation.
func Ignore() FieldOption {
	return func(f *Field) { f.ignore = true }
}

// IgnoreChance leaves the field zero with probability p on generation.
func IgnoreChance(p float64) FieldOption {
	return func(f *Field) { f.ignoreChance = p }
}

// Initializer replaces generation of the field with fn.
func Initializer(fn func(e *Engine) Value) FieldOption {
	return func(f *Field) { f.init = fn }
}

// Bits packs the field into n bits of a bitfield run. The field type must
// be an integer scalar or bool.
func Bits(n uint8) FieldOption {
	return func(f *Field) { f.bits = n }
}

// BigEndian serializes the field big-endian regardless of the global order.
func BigEndian() FieldOption {
	return func(f *Field) { f.order = binary.BigEndian }
}

// LittleEndian serializes the field little-endian regardless of the global
// order.
func LittleEndian() FieldOption {
	return func(f *Field) { f.order = binary.LittleEndian }
}

// Name returns the field name.
func (f *Field) Name() string {
	return f.name
}

// Type returns the field type.
func (f *Field) Type() Type {
	return f.typ
}

func (f *Field) isBitfield() bool {
	return f.bits > 0
}

func (f *Field) generate(e *Engine, c *m.Constraints[int]) Value {
	switch {
	case f.ignore:
		return f.typ.Zero()
	case f.ignoreChance > 0 && e.GenChance(f.ignoreChance):
		return f.typ.Zero()
	case f.init != nil:
		return f.init(e)
	case f.isBitfield():
		v := mustRaw(f, f.typ.Zero())
		v.setRaw(e.rng.Uint64() & maskBits(f.bits))

		return v
	default:
		return f.typ.Generate(e, c)
	}
}

func (f *Field) mutate(e *Engine, v Value, c *m.Constraints[int]) {
	switch {
	case f.ignore:
		return
	case f.isBitfield():
		rv := mustRaw(f, v)
		rv.setRaw(e.mutateBits(rv.raw(), f.bits))
	default:
		f.typ.Mutate(e, v, c)
	}
}

func mustRaw(f *Field, v Value) rawValue {
	rv, ok := v.(rawValue)
	if !ok {
		panic(fmt.Errorf("%w: bitfield %q has non-scalar value %T", m.ErrUnsupportedSchema, f.name, v))
	}

	return rv
}
