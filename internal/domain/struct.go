package domain

import (
	"encoding/binary"
	"fmt"

	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// FixupFunc repairs a value after generation or mutation, typically to keep
// length or checksum fields consistent.
type FixupFunc func(v *StructValue, e *Engine)

// StructOption configures a StructType.
type StructOption func(*StructType)

// WithFixup runs fn after every generation and mutation, unless the
// iteration's fixup policy says otherwise.
func WithFixup(fn FixupFunc) StructOption {
	return func(t *StructType) { t.fixup = fn }
}

// WithSerializedSize declares a fixed wire size. Shorter content is padded
// with zeros; longer content panics on serialization.
func WithSerializedSize(n int) StructOption {
	return func(t *StructType) { t.fixedSize = n }
}

// StructType is a sequence of named fields serialized in declaration order.
type StructType struct {
	name   string
	fields []*Field
	slots  []bitSlot
	index  map[string]int
	fixup  FixupFunc

	fixedSize int
	// dynamic is set when any field has a variable size.
	dynamic        bool
	contentDefault int
	minNonzero     int
}

// NewStruct builds a struct type. It panics on malformed layouts: bad
// bitfields, duplicate field names or default content larger than a
// declared fixed size.
func NewStruct(name string, fields []*Field, opts ...StructOption) *StructType {
	t := &StructType{
		name:   name,
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}

	for _, opt := range opts {
		opt(t)
	}

	for i, f := range fields {
		if _, dup := t.index[f.name]; dup {
			panic(fmt.Errorf("%w: %s: duplicate field %q", m.ErrUnsupportedSchema, name, f.name))
		}

		t.index[f.name] = i
	}

	t.slots = planBitfields(name, fields)

	for i, f := range fields {
		slot := t.slots[i]
		if slot.packed() {
			if slot.head {
				t.contentDefault += slot.bytes()
				t.minNonzero += slot.bytes()
			}

			continue
		}

		t.contentDefault += f.typ.MaxDefaultObjectSize()
		t.minNonzero += f.typ.MinNonzeroElementsSize()

		if f.typ.IsVariableSize() {
			t.dynamic = true
		}
	}

	if t.fixedSize > 0 && t.contentDefault > t.fixedSize {
		panic(fmt.Errorf("%w: %s: default content of %d bytes exceeds declared size %d",
			m.ErrSerializedSizeExceeded, name, t.contentDefault, t.fixedSize))
	}

	return t
}

func (t *StructType) Name() string {
	return t.name
}

// Fields returns the declared fields.
func (t *StructType) Fields() []*Field {
	return t.fields
}

func (t *StructType) MinNonzeroElementsSize() int {
	if t.fixedSize > 0 {
		return t.fixedSize
	}

	return t.minNonzero
}

func (t *StructType) MaxDefaultObjectSize() int {
	if t.fixedSize > 0 {
		return t.fixedSize
	}

	return t.contentDefault
}

func (t *StructType) IsVariableSize() bool {
	return t.dynamic && t.fixedSize == 0
}

func (t *StructType) Zero() Value {
	v := &StructValue{typ: t, fields: make([]Value, len(t.fields))}
	for i, f := range t.fields {
		v.fields[i] = f.typ.Zero()
	}

	return v
}

// budgetFor reserves the struct's default footprint and, for fixed-size
// structs with dynamic fields, caps the dynamic content to the padding room.
func (t *StructType) budgetFor(c *m.Constraints[int]) *budget {
	b := newBudget(t, c)

	if t.fixedSize > 0 && t.dynamic {
		room := t.fixedSize - t.contentDefault
		if !b.limited || room < b.remaining {
			b.limited = true
			b.remaining = room
		}
	}

	return b
}

// dynamicSize is the part of field i's size not covered by the reservation.
func (t *StructType) dynamicSize(i int, v Value) int {
	f := t.fields[i]
	if t.slots[i].packed() || !f.typ.IsVariableSize() {
		return 0
	}

	return max(0, v.SerializedSize()-f.typ.MaxDefaultObjectSize())
}

func (t *StructType) Generate(e *Engine, c *m.Constraints[int]) Value {
	b := t.budgetFor(c)
	builder := newStructBuilder(t)

	for _, i := range e.fieldOrder(len(t.fields), t.dynamic) {
		fv := t.fields[i].generate(e, b.child(true))
		b.consume(t.dynamicSize(i, fv))
		builder.set(i, fv)
	}

	v := builder.finish()
	t.runFixup(e, v)

	return v
}

func (t *StructType) Mutate(e *Engine, v Value, c *m.Constraints[int]) {
	sv := mustValue[*StructValue](t, v)
	e.markMutationPass()

	b := t.budgetFor(c)
	for i, fv := range sv.fields {
		b.consume(t.dynamicSize(i, fv))
	}

	t.mutateFields(e, sv, b)
	t.runFixup(e, sv)
}

// mutateFields visits fields in declaration order, or shuffled in Havoc for
// structs with dynamic fields. A dynamic field whose mutation breaks the
// budget is restored from a backup.
func (t *StructType) mutateFields(e *Engine, sv *StructValue, b *budget) {
	shuffle := t.dynamic && e.Mode().IsHavoc()

	for _, i := range e.fieldOrder(len(t.fields), shuffle) {
		if e.ShouldEarlyBailMutation() {
			return
		}

		f, fv := t.fields[i], sv.fields[i]

		if t.slots[i].packed() || !f.typ.IsVariableSize() {
			f.mutate(e, fv, b.child(true))
			continue
		}

		used := t.dynamicSize(i, fv)
		b.release(used)
		backup := fv.Clone()

		f.mutate(e, fv, b.child(true))

		grown := t.dynamicSize(i, fv)
		if !b.fits(grown) {
			sv.fields[i] = backup
			grown = used
		}

		b.consume(grown)
	}
}

func (t *StructType) runFixup(e *Engine, v *StructValue) {
	if t.fixup != nil && e.ShouldFixup() {
		t.fixup(v, e)
	}
}

func (e *Engine) fieldOrder(n int, shuffle bool) []int {
	if shuffle {
		return e.rng.Perm(n)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	return order
}

// structBuilder collects field values generated out of order.
type structBuilder struct {
	typ    *StructType
	values []Value
	filled []bool
}

func newStructBuilder(t *StructType) *structBuilder {
	return &structBuilder{
		typ:    t,
		values: make([]Value, len(t.fields)),
		filled: make([]bool, len(t.fields)),
	}
}

func (sb *structBuilder) set(i int, v Value) {
	sb.values[i] = v
	sb.filled[i] = true
}

func (sb *structBuilder) finish() *StructValue {
	for i, ok := range sb.filled {
		if !ok {
			panic(fmt.Errorf("%w: %s: field %q was never generated",
				m.ErrUnsupportedSchema, sb.typ.name, sb.typ.fields[i].name))
		}
	}

	return &StructValue{typ: sb.typ, fields: sb.values}
}

// StructValue is an instance of a StructType.
type StructValue struct {
	typ    *StructType
	fields []Value
}

// Type returns the struct's type.
func (v *StructValue) Type() *StructType {
	return v.typ
}

// Len returns the number of fields.
func (v *StructValue) Len() int {
	return len(v.fields)
}

// FieldAt returns the i-th field value.
func (v *StructValue) FieldAt(i int) Value {
	return v.fields[i]
}

// Field returns the value of the named field, or nil.
func (v *StructValue) Field(name string) Value {
	i, ok := v.typ.index[name]
	if !ok {
		return nil
	}

	return v.fields[i]
}

// Set replaces the value of the named field. It panics on unknown names.
func (v *StructValue) Set(name string, fv Value) {
	i, ok := v.typ.index[name]
	if !ok {
		panic(fmt.Errorf("%w: %s has no field %q", m.ErrUnsupportedSchema, v.typ.name, name))
	}

	v.fields[i] = fv
}

func (v *StructValue) contentSize(size func(Value) int) int {
	n := 0

	for i, fv := range v.fields {
		slot := v.typ.slots[i]
		if slot.packed() {
			if slot.head {
				n += slot.bytes()
			}

			continue
		}

		n += size(fv)
	}

	return n
}

func (v *StructValue) SerializedSize() int {
	if v.typ.fixedSize > 0 {
		return v.typ.fixedSize
	}

	return v.contentSize(Value.SerializedSize)
}

func (v *StructValue) MinEnumVariantSize() int {
	if v.typ.fixedSize > 0 {
		return v.typ.fixedSize
	}

	return v.contentSize(Value.MinEnumVariantSize)
}

func (v *StructValue) Serialize(enc *Encoder) {
	start := enc.Written()

	var (
		acc      uint64
		accOrder binary.AppendByteOrder
	)

	for i, f := range v.typ.fields {
		slot := v.typ.slots[i]

		if !slot.packed() {
			fv := v.fields[i]
			enc.withOrder(f.order, func() { fv.Serialize(enc) })

			continue
		}

		if slot.head {
			acc, accOrder = 0, f.order
		}

		acc |= (mustRaw(f, v.fields[i]).raw() & maskBits(f.bits)) << slot.shift

		if slot.tail {
			word, size := acc, slot.bytes()
			enc.withOrder(accOrder, func() { enc.WriteUint(word, size) })
		}
	}

	if v.typ.fixedSize == 0 {
		return
	}

	written := enc.Written() - start
	if written > v.typ.fixedSize {
		panic(fmt.Errorf("%w: %s: %d bytes of content, declared %d",
			m.ErrSerializedSizeExceeded, v.typ.name, written, v.typ.fixedSize))
	}

	enc.Pad(v.typ.fixedSize - written)
}

func (v *StructValue) Clone() Value {
	out := &StructValue{typ: v.typ, fields: make([]Value, len(v.fields))}
	for i, fv := range v.fields {
		out.fields[i] = fv.Clone()
	}

	return out
}

// FieldValue returns the named field of v as V. It panics when the field is
// missing or holds a different value type.
func FieldValue[V Value](v *StructValue, name string) V {
	fv, ok := v.Field(name).(V)
	if !ok {
		panic(fmt.Errorf("%w: %s.%s is %T", m.ErrUnsupportedSchema, v.typ.name, name, v.Field(name)))
	}

	return fv
}
