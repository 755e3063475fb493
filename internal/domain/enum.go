package domain

import (
	"fmt"

	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// maxVariantAttempts bounds resampling when a variant's ignore chance fires.
const maxVariantAttempts = 5

// variantPicker draws variant indices by weight, skipping always-ignored
// variants. It is built once per enum type.
type variantPicker struct {
	selectable []int
	weights    []uint64
	chances    []float64
	dist       weightedIndex
}

func newVariantPicker(owner string, weights []uint64, ignored []bool, chances []float64) variantPicker {
	p := variantPicker{chances: chances}

	var live []uint64

	for i, w := range weights {
		if ignored[i] || w == 0 {
			continue
		}

		p.selectable = append(p.selectable, i)
		live = append(live, w)
	}

	if len(p.selectable) == 0 {
		panic(fmt.Errorf("%w: %s", m.ErrNoVariants, owner))
	}

	p.weights = live
	p.dist = mustWeightedIndex(live)

	return p
}

func (p variantPicker) pick(e *Engine) int {
	for attempt := 1; ; attempt++ {
		idx := p.selectable[p.dist.sample(e.rng)]

		chance := p.chances[idx]
		if attempt >= maxVariantAttempts || chance <= 0 || !e.GenChance(chance) {
			return idx
		}
	}
}

func (p variantPicker) first() int {
	return p.selectable[0]
}

// pickWithin draws like pick, restricted to the variants accepted by fits.
// It returns fallback when fits accepts none of them.
func (p variantPicker) pickWithin(e *Engine, fits func(idx int) bool, fallback int) int {
	if idx := p.pick(e); fits(idx) {
		return idx
	}

	var (
		candidates []int
		weights    []uint64
	)

	for i, idx := range p.selectable {
		if fits(idx) {
			candidates = append(candidates, idx)
			weights = append(weights, p.weights[i])
		}
	}

	if len(candidates) == 0 {
		return fallback
	}

	return candidates[mustWeightedIndex(weights).sample(e.rng)]
}

// Variant is one alternative of a data enum. Its fields serialize like a
// struct; no discriminant is written unless a field carries one.
type Variant struct {
	name         string
	fields       []*Field
	weight       uint64
	ignore       bool
	ignoreChance float64
	fixup        FixupFunc

	body *StructType
}

// VariantOption configures a Variant.
type VariantOption func(*Variant)

// VariantWeight sets the relative selection weight. The default is 1.
func VariantWeight(w uint64) VariantOption {
	return func(v *Variant) { v.weight = w }
}

// VariantIgnore excludes the variant from generation.
func VariantIgnore() VariantOption {
	return func(v *Variant) { v.ignore = true }
}

// VariantIgnoreChance rejects the variant with probability p when drawn.
func VariantIgnoreChance(p float64) VariantOption {
	return func(v *Variant) { v.ignoreChance = p }
}

// VariantFixup runs fn on the variant's fields after generation or mutation.
func VariantFixup(fn FixupFunc) VariantOption {
	return func(v *Variant) { v.fixup = fn }
}

// NewVariant declares a data enum variant.
func NewVariant(name string, fields []*Field, opts ...VariantOption) *Variant {
	v := &Variant{name: name, fields: fields, weight: 1}
	for _, opt := range opts {
		opt(v)
	}

	var structOpts []StructOption
	if v.fixup != nil {
		structOpts = append(structOpts, WithFixup(v.fixup))
	}

	v.body = NewStruct(name, fields, structOpts...)

	return v
}

// Name returns the variant name.
func (v *Variant) Name() string {
	return v.name
}

// EnumType is a tagged union whose variants carry fields.
type EnumType struct {
	name     string
	variants []*Variant
	picker   variantPicker

	variable   bool
	minNonzero int
	minVariant int
	smallest   int
}

// NewEnum builds a data enum. It panics with ErrNoVariants when no variant
// can be selected.
func NewEnum(name string, variants ...*Variant) *EnumType {
	t := &EnumType{name: name, variants: variants}

	weights := make([]uint64, len(variants))
	ignored := make([]bool, len(variants))
	chances := make([]float64, len(variants))

	for i, v := range variants {
		weights[i], ignored[i], chances[i] = v.weight, v.ignore, v.ignoreChance
	}

	t.picker = newVariantPicker(name, weights, ignored, chances)

	for n, idx := range t.picker.selectable {
		body := variants[idx].body
		size := body.MaxDefaultObjectSize()

		if n == 0 {
			t.minNonzero, t.minVariant, t.smallest = body.MinNonzeroElementsSize(), size, idx
		}

		if body.IsVariableSize() || size != t.minVariant {
			t.variable = true
		}

		t.minNonzero = min(t.minNonzero, body.MinNonzeroElementsSize())

		if size < t.minVariant {
			t.minVariant, t.smallest = size, idx
		}
	}

	return t
}

func (t *EnumType) Name() string {
	return t.name
}

func (t *EnumType) MinNonzeroElementsSize() int {
	return t.minNonzero
}

// MaxDefaultObjectSize is the default footprint of the smallest selectable
// variant. Generation never picks a variant larger than the room left.
func (t *EnumType) MaxDefaultObjectSize() int {
	return t.minVariant
}

func (t *EnumType) IsVariableSize() bool {
	return t.variable
}

// Zero is the smallest selectable variant with zeroed fields.
func (t *EnumType) Zero() Value {
	return &EnumValue{typ: t, variant: t.smallest, body: t.variants[t.smallest].body.Zero().(*StructValue)}
}

func (t *EnumType) Generate(e *Engine, c *m.Constraints[int]) Value {
	idx := t.pickVariant(e, c)

	return &EnumValue{typ: t, variant: idx, body: t.generateBody(e, idx, c)}
}

// room returns the bytes the active variant may occupy: the budget, plus
// the enum's own reservation when the caller already made it.
func (t *EnumType) room(c *m.Constraints[int]) (int, bool) {
	n, ok := c.Budget()
	if ok && c.BaseSizeAccountedFor {
		n += t.minVariant
	}

	return n, ok
}

// variantConstraints hands the room to a variant, which reserves its own
// default footprint out of it.
func (t *EnumType) variantConstraints(c *m.Constraints[int]) *m.Constraints[int] {
	n, ok := t.room(c)
	if !ok {
		return nil
	}

	return budgetConstraints(n, false)
}

// pickVariant draws a variant whose default footprint fits the room,
// falling back to the smallest one.
func (t *EnumType) pickVariant(e *Engine, c *m.Constraints[int]) int {
	n, ok := t.room(c)
	if !ok {
		return t.picker.pick(e)
	}

	return t.picker.pickWithin(e, func(idx int) bool {
		return t.variants[idx].body.MaxDefaultObjectSize() <= n
	}, t.smallest)
}

func (t *EnumType) generateBody(e *Engine, idx int, c *m.Constraints[int]) *StructValue {
	return t.variants[idx].body.Generate(e, t.variantConstraints(c)).(*StructValue)
}

func (t *EnumType) Mutate(e *Engine, v Value, c *m.Constraints[int]) {
	ev := mustValue[*EnumValue](t, v)
	e.markMutationPass()

	if e.Mode().IsHavoc() && e.GenChance(ChanceToSwitchVariant) {
		ev.variant = t.pickVariant(e, c)
		ev.body = t.generateBody(e, ev.variant, c)

		return
	}

	t.variants[ev.variant].body.Mutate(e, ev.body, t.variantConstraints(c))
}

// EnumValue is an instance of an EnumType.
type EnumValue struct {
	typ     *EnumType
	variant int
	body    *StructValue
}

// Variant returns the active variant name.
func (v *EnumValue) Variant() string {
	return v.typ.variants[v.variant].name
}

// Body returns the fields of the active variant.
func (v *EnumValue) Body() *StructValue {
	return v.body
}

func (v *EnumValue) SerializedSize() int {
	return v.body.SerializedSize()
}

func (v *EnumValue) MinEnumVariantSize() int {
	return v.typ.minVariant
}

func (v *EnumValue) Serialize(enc *Encoder) {
	v.body.Serialize(enc)
}

func (v *EnumValue) Clone() Value {
	return &EnumValue{typ: v.typ, variant: v.variant, body: v.body.Clone().(*StructValue)}
}

// UnitVariant is one named value of a unit enum. A zero Weight means 1.
type UnitVariant[T m.Number] struct {
	Name         string
	Value        T
	Weight       uint64
	Ignore       bool
	IgnoreChance float64
}

// UnitEnumType is an enum without payloads, serialized as its backing
// integer.
type UnitEnumType[T m.Number] struct {
	fixedLayout

	name     string
	variants []UnitVariant[T]
	picker   variantPicker
}

// NewUnitEnum builds a unit enum backed by T.
func NewUnitEnum[T m.Number](name string, variants ...UnitVariant[T]) *UnitEnumType[T] {
	weights := make([]uint64, len(variants))
	ignored := make([]bool, len(variants))
	chances := make([]float64, len(variants))

	for i, v := range variants {
		weights[i] = v.Weight
		if weights[i] == 0 {
			weights[i] = 1
		}

		ignored[i], chances[i] = v.Ignore, v.IgnoreChance
	}

	return &UnitEnumType[T]{
		fixedLayout: fixedLayout{size: infoOf[T]().bytes()},
		name:        name,
		variants:    variants,
		picker:      newVariantPicker(name, weights, ignored, chances),
	}
}

func (t *UnitEnumType[T]) Name() string {
	return t.name
}

// Variants returns the declared variants.
func (t *UnitEnumType[T]) Variants() []UnitVariant[T] {
	return t.variants
}

func (t *UnitEnumType[T]) Zero() Value {
	return &UnitEnumValue[T]{typ: t, variant: t.picker.first()}
}

func (t *UnitEnumType[T]) Generate(e *Engine, _ *m.Constraints[int]) Value {
	return &UnitEnumValue[T]{typ: t, variant: t.picker.pick(e)}
}

// Mutate redraws the variant when this enum is the field being mutated.
func (t *UnitEnumType[T]) Mutate(e *Engine, v Value, _ *m.Constraints[int]) {
	uv := mustValue[*UnitEnumValue[T]](t, v)

	if e.shouldMutateLeaf() {
		uv.variant = t.picker.pick(e)
	}
}

// UnitEnumValue is an instance of a UnitEnumType.
type UnitEnumValue[T m.Number] struct {
	typ     *UnitEnumType[T]
	variant int
}

// Variant returns the active variant.
func (v *UnitEnumValue[T]) Variant() UnitVariant[T] {
	return v.typ.variants[v.variant]
}

// Primitive returns the backing integer of the active variant.
func (v *UnitEnumValue[T]) Primitive() T {
	return v.Variant().Value
}

func (v *UnitEnumValue[T]) SerializedSize() int {
	return v.typ.size
}

func (v *UnitEnumValue[T]) MinEnumVariantSize() int {
	return v.typ.size
}

func (v *UnitEnumValue[T]) Serialize(enc *Encoder) {
	enc.WriteUint(toBits(v.Primitive()), v.typ.size)
}

func (v *UnitEnumValue[T]) Clone() Value {
	out := *v
	return &out
}

func (v *UnitEnumValue[T]) String() string {
	return v.Variant().Name
}
