package domain

import (
	"log/slog"

	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// maxVecElements is the default upper bound on generated lengths.
const maxVecElements = 0x1000

// ElementStrategy decides how collection elements are generated.
type ElementStrategy int

const (
	// RepeatElements occasionally repeats an element verbatim for a run.
	RepeatElements ElementStrategy = iota
	// IndependentElements generates every element on its own.
	IndependentElements
)

// ResizeFactor is how much a collection grows or shrinks by.
type ResizeFactor int

const (
	ResizeQuarter ResizeFactor = iota
	ResizeHalf
	ResizeThreeQuarters
	ResizeFixedBytes
	ResizeAllBytes

	resizeFactors
)

func (f ResizeFactor) String() string {
	switch f {
	case ResizeQuarter:
		return "quarter"
	case ResizeHalf:
		return "half"
	case ResizeThreeQuarters:
		return "three_quarters"
	case ResizeFixedBytes:
		return "fixed_bytes"
	default:
		return "all_bytes"
	}
}

// VecOption configures a VecType.
type VecOption func(*VecType)

// WithLen bounds the generated length to [min, max).
func WithLen(min, max int) VecOption {
	return func(t *VecType) {
		t.min, t.max = min, &max
	}
}

// WithLenWeight biases the generated length.
func WithLenWeight(w m.Weighted) VecOption {
	return func(t *VecType) { t.weight = w }
}

// WithElementStrategy selects how elements are generated.
func WithElementStrategy(s ElementStrategy) VecOption {
	return func(t *VecType) { t.strategy = s }
}

// VecType is a variable-length sequence of elements.
type VecType struct {
	elem     Type
	min      int
	max      *int
	weight   m.Weighted
	strategy ElementStrategy
}

// VecOf declares a sequence of elem.
func VecOf(elem Type, opts ...VecOption) *VecType {
	t := &VecType{elem: elem}
	for _, opt := range opts {
		opt(t)
	}

	if t.max != nil && t.min > *t.max {
		mustValidate(m.NewConstraints[int]().WithMin(t.min).WithMax(*t.max))
	}

	return t
}

func (t *VecType) Name() string {
	return "vec<" + t.elem.Name() + ">"
}

// Elem returns the element type.
func (t *VecType) Elem() Type {
	return t.elem
}

func (t *VecType) MinNonzeroElementsSize() int {
	return t.elem.MinNonzeroElementsSize() * max(1, t.min)
}

// MaxDefaultObjectSize is zero: the default vec is empty.
func (t *VecType) MaxDefaultObjectSize() int {
	return 0
}

func (t *VecType) IsVariableSize() bool {
	return true
}

func (t *VecType) Zero() Value {
	return &VecValue{}
}

// lenBounds resolves the length range for one generation.
func (t *VecType) lenBounds(e *Engine, c *m.Constraints[int], b *budget) (int, int) {
	lo, hi := t.min, maxVecElements
	declared := t.max != nil

	if t.max != nil {
		hi = *t.max
	}

	if c != nil {
		if c.Min != nil {
			lo = *c.Min
		}

		if c.Max != nil {
			hi, declared = *c.Max, true
		}
	}

	if lo != hi {
		if lo != 0 && e.GenChance(ChanceToIgnoreMinMax) {
			lo = 0
		}

		if declared && e.GenChance(ChanceToIgnoreMinMax) {
			hi *= 2
		}
	}

	if b.limited {
		hi = min(hi, b.remaining/max(1, t.elem.MinNonzeroElementsSize()))
	}

	return lo, hi
}

func (t *VecType) weightFor(c *m.Constraints[int]) m.Weighted {
	if t.weight == m.WeightNone && c != nil {
		return c.Weighted
	}

	return t.weight
}

func (t *VecType) Generate(e *Engine, c *m.Constraints[int]) Value {
	b := newBudget(t, c)
	lo, hi := t.lenBounds(e, c, b)

	n := pickLen(e, lo, hi, t.weightFor(c))

	return &VecValue{elems: generateElements(e, t.elem, n, b, t.strategy)}
}

// pickLen draws a length from [lo, hi). A degenerate range yields its
// smaller end.
func pickLen(e *Engine, lo, hi int, w m.Weighted) int {
	if lo >= hi {
		return max(0, hi)
	}

	return GenWeightedRange(e, lo, hi, w)
}

// generateElements builds up to n elements within b, stopping before the
// first element that does not fit.
func generateElements(e *Engine, elem Type, n int, b *budget, strategy ElementStrategy) []Value {
	elems := make([]Value, 0, n)
	used := 0

	for len(elems) < n {
		var child *m.Constraints[int]
		if b.limited {
			child = budgetConstraints(b.free(used), false)
		}

		el := elem.Generate(e, child)

		size := el.SerializedSize()
		if b.limited && used+size > b.remaining {
			break
		}

		used += size
		elems = append(elems, el)

		if strategy != RepeatElements || len(elems) >= n || !e.GenChance(ChanceToRepeatArrayValue) {
			continue
		}

		end := GenRange(e, len(elems), n)
		for len(elems) < end && (!b.limited || used+size <= b.remaining) {
			used += size
			elems = append(elems, el.Clone())
		}
	}

	return elems
}

func (t *VecType) Mutate(e *Engine, v Value, c *m.Constraints[int]) {
	vv := mustValue[*VecValue](t, v)
	b := newBudget(t, c)
	e.markMutationPass()

	if e.Mode().IsHavoc() && e.GenChance(ChanceToResizeVec) {
		free := b.free(vv.SerializedSize())
		canGrow := !b.limited || free > 0

		if e.rng.IntN(2) == 0 && canGrow {
			t.grow(e, vv, b.limited, free)
		} else {
			shrink(e, vv)
		}

		return
	}

	mutateElements(e, t.elem, vv.elems, b)
}

func (t *VecType) grow(e *Engine, vv *VecValue, limited bool, free int) {
	perElem := max(1, t.elem.MaxDefaultObjectSize())
	room := free / perElem

	if limited && room == 0 {
		return
	}

	n := 0

	switch factor := ResizeFactor(e.rng.IntN(int(resizeFactors))); {
	case len(vv.elems) == 0 && limited:
		n = GenRange(e, 1, room+1)
	case len(vv.elems) == 0:
		n = GenRange(e, 1, 9)
	case factor == ResizeQuarter:
		n = len(vv.elems) / 4
	case factor == ResizeHalf:
		n = len(vv.elems) / 2
	case factor == ResizeThreeQuarters:
		n = len(vv.elems) - len(vv.elems)/4
	case factor == ResizeFixedBytes:
		n = GenRange(e, 1, 9)
	case limited:
		n = GenRange(e, 1, room+1)
	default:
		n = GenRange(e, 1, len(vv.elems)+1)
	}

	if limited {
		n = min(n, room)
	}

	if n == 0 {
		return
	}

	b := &budget{owner: t.Name(), limited: limited, remaining: free}
	added := generateElements(e, t.elem, n, b, IndependentElements)

	if e.rng.IntN(2) == 0 {
		vv.elems = append(added, vv.elems...)
	} else {
		vv.elems = append(vv.elems, added...)
	}

	slog.Debug("Grew vec", "type", t.Name(), "added", len(added), "len", len(vv.elems))
}

// shrink drops elements from one end of vv.
func shrink(e *Engine, vv *VecValue) {
	size := len(vv.elems)
	if size == 0 {
		return
	}

	n := 0

	switch ResizeFactor(e.rng.IntN(int(resizeFactors))) {
	case ResizeQuarter:
		n = size / 4
	case ResizeHalf:
		n = size / 2
	case ResizeThreeQuarters:
		n = size - size/4
	case ResizeFixedBytes:
		n = GenRange(e, 1, 9)
	default:
		n = size
	}

	if n == 0 {
		n = GenRange(e, 0, size+1)
	}

	n = min(n, size)

	if n == size {
		vv.elems = vv.elems[:0]
		return
	}

	if e.rng.IntN(2) == 0 {
		vv.elems = append(vv.elems[:0], vv.elems[n:]...)
	} else {
		vv.elems = vv.elems[:size-n]
	}
}

// mutateElements mutates elements in place. A variable-size element that
// outgrows the budget is restored from its backup.
func mutateElements(e *Engine, elem Type, elems []Value, b *budget) {
	free := b.free(sizeOfAll(elems))

	for i, el := range elems {
		if e.ShouldEarlyBailMutation() {
			return
		}

		if !b.limited || !elem.IsVariableSize() {
			elem.Mutate(e, el, nil)
			continue
		}

		prev := el.SerializedSize()
		room := free + prev
		backup := el.Clone()

		elem.Mutate(e, el, budgetConstraints(room, false))

		if size := el.SerializedSize(); size > room {
			elems[i] = backup
		} else {
			free -= size - prev
		}
	}
}

func sizeOfAll(values []Value) int {
	n := 0
	for _, v := range values {
		n += v.SerializedSize()
	}

	return n
}

// VecValue is an instance of a VecType or ArrayType.
type VecValue struct {
	elems []Value
}

// Len returns the number of elements.
func (v *VecValue) Len() int {
	return len(v.elems)
}

// At returns the i-th element.
func (v *VecValue) At(i int) Value {
	return v.elems[i]
}

// Elements returns the elements. The slice is shared with v.
func (v *VecValue) Elements() []Value {
	return v.elems
}

// Append adds elements to the end.
func (v *VecValue) Append(elems ...Value) {
	v.elems = append(v.elems, elems...)
}

func (v *VecValue) SerializedSize() int {
	return sizeOfAll(v.elems)
}

func (v *VecValue) MinEnumVariantSize() int {
	n := 0
	for _, el := range v.elems {
		n += el.MinEnumVariantSize()
	}

	return n
}

func (v *VecValue) Serialize(enc *Encoder) {
	for _, el := range v.elems {
		el.Serialize(enc)
	}
}

func (v *VecValue) Clone() Value {
	out := &VecValue{elems: make([]Value, len(v.elems))}
	for i, el := range v.elems {
		out.elems[i] = el.Clone()
	}

	return out
}
