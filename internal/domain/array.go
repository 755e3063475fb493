package domain

import (
	"log/slog"
	"strconv"

	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// ArrayType is a sequence of exactly n elements.
type ArrayType struct {
	elem     Type
	n        int
	strategy ElementStrategy
}

// ArrayOf declares an array of n elems.
func ArrayOf(elem Type, n int, opts ...VecOption) *ArrayType {
	// reuse the vec options for the element strategy
	cfg := &VecType{elem: elem}
	for _, opt := range opts {
		opt(cfg)
	}

	return &ArrayType{elem: elem, n: n, strategy: cfg.strategy}
}

func (t *ArrayType) Name() string {
	return "[" + strconv.Itoa(t.n) + "]" + t.elem.Name()
}

func (t *ArrayType) MinNonzeroElementsSize() int {
	return t.n * t.elem.MinNonzeroElementsSize()
}

func (t *ArrayType) MaxDefaultObjectSize() int {
	if t.elem.IsVariableSize() {
		return 0
	}

	return t.n * t.elem.MaxDefaultObjectSize()
}

func (t *ArrayType) IsVariableSize() bool {
	return t.elem.IsVariableSize()
}

func (t *ArrayType) Zero() Value {
	out := &VecValue{elems: make([]Value, t.n)}
	for i := range out.elems {
		out.elems[i] = t.elem.Zero()
	}

	return out
}

// Generate fills every slot. With a budget each element gets an equal
// share of it.
func (t *ArrayType) Generate(e *Engine, c *m.Constraints[int]) Value {
	b := newBudget(t, c)

	var child *m.Constraints[int]

	if b.limited && t.n > 0 {
		if t.elem.IsVariableSize() && t.n*t.elem.MinNonzeroElementsSize() > b.remaining {
			slog.Warn("Budget smaller than the minimum array size",
				"type", t.Name(), "budget", b.remaining, "min", t.n*t.elem.MinNonzeroElementsSize())
		}

		child = budgetConstraints(b.remaining/t.n, !t.elem.IsVariableSize())
	}

	out := &VecValue{elems: make([]Value, 0, t.n)}

	for len(out.elems) < t.n {
		el := t.elem.Generate(e, child)
		out.elems = append(out.elems, el)

		if t.strategy != RepeatElements || len(out.elems) >= t.n || !e.GenChance(ChanceToRepeatArrayValue) {
			continue
		}

		end := GenRange(e, len(out.elems), t.n)
		for len(out.elems) < end {
			out.elems = append(out.elems, el.Clone())
		}
	}

	return out
}

func (t *ArrayType) Mutate(e *Engine, v Value, c *m.Constraints[int]) {
	vv := mustValue[*VecValue](t, v)
	e.markMutationPass()

	mutateElements(e, t.elem, vv.elems, newBudget(t, c))
}
