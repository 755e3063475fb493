package domain

import (
	"fmt"
	"log/slog"

	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

func errWrongValue(t Type, v Value) error {
	return fmt.Errorf("%w: %T is not a value of %s", m.ErrUnsupportedSchema, v, t.Name())
}

// accountForBaseSize returns a copy of c with the default footprint of t
// reserved from the budget. It is a no-op when the caller already did so.
func accountForBaseSize(t Type, c *m.Constraints[int]) *m.Constraints[int] {
	out := c.Clone()
	if out == nil || out.BaseSizeAccountedFor {
		return out
	}

	out.BaseSizeAccountedFor = true

	if out.MaxSize == nil {
		return out
	}

	left := *out.MaxSize - t.MaxDefaultObjectSize()
	if left < 0 {
		slog.Warn("Budget smaller than default object size",
			"type", t.Name(), "budget", *out.MaxSize, "default", t.MaxDefaultObjectSize())

		left = 0
	}

	out.MaxSize = &left

	return out
}

// budget is the remaining byte allowance of one composite while it walks
// its children.
type budget struct {
	owner     string
	limited   bool
	remaining int
}

func newBudget(t Type, c *m.Constraints[int]) *budget {
	c = accountForBaseSize(t, c)

	b := &budget{owner: t.Name()}
	if n, ok := c.Budget(); ok {
		b.limited = true
		b.remaining = n
	}

	return b
}

// child returns the constraints handed to a child. accounted reports
// whether the child's own default footprint is already part of the
// parent's reservation.
func (b *budget) child(accounted bool) *m.Constraints[int] {
	if !b.limited {
		return nil
	}

	return budgetConstraints(b.remaining, accounted)
}

// free returns the bytes left after used bytes of existing content.
func (b *budget) free(used int) int {
	return max(0, b.remaining-used)
}

func budgetConstraints(n int, accounted bool) *m.Constraints[int] {
	return m.NewConstraints[int]().
		WithMaxSize(n).
		WithBaseSizeAccountedFor(accounted)
}

// fits reports whether n more bytes are available.
func (b *budget) fits(n int) bool {
	return !b.limited || n <= b.remaining
}

// consume takes n bytes. Overdrafts clamp to zero with a warning.
func (b *budget) consume(n int) {
	if !b.limited || n == 0 {
		return
	}

	b.remaining -= n
	if b.remaining < 0 {
		slog.Warn("Value exceeded remaining budget", "type", b.owner, "over", -b.remaining)

		b.remaining = 0
	}
}

// release returns n bytes, as done before a child is mutated.
func (b *budget) release(n int) {
	if b.limited {
		b.remaining += n
	}
}
