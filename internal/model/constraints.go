package model

import "fmt"

// Number is the set of scalar kinds the engine can sample and mutate.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// Weighted biases a range draw toward one of its ends.
type Weighted int

const (
	// WeightNone samples uniformly.
	WeightNone Weighted = iota
	// WeightMin favors the low third of the range.
	WeightMin
	// WeightMax favors the high third of the range.
	WeightMax
)

func (w Weighted) String() string {
	switch w {
	case WeightMin:
		return "min"
	case WeightMax:
		return "max"
	default:
		return "none"
	}
}

// Constraints bound a single generate or mutate call. Max is exclusive and
// MaxSize is the remaining byte budget. A callee never modifies the
// constraints it was handed; it clones them and adjusts the copy.
type Constraints[T Number] struct {
	Min      *T
	Max      *T
	Weighted Weighted
	MaxSize  *int
	// BaseSizeAccountedFor reports whether the caller already reserved this
	// object's own default footprint out of MaxSize.
	BaseSizeAccountedFor bool
}

// NewConstraints returns an empty constraint set.
func NewConstraints[T Number]() *Constraints[T] {
	return &Constraints[T]{}
}

// WithMin sets the inclusive lower bound.
func (c *Constraints[T]) WithMin(v T) *Constraints[T] {
	c.Min = &v
	return c
}

// WithMax sets the exclusive upper bound.
func (c *Constraints[T]) WithMax(v T) *Constraints[T] {
	c.Max = &v
	return c
}

// WithWeight sets the sampling bias.
func (c *Constraints[T]) WithWeight(w Weighted) *Constraints[T] {
	c.Weighted = w
	return c
}

// WithMaxSize sets the byte budget.
func (c *Constraints[T]) WithMaxSize(n int) *Constraints[T] {
	c.MaxSize = &n
	return c
}

// WithBaseSizeAccountedFor marks the base footprint as already reserved.
func (c *Constraints[T]) WithBaseSizeAccountedFor(accounted bool) *Constraints[T] {
	c.BaseSizeAccountedFor = accounted
	return c
}

// Clone returns a deep copy. A nil receiver clones to nil.
func (c *Constraints[T]) Clone() *Constraints[T] {
	if c == nil {
		return nil
	}

	out := &Constraints[T]{
		Weighted:             c.Weighted,
		BaseSizeAccountedFor: c.BaseSizeAccountedFor,
	}

	if c.Min != nil {
		out.WithMin(*c.Min)
	}

	if c.Max != nil {
		out.WithMax(*c.Max)
	}

	if c.MaxSize != nil {
		out.WithMaxSize(*c.MaxSize)
	}

	return out
}

// Validate reports ErrInvalidRange when both bounds are set and min >= max.
func (c *Constraints[T]) Validate() error {
	if c == nil || c.Min == nil || c.Max == nil {
		return nil
	}

	if !(*c.Min < *c.Max) {
		return fmt.Errorf("%w: min (%v) >= max (%v)", ErrInvalidRange, *c.Min, *c.Max)
	}

	return nil
}

// Budget returns the byte budget and whether one is set.
func (c *Constraints[T]) Budget() (int, bool) {
	if c == nil || c.MaxSize == nil {
		return 0, false
	}

	return *c.MaxSize, true
}

// HasBounds reports whether either bound is set.
func (c *Constraints[T]) HasBounds() bool {
	return c != nil && (c.Min != nil || c.Max != nil)
}

func (c *Constraints[T]) String() string {
	if c == nil {
		return "<none>"
	}

	str := func(p *T) string {
		if p == nil {
			return "-"
		}

		return fmt.Sprint(*p)
	}

	size := "-"
	if c.MaxSize != nil {
		size = fmt.Sprint(*c.MaxSize)
	}

	return fmt.Sprintf("[%s, %s) weight=%s max_size=%s base_accounted=%t",
		str(c.Min), str(c.Max), c.Weighted, size, c.BaseSizeAccountedFor)
}
