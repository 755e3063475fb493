package domain

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// minWeightedRange is the smallest (max-min)+1 that is split into thirds.
const minWeightedRange = 6

var errZeroWeights = errors.New("weights sum to zero")

// weightedIndex draws indices proportionally to fixed weights.
type weightedIndex struct {
	cumulative []uint64
}

func newWeightedIndex(weights []uint64) (weightedIndex, error) {
	cumulative := make([]uint64, len(weights))

	var total uint64
	for i, w := range weights {
		total += w
		cumulative[i] = total
	}

	if total == 0 {
		return weightedIndex{}, errZeroWeights
	}

	return weightedIndex{cumulative: cumulative}, nil
}

func mustWeightedIndex(weights []uint64) weightedIndex {
	w, err := newWeightedIndex(weights)
	if err != nil {
		panic(err)
	}

	return w
}

func (w weightedIndex) sample(r *rand.Rand) int {
	x := r.Uint64N(w.cumulative[len(w.cumulative)-1])

	return sort.Search(len(w.cumulative), func(i int) bool {
		return w.cumulative[i] > x
	})
}

var (
	towardMinSlices = mustWeightedIndex([]uint64{7, 2, 1})
	towardMaxSlices = mustWeightedIndex([]uint64{1, 2, 7})
)

func (e *Engine) pickThird(w m.Weighted) int {
	if w == m.WeightMin {
		return towardMinSlices.sample(e.rng)
	}

	return towardMaxSlices.sample(e.rng)
}

func mustValidate[T m.Number](c *m.Constraints[T]) {
	if err := c.Validate(); err != nil {
		panic(err)
	}
}

// GenRange returns a uniform value in [min, max). It panics if min >= max.
func GenRange[T m.Number](e *Engine, min, max T) T {
	if !(min < max) {
		panic(fmt.Errorf("%w: cannot generate number where min (%v) >= max (%v)", m.ErrInvalidRange, min, max))
	}

	if infoOf[T]().float {
		return genFloatRange(e, min, max)
	}

	span := uint64(max) - uint64(min)

	return T(uint64(min) + e.rng.Uint64N(span))
}

func genFloatRange[T m.Number](e *Engine, min, max T) T {
	lo, hi := float64(min), float64(max)
	// halves keep hi-lo finite across the whole float range
	v := 2 * (lo/2 + e.rng.Float64()*(hi/2-lo/2))

	out := T(v)
	if out < min || out >= max {
		return min
	}

	return out
}

// GenWeightedRange returns a value in [min, max) biased toward one end: 70%
// of draws land in the favored third, 20% in the middle and 10% in the far
// third. Narrow ranges and WeightNone sample uniformly.
func GenWeightedRange[T m.Number](e *Engine, min, max T, w m.Weighted) T {
	if w == m.WeightNone {
		return GenRange(e, min, max)
	}

	if !(min < max) {
		panic(fmt.Errorf("%w: cannot generate number where min (%v) >= max (%v)", m.ErrInvalidRange, min, max))
	}

	if infoOf[T]().float {
		return genWeightedFloat(e, min, max, w)
	}

	span := uint64(max) - uint64(min)
	if span < minWeightedRange-1 {
		return GenRange(e, min, max)
	}

	third := span / 3
	if span < math.MaxUint64 {
		third = (span + 1) / 3
	}

	slice := uint64(e.pickThird(w))
	lo := uint64(min) + slice*third

	hi := lo + third
	if slice == 2 {
		// the last slice absorbs the division remainder
		hi = uint64(max)
	}

	return T(lo + e.rng.Uint64N(hi-lo))
}

func genWeightedFloat[T m.Number](e *Engine, min, max T, w m.Weighted) T {
	lo, hi := float64(min), float64(max)

	rangeWidth := (hi - lo) + 1
	if math.IsInf(rangeWidth, 0) || rangeWidth < minWeightedRange {
		return GenRange(e, min, max)
	}

	third := rangeWidth / 3
	slice := float64(e.pickThird(w))
	sliceLo := lo + slice*third

	sliceHi := sliceLo + third
	if slice == 2 || sliceHi > hi {
		sliceHi = hi
	}

	a, b := T(sliceLo), T(sliceHi)
	if !(a < b) {
		return a
	}

	return GenRange(e, a, b)
}
