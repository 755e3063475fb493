package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// recoverError runs fn and returns the error it panicked with.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
	}()

	fn()

	return nil
}

func TestGenRange(t *testing.T) {
	e := NewEngine(1)

	t.Run("stays in range", func(t *testing.T) {
		for range 1000 {
			v := GenRange(e, 10, 20)
			require.GreaterOrEqual(t, v, 10)
			require.Less(t, v, 20)
		}
	})

	t.Run("signed range", func(t *testing.T) {
		for range 1000 {
			v := GenRange[int8](e, -100, -50)
			require.GreaterOrEqual(t, v, int8(-100))
			require.Less(t, v, int8(-50))
		}
	})

	t.Run("float range", func(t *testing.T) {
		for range 1000 {
			v := GenRange(e, 0.5, 1.5)
			require.GreaterOrEqual(t, v, 0.5)
			require.Less(t, v, 1.5)
		}
	})

	t.Run("empty range panics", func(t *testing.T) {
		err := recoverError(t, func() { GenRange(e, 5, 5) })
		assert.True(t, errors.Is(err, m.ErrInvalidRange))

		err = recoverError(t, func() { GenRange[uint8](e, 9, 3) })
		assert.ErrorIs(t, err, m.ErrInvalidRange)
	})
}

func TestGenWeightedRange(t *testing.T) {
	const samples = 20000

	thirds := func(w m.Weighted) [3]float64 {
		e := NewEngine(7)

		var counts [3]int
		for range samples {
			counts[GenWeightedRange(e, 0, 300, w)/100]++
		}

		var out [3]float64
		for i, c := range counts {
			out[i] = float64(c) / samples
		}

		return out
	}

	t.Run("toward min", func(t *testing.T) {
		got := thirds(m.WeightMin)
		assert.InDelta(t, 0.70, got[0], 0.05)
		assert.InDelta(t, 0.20, got[1], 0.05)
		assert.InDelta(t, 0.10, got[2], 0.05)
	})

	t.Run("toward max", func(t *testing.T) {
		got := thirds(m.WeightMax)
		assert.InDelta(t, 0.10, got[0], 0.05)
		assert.InDelta(t, 0.20, got[1], 0.05)
		assert.InDelta(t, 0.70, got[2], 0.05)
	})

	t.Run("narrow range is uniform and in bounds", func(t *testing.T) {
		e := NewEngine(3)
		seen := map[int]bool{}

		for range 1000 {
			v := GenWeightedRange(e, 0, 3, m.WeightMax)
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 3)

			seen[v] = true
		}

		assert.Len(t, seen, 3)
	})

	t.Run("full width range", func(t *testing.T) {
		e := NewEngine(5)
		for range 1000 {
			v := GenWeightedRange[uint64](e, 0, ^uint64(0), m.WeightMin)
			require.Less(t, v, ^uint64(0))
		}
	})

	t.Run("weighted float range", func(t *testing.T) {
		e := NewEngine(9)
		low := 0

		for range samples {
			v := GenWeightedRange(e, 0.0, 300.0, m.WeightMin)
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 300.0)

			if v < 100 {
				low++
			}
		}

		assert.InDelta(t, 0.70, float64(low)/samples, 0.05)
	})
}

func TestWeightedIndex(t *testing.T) {
	_, err := newWeightedIndex([]uint64{0, 0})
	require.ErrorIs(t, err, errZeroWeights)

	w, err := newWeightedIndex([]uint64{0, 1, 0})
	require.NoError(t, err)

	e := NewEngine(2)
	for range 100 {
		assert.Equal(t, 1, w.sample(e.rng))
	}
}
