package mutagens

import (
	"math"
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestMask(t *testing.T) {
	tests := []struct {
		width uint8
		want  uint64
	}{
		{0, 0},
		{1, 0x1},
		{3, 0x7},
		{8, 0xff},
		{32, 0xffff_ffff},
		{64, math.MaxUint64},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Mask(tt.width), "width %d", tt.width)
	}
}

func TestBitFlip(t *testing.T) {
	r := newRand(1)

	for range 1000 {
		got := BitFlip(r, 0xa5, 8)
		assert.Equal(t, 1, bits.OnesCount64(got^0xa5))
		assert.LessOrEqual(t, got, uint64(0xff))
	}
}

func TestFlip(t *testing.T) {
	r := newRand(2)

	for range 1000 {
		got := Flip(r, 0, 16)
		n := bits.OnesCount64(got)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 16)
		assert.LessOrEqual(t, got, uint64(0xffff))
	}
}

func TestWalkingFlip(t *testing.T) {
	assert.Equal(t, uint64(0x01), WalkingFlip(0, 8, 0, 1))
	assert.Equal(t, uint64(0x06), WalkingFlip(0, 8, 1, 2))
	assert.Equal(t, uint64(0x00), WalkingFlip(0xff, 8, 0, 8))
	assert.Equal(t, uint64(math.MaxUint64), WalkingFlip(0, 64, 0, 64))
}

func TestArithmetic(t *testing.T) {
	r := newRand(3)

	for range 1000 {
		got := Arithmetic(r, 0x80, 8)
		diff := int(got) - 0x80
		assert.True(t, (diff >= 1 && diff < 16) || (diff <= -1 && diff > -16), "diff %d", diff)
	}

	t.Run("wraps at width", func(t *testing.T) {
		seen := map[uint64]bool{}
		for range 500 {
			seen[Arithmetic(r, 0, 8)] = true
		}

		for v := range seen {
			assert.True(t, v < 16 || v > 0xff-16, "value %#x", v)
		}
	})
}

func TestArithmeticFloatBits(t *testing.T) {
	r := newRand(4)

	for range 200 {
		got := math.Float64frombits(ArithmeticFloatBits(r, math.Float64bits(100), 64))
		assert.InDelta(t, 100, got, 15)
		assert.NotEqual(t, 100.0, got)
	}

	got32 := math.Float32frombits(uint32(ArithmeticFloatBits(r, uint64(math.Float32bits(10)), 32)))
	assert.InDelta(t, 10, got32, 15)
}

func TestDangerous(t *testing.T) {
	t.Run("u8 table", func(t *testing.T) {
		assert.Equal(t, []uint64{0, 255, 127, 128}, Dangerous(8, false))
	})

	t.Run("wide tables include byte-swapped variants", func(t *testing.T) {
		assert.Equal(t, []uint64{0, 0xffff, 0x7fff, 0x8000, 0xff7f, 0x0080}, Dangerous(16, false))
		assert.Len(t, Dangerous(32, false), 6)
		assert.Equal(t, uint64(0xffff_ffff_ffff_ff7f), Dangerous(64, false)[4])
	})

	t.Run("float specials", func(t *testing.T) {
		table := Dangerous(64, true)
		require.Len(t, table, 6)
		assert.True(t, math.IsInf(math.Float64frombits(table[0]), 1))
		assert.Equal(t, math.MaxFloat64, math.Float64frombits(table[1]))
		assert.Equal(t, -math.MaxFloat64, math.Float64frombits(table[2]))
		assert.True(t, math.IsNaN(math.Float64frombits(table[4])))
		assert.True(t, math.IsInf(math.Float64frombits(table[5]), -1))

		f32 := Dangerous(32, true)
		assert.Equal(t, float32(math.MaxFloat32), math.Float32frombits(uint32(f32[1])))
	})

	t.Run("narrow widths stay in range", func(t *testing.T) {
		assert.Equal(t, []uint64{0, 1}, Dangerous(1, false))

		for w := uint8(2); w < 8; w++ {
			for _, v := range Dangerous(w, false) {
				assert.LessOrEqual(t, v, Mask(w))
			}
		}
	})
}

func TestPickStrategy(t *testing.T) {
	r := newRand(5)
	counts := map[m.MutationStrategy]int{}

	for range 3000 {
		counts[PickStrategy(r)]++
	}

	require.Len(t, counts, 3)

	for _, s := range m.HavocStrategies {
		assert.InDelta(t, 1000, counts[s], 150, "strategy %s", s)
	}
}
