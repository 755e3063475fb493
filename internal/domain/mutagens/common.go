// Package mutagens provides the scalar mutation strategies and boundary value
// tables. Values are handled as raw bit patterns of a given width so the same
// code serves every integer, float and bitfield type.
package mutagens

import (
	"math/rand/v2"

	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// MaxWidth is the widest scalar the strategies handle.
const MaxWidth = 64

// Mask returns a mask covering the low width bits.
func Mask(width uint8) uint64 {
	if width >= MaxWidth {
		return ^uint64(0)
	}

	return (uint64(1) << width) - 1
}

// PickStrategy selects one of the Havoc strategies uniformly.
func PickStrategy(r *rand.Rand) m.MutationStrategy {
	return m.HavocStrategies[r.IntN(len(m.HavocStrategies))]
}

// Apply runs strategy against raw. Float values go through ArithmeticFloat
// for the arithmetic strategy so the result stays a nearby number.
func Apply(r *rand.Rand, strategy m.MutationStrategy, raw uint64, width uint8, float bool) uint64 {
	switch strategy {
	case m.StrategyBitFlip:
		return BitFlip(r, raw, width)
	case m.StrategyFlip:
		return Flip(r, raw, width)
	default:
		if float {
			return ArithmeticFloatBits(r, raw, width)
		}

		return Arithmetic(r, raw, width)
	}
}
