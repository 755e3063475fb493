package mutagens

import "math/rand/v2"

// BitFlip flips exactly one random bit in [0, width).
func BitFlip(r *rand.Rand, raw uint64, width uint8) uint64 {
	idx := r.UintN(uint(width))

	return (raw ^ (uint64(1) << idx)) & Mask(width)
}

// Flip flips k distinct random bits, k drawn from [1, width]. Indices come
// from a partial Fisher-Yates shuffle so no bit is flipped twice.
func Flip(r *rand.Rand, raw uint64, width uint8) uint64 {
	n := int(width)
	k := 1 + r.IntN(n)

	var indices [MaxWidth]uint8
	for i := range n {
		indices[i] = uint8(i)
	}

	for i := range k {
		j := i + r.IntN(n-i)
		indices[i], indices[j] = indices[j], indices[i]
		raw ^= uint64(1) << indices[i]
	}

	return raw & Mask(width)
}

// WalkingFlip XORs the contiguous run of bits [start, start+bits).
func WalkingFlip(raw uint64, width, start, bits uint8) uint64 {
	return (raw ^ (Mask(bits) << start)) & Mask(width)
}
