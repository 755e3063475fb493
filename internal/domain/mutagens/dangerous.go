package mutagens

import "math"

var dangerousU8 = []uint64{
	0x00,
	0xff,
	0x7f,
	0x80,
}

var dangerousU16 = []uint64{
	0x0000,
	0xffff,
	0x7fff,
	0x8000,
	// byte-swapped
	0xff7f,
	0x0080,
}

var dangerousU32 = []uint64{
	0x0000_0000,
	0xffff_ffff,
	0x7fff_ffff,
	0x8000_0000,
	// byte-swapped
	0xffff_ff7f,
	0x0000_0080,
}

var dangerousU64 = []uint64{
	0x0000_0000_0000_0000,
	0xffff_ffff_ffff_ffff,
	0x7fff_ffff_ffff_ffff,
	0x8000_0000_0000_0000,
	// byte-swapped
	0xffff_ffff_ffff_ff7f,
	0x0000_0000_0000_0080,
}

var dangerousF32 = []uint64{
	uint64(math.Float32bits(float32(math.Inf(1)))),
	uint64(math.Float32bits(math.MaxFloat32)),
	uint64(math.Float32bits(-math.MaxFloat32)),
	uint64(math.Float32bits(0x1p-126)),
	uint64(math.Float32bits(float32(math.NaN()))),
	uint64(math.Float32bits(float32(math.Inf(-1)))),
}

var dangerousF64 = []uint64{
	math.Float64bits(math.Inf(1)),
	math.Float64bits(math.MaxFloat64),
	math.Float64bits(-math.MaxFloat64),
	math.Float64bits(0x1p-1022),
	math.Float64bits(math.NaN()),
	math.Float64bits(math.Inf(-1)),
}

// Dangerous returns the boundary value table for a scalar of the given width.
// Signed integers share the table of their unsigned counterpart. Widths below
// 8 (bitfields, bools) get a table derived from the same pattern. The
// returned slice must not be modified.
func Dangerous(width uint8, float bool) []uint64 {
	if float {
		if width == 32 {
			return dangerousF32
		}

		return dangerousF64
	}

	switch {
	case width == 8:
		return dangerousU8
	case width == 16:
		return dangerousU16
	case width == 32:
		return dangerousU32
	case width == 64:
		return dangerousU64
	default:
		return narrowTable(width)
	}
}

func narrowTable(width uint8) []uint64 {
	if width <= 1 {
		return []uint64{0, 1}
	}

	candidates := []uint64{0, Mask(width), Mask(width - 1), uint64(1) << (width - 1)}
	table := make([]uint64, 0, len(candidates))

	for _, v := range candidates {
		seen := false

		for _, t := range table {
			if t == v {
				seen = true
				break
			}
		}

		if !seen {
			table = append(table, v)
		}
	}

	return table
}
