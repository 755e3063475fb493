package domain

import (
	"math"
	"reflect"

	"wirefuzz.dev/pkg/wirefuzz/internal/domain/mutagens"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// scalarInfo describes the bit layout of a Number type.
type scalarInfo struct {
	width  uint8
	signed bool
	float  bool
}

func (s scalarInfo) bytes() int {
	return int(s.width+7) / 8
}

func infoOf[T m.Number]() scalarInfo {
	t := reflect.TypeFor[T]()
	info := scalarInfo{width: uint8(t.Bits())}

	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		info.float = true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		info.signed = true
	}

	return info
}

// toBits returns the raw bit pattern of v, masked to its width.
func toBits[T m.Number](v T) uint64 {
	info := infoOf[T]()

	if info.float {
		if info.width == 32 {
			return uint64(math.Float32bits(float32(v)))
		}

		return math.Float64bits(float64(v))
	}

	return uint64(v) & mutagens.Mask(info.width)
}

// fromBits rebuilds a value from its raw bit pattern, sign-extending
// signed integers.
func fromBits[T m.Number](raw uint64) T {
	info := infoOf[T]()

	switch {
	case info.float && info.width == 32:
		return T(math.Float32frombits(uint32(raw)))
	case info.float:
		return T(math.Float64frombits(raw))
	case info.signed:
		shift := 64 - info.width
		return T(int64(raw<<shift) >> shift)
	default:
		return T(raw)
	}
}

// typeBounds returns the lowest and highest finite values of T.
func typeBounds[T m.Number]() (T, T) {
	info := infoOf[T]()

	switch {
	case info.float && info.width == 32:
		hi := float32(math.MaxFloat32)
		return T(-hi), T(hi)
	case info.float:
		hi := math.MaxFloat64
		return T(-hi), T(hi)
	case info.signed:
		hi := int64(mutagens.Mask(info.width - 1))
		return T(-hi - 1), T(hi)
	default:
		hi := mutagens.Mask(info.width)
		return 0, T(hi)
	}
}
