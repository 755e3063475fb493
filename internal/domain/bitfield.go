package domain

import (
	"fmt"

	"wirefuzz.dev/pkg/wirefuzz/internal/domain/mutagens"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// bitSlot places one field inside a bitfield run.
type bitSlot struct {
	// backing is the run's accumulator width in bits; zero for plain fields.
	backing uint8
	shift   uint8
	// head opens the accumulator and decides the run's byte order. tail
	// flushes it.
	head bool
	tail bool
}

func (s bitSlot) packed() bool {
	return s.backing > 0
}

func (s bitSlot) bytes() int {
	return int(s.backing) / 8
}

func maskBits(bits uint8) uint64 {
	return mutagens.Mask(bits)
}

// planBitfields lays out consecutive Bits fields into accumulators. A run
// ends when it is exactly full, when the backing width changes or when a
// plain field follows. Overflowing a run panics.
func planBitfields(owner string, fields []*Field) []bitSlot {
	slots := make([]bitSlot, len(fields))

	open := -1

	var used uint8

	closeRun := func() {
		if open >= 0 {
			slots[open].tail = true
		}

		open = -1
		used = 0
	}

	for i, f := range fields {
		if !f.isBitfield() {
			closeRun()
			continue
		}

		st, ok := f.typ.(scalarType)
		if !ok || st.scalar().float {
			panic(fmt.Errorf("%w: %s.%s: bitfield backing type %s is not an integer",
				m.ErrUnsupportedSchema, owner, f.name, f.typ.Name()))
		}

		width := st.scalar().width
		if f.bits > mutagens.MaxWidth || f.bits > width {
			panic(fmt.Errorf("%w: %s.%s: %d bits do not fit in %s",
				m.ErrBitfieldTooWide, owner, f.name, f.bits, f.typ.Name()))
		}

		if open >= 0 && slots[open].backing != width {
			closeRun()
		}

		if used+f.bits > width {
			panic(fmt.Errorf("%w: %s.%s: run of %d bits overflows %s",
				m.ErrBitfieldTooWide, owner, f.name, used+f.bits, f.typ.Name()))
		}

		slot := bitSlot{backing: width, shift: used}
		if open < 0 {
			slot.head = true
		}

		slots[i] = slot
		open = i
		used += f.bits

		if used == width {
			closeRun()
		}
	}

	closeRun()

	return slots
}

// mutateBits mutates a bitfield member as a scalar of the declared width.
func (e *Engine) mutateBits(raw uint64, bits uint8) uint64 {
	mask := maskBits(bits)

	return e.mutateRaw(raw&mask, bits, false, mutagens.Dangerous(bits, false)) & mask
}
