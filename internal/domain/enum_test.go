package domain

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

func tag(v uint8) *Field {
	return NewField("tag", U8(), Initializer(func(*Engine) Value { return u8(v) }))
}

func TestEnum_Layout(t *testing.T) {
	t.Run("variable variants", func(t *testing.T) {
		typ := NewEnum("cmd",
			NewVariant("Set", []*Field{tag(1), NewField("value", U16())}),
			NewVariant("Clear", []*Field{tag(2)}),
		)

		assert.True(t, typ.IsVariableSize())
		assert.Equal(t, 1, typ.MaxDefaultObjectSize(), "smallest variant")
		assert.Equal(t, 1, typ.MinNonzeroElementsSize())

		v := typ.Zero().(*EnumValue)
		assert.Equal(t, "Clear", v.Variant())
		assert.Equal(t, 1, v.MinEnumVariantSize())
		assert.Equal(t, 1, v.SerializedSize())
	})

	t.Run("ignored variants do not count", func(t *testing.T) {
		typ := NewEnum("cmd",
			NewVariant("Set", []*Field{tag(1), NewField("value", U16())}),
			NewVariant("Clear", []*Field{tag(2)}, VariantIgnore()),
		)

		assert.False(t, typ.IsVariableSize())
		assert.Equal(t, 3, typ.MaxDefaultObjectSize())
		assert.Equal(t, "Set", typ.Zero().(*EnumValue).Variant())
	})

	t.Run("same size variants", func(t *testing.T) {
		typ := NewEnum("pair",
			NewVariant("A", []*Field{NewField("x", U32())}),
			NewVariant("B", []*Field{NewField("y", U16()), NewField("z", U16())}),
		)

		assert.False(t, typ.IsVariableSize())
		assert.Equal(t, 4, typ.MaxDefaultObjectSize())
	})

	t.Run("no discriminant is written", func(t *testing.T) {
		typ := NewEnum("cmd",
			NewVariant("Set", []*Field{tag(1), NewField("value", U16(), BigEndian())}),
			NewVariant("Clear", []*Field{tag(2)}),
		)

		e := NewEngine(1)
		for range 200 {
			v := typ.Generate(e, nil).(*EnumValue)
			out := Serialize(v, binary.LittleEndian)

			switch v.Variant() {
			case "Set":
				require.Len(t, out, 3)
				require.Equal(t, byte(1), out[0])
				require.Equal(t, binary.BigEndian.Uint16(out[1:]), FieldValue[*ScalarValue[uint16]](v.Body(), "value").V)
			case "Clear":
				require.Equal(t, []byte{2}, out)
			}
		}
	})

	t.Run("nothing selectable panics", func(t *testing.T) {
		err := recoverError(t, func() {
			NewEnum("empty", NewVariant("Gone", nil, VariantIgnore()))
		})
		assert.ErrorIs(t, err, m.ErrNoVariants)

		err = recoverError(t, func() {
			NewEnum("weightless", NewVariant("Zero", nil, VariantWeight(0)))
		})
		assert.ErrorIs(t, err, m.ErrNoVariants)
	})
}

func TestEnum_Selection(t *testing.T) {
	typ := NewEnum("weighted",
		NewVariant("Rare", []*Field{tag(1)}),
		NewVariant("Common", []*Field{tag(2)}, VariantWeight(3)),
		NewVariant("Never", []*Field{tag(3)}, VariantIgnore()),
		NewVariant("Shy", []*Field{tag(4)}, VariantIgnoreChance(1)),
	)

	const draws = 8000

	e := NewEngine(2)
	counts := map[string]int{}

	for range draws {
		counts[typ.Generate(e, nil).(*EnumValue).Variant()]++
	}

	assert.Zero(t, counts["Never"])
	assert.Less(t, float64(counts["Shy"])/draws, 0.05, "rejected until the attempts run out")
	assert.InDelta(t, 3.0, float64(counts["Common"])/float64(counts["Rare"]), 0.4)
}

func TestEnum_SelectionWithinBudget(t *testing.T) {
	typ := NewEnum("cmd",
		NewVariant("Wide", []*Field{tag(1), NewField("value", U64())}, VariantWeight(50)),
		NewVariant("Short", []*Field{tag(2)}),
	)

	t.Run("only fitting variants", func(t *testing.T) {
		e := NewEngine(21)

		for trial := range 500 {
			c := m.NewConstraints[int]().WithMaxSize(1 + trial%8)

			v := typ.Generate(e, c).(*EnumValue)
			require.Equal(t, "Short", v.Variant(), "trial %d", trial)
		}
	})

	t.Run("room for both keeps the weights", func(t *testing.T) {
		e := NewEngine(22)
		c := m.NewConstraints[int]().WithMaxSize(9)

		wide := 0
		for range 1000 {
			if typ.Generate(e, c).(*EnumValue).Variant() == "Wide" {
				wide++
			}
		}

		assert.Greater(t, wide, 900)
	})

	t.Run("reservation made by the caller", func(t *testing.T) {
		// one byte is already reserved, so one more fits the short variant only
		e := NewEngine(23)
		c := m.NewConstraints[int]().WithMaxSize(1).WithBaseSizeAccountedFor(true)

		for range 200 {
			require.Equal(t, "Short", typ.Generate(e, c).(*EnumValue).Variant())
		}
	})

	t.Run("too small falls back to the smallest", func(t *testing.T) {
		e := NewEngine(24)
		c := m.NewConstraints[int]().WithMaxSize(0)

		assert.Equal(t, "Short", typ.Generate(e, c).(*EnumValue).Variant())
	})

	t.Run("havoc switch stays within budget", func(t *testing.T) {
		e := NewEngine(25)
		c := m.NewConstraints[int]().WithMaxSize(4)

		v := typ.Generate(e, c).(*EnumValue)
		e.SetCorpusState(m.CorpusState{Mode: m.Havoc()})

		for range 300 {
			e.BeginNewIteration()
			e.SetFlags(m.Flags{Chances: m.ChanceAlwaysSucceed})
			typ.Mutate(e, v, c)

			require.Equal(t, "Short", v.Variant())
		}
	})
}

func TestEnum_Mutate(t *testing.T) {
	typ := NewEnum("cmd",
		NewVariant("Set", []*Field{tag(1), NewField("value", U16())}),
		NewVariant("Clear", []*Field{tag(2)}),
	)

	t.Run("deterministic modes keep the variant", func(t *testing.T) {
		e := NewEngine(3)
		base := typ.Generate(e, nil).(*EnumValue)
		e.BeginNewCorpus()

		for range 100 {
			e.BeginNewIteration()

			v := base.Clone().(*EnumValue)
			typ.Mutate(e, v, nil)
			require.Equal(t, base.Variant(), v.Variant())
		}
	})

	t.Run("havoc may switch the variant", func(t *testing.T) {
		e := NewEngine(4)
		v := typ.Generate(e, nil).(*EnumValue)
		e.SetCorpusState(m.CorpusState{Mode: m.Havoc()})

		seen := map[string]bool{v.Variant(): true}

		for range 200 {
			e.BeginNewIteration()
			e.SetFlags(m.Flags{Chances: m.ChanceAlwaysSucceed})
			typ.Mutate(e, v, nil)

			seen[v.Variant()] = true
			require.Equal(t, v.Body().Type().Name(), v.Variant())
		}

		assert.Len(t, seen, 2)
	})
}

func TestUnitEnum(t *testing.T) {
	typ := NewUnitEnum("op",
		UnitVariant[uint16]{Name: "Get", Value: 1},
		UnitVariant[uint16]{Name: "Put", Value: 0x0203, Weight: 2},
		UnitVariant[uint16]{Name: "Hidden", Value: 9, Ignore: true},
	)

	assert.Equal(t, 2, typ.MaxDefaultObjectSize())
	assert.Len(t, typ.Variants(), 3)

	zero := typ.Zero().(*UnitEnumValue[uint16])
	assert.Equal(t, "Get", zero.String())
	assert.Equal(t, []byte{0x01, 0x00}, Serialize(zero, binary.LittleEndian))

	e := NewEngine(5)
	for range 500 {
		v := typ.Generate(e, nil).(*UnitEnumValue[uint16])
		require.NotEqual(t, "Hidden", v.String())
		require.Contains(t, []uint16{1, 0x0203}, v.Primitive())
	}

	t.Run("targeted mutation redraws", func(t *testing.T) {
		e := NewEngine(6)

		changed := false
		for range 50 {
			e.SetCorpusState(m.CorpusState{Mode: m.InitialMode()})

			v := typ.Zero().(*UnitEnumValue[uint16])
			typ.Mutate(e, v, nil)

			if v.String() != "Get" {
				changed = true
			}
		}

		assert.True(t, changed)
	})
}

func TestUnsafeEnum(t *testing.T) {
	op := NewUnitEnum("op",
		UnitVariant[uint8]{Name: "A", Value: 1},
		UnitVariant[uint8]{Name: "B", Value: 2},
	)

	t.Run("always invalid", func(t *testing.T) {
		typ := UnsafeEnum(op).WithInvalidChance(1.0)

		e := NewEngine(7)
		for range 500 {
			v := typ.Generate(e, nil).(*UnsafeEnumValue[uint8])
			require.False(t, v.Valid())
			require.Nil(t, v.Variant())
		}
	})

	t.Run("valid unless the chance fires", func(t *testing.T) {
		typ := UnsafeEnum(op)

		e := NewEngine(8)
		e.SetFlags(m.Flags{Chances: m.ChanceAlwaysFail})

		for range 500 {
			v := typ.Generate(e, nil).(*UnsafeEnumValue[uint8])
			require.True(t, v.Valid())
			require.Contains(t, []uint8{1, 2}, v.Primitive())
		}
	})

	t.Run("mutation demotes to the raw discriminant", func(t *testing.T) {
		typ := UnsafeEnum(op)
		v := typ.Zero().(*UnsafeEnumValue[uint8])
		require.True(t, v.Valid())

		e := NewEngine(9)
		e.BeginNewIteration()
		typ.Mutate(e, v, nil)

		assert.False(t, v.Valid())
		assert.Zero(t, v.Primitive(), "bit 0 of A flipped")
	})

	t.Run("layout", func(t *testing.T) {
		typ := UnsafeEnum(op)

		assert.Equal(t, "unsafe<op>", typ.Name())
		assert.Equal(t, 1, typ.MaxDefaultObjectSize())

		v := typ.Zero()
		assert.Equal(t, []byte{1}, Serialize(v, binary.LittleEndian))
		assert.Equal(t, 1, v.Clone().SerializedSize())
	})
}
