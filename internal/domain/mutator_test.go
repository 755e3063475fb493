package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// u8Sweep is the order of deterministic modes a single u8 goes through.
func u8Sweep() []m.MutationMode {
	var modes []m.MutationMode

	for bits := uint8(1); bits <= 8; bits++ {
		for idx := uint8(0); idx+bits <= 8; idx++ {
			modes = append(modes, m.WalkingBitFlip(bits, idx))
		}
	}

	for idx := range uint8(4) {
		modes = append(modes, m.InterestingValues(idx))
	}

	return modes
}

func TestEngine_GenChance(t *testing.T) {
	e := NewEngine(1)

	assert.False(t, e.GenChance(0))
	assert.False(t, e.GenChance(-1))
	assert.True(t, e.GenChance(1))

	e.SetFlags(m.Flags{Chances: m.ChanceAlwaysSucceed})
	assert.True(t, e.GenChance(0.0001))
	assert.False(t, e.GenChance(0), "zero stays impossible")

	e.SetFlags(m.Flags{Chances: m.ChanceAlwaysFail})
	assert.False(t, e.GenChance(0.9999))
	assert.True(t, e.GenChance(1), "one stays certain")

	e.SetFlags(m.Flags{})

	hits := 0
	for range 10000 {
		if e.GenChance(0.25) {
			hits++
		}
	}

	assert.InDelta(t, 0.25, float64(hits)/10000, 0.03)
}

func TestEngine_ShouldFixup(t *testing.T) {
	e := NewEngine(1)

	e.SetFlags(m.Flags{Fixup: m.FixupAlways, Chances: m.ChanceAlwaysSucceed})
	assert.True(t, e.ShouldFixup())

	e.SetFlags(m.Flags{Fixup: m.FixupNever})
	assert.False(t, e.ShouldFixup())

	e.SetFlags(m.Flags{Chances: m.ChanceAlwaysSucceed})
	assert.False(t, e.ShouldFixup(), "the ignore chance always fires")

	e.SetFlags(m.Flags{})

	skipped := 0
	for range 10000 {
		if !e.ShouldFixup() {
			skipped++
		}
	}

	assert.InDelta(t, ChanceToIgnorePostMutation, float64(skipped)/10000, 0.02)
}

func TestEngine_Reseed(t *testing.T) {
	a, b := NewEngine(1), NewEngine(2)
	a.Reseed(99)
	b.Reseed(99)

	for range 100 {
		require.Equal(t, a.Rand().Uint64(), b.Rand().Uint64())
	}

	flags := m.Flags{FieldCount: 3}
	a.SetFlags(flags)
	a.Reseed(5)
	assert.Equal(t, flags, a.Flags(), "reseeding keeps flags")
}

func TestEngine_HavocFlags(t *testing.T) {
	e := NewEngine(11)
	e.SetCorpusState(m.CorpusState{Mode: m.Havoc()})

	var limited, fixups, chances int

	for range 5000 {
		e.BeginNewIteration()
		require.True(t, e.Mode().IsHavoc(), "havoc is absorbing")

		flags := e.Flags()
		require.LessOrEqual(t, flags.Active(), m.MaxActiveFlags)

		if flags.FieldCount > 0 {
			limited++
			require.Less(t, flags.FieldCount, maxLimitedFields)
		}

		if flags.Fixup != m.FixupDefault {
			fixups++
		}

		if flags.Chances != m.ChanceDefault {
			chances++
		}
	}

	assert.NotZero(t, limited)
	assert.NotZero(t, fixups)
	assert.NotZero(t, chances)
}

func TestEngine_DeterministicModesClearFlags(t *testing.T) {
	e := NewEngine(1)
	e.SetFlags(m.Flags{Fixup: m.FixupNever})

	e.BeginNewIteration()

	assert.Equal(t, m.InitialMode(), e.Mode())
	assert.Equal(t, m.Flags{}, e.Flags())
}

func TestEngine_ShouldEarlyBailMutation(t *testing.T) {
	e := NewEngine(1)
	assert.False(t, e.ShouldEarlyBailMutation())

	e.SetCorpusState(m.CorpusState{Mode: m.Havoc(), FieldsFuzzed: 2})
	e.SetFlags(m.Flags{FieldCount: 2})
	assert.True(t, e.ShouldEarlyBailMutation())

	e.SetFlags(m.Flags{FieldCount: 3})
	assert.False(t, e.ShouldEarlyBailMutation())
}

func TestModeProgression(t *testing.T) {
	t.Run("single u8", func(t *testing.T) {
		typ := U8()
		e := NewEngine(3)
		e.BeginNewCorpus()

		var (
			modes   []m.MutationMode
			results []uint8
		)

		for range 40 {
			e.BeginNewIteration()
			modes = append(modes, e.Mode())

			v := &ScalarValue[uint8]{}
			typ.Mutate(e, v, nil)
			results = append(results, v.V)
		}

		assert.Equal(t, u8Sweep(), modes)

		assert.Equal(t, uint8(0b0000_0001), results[0], "WalkingBitFlip{1, 0}")
		assert.Equal(t, uint8(0b1000_0000), results[7], "WalkingBitFlip{1, 7}")
		assert.Equal(t, uint8(0b0000_0011), results[8], "WalkingBitFlip{2, 0}")
		assert.Equal(t, uint8(0xff), results[35], "WalkingBitFlip{8, 0}")
		assert.Equal(t, []uint8{0x00, 0xff, 0x7f, 0x80}, results[36:])

		e.BeginNewIteration()
		assert.True(t, e.Mode().IsHavoc())
	})

	t.Run("two field struct", func(t *testing.T) {
		typ := NewStruct("pair", []*Field{
			NewField("a", U8()),
			NewField("b", U8()),
		})

		e := NewEngine(4)
		base := typ.Generate(e, nil)
		e.BeginNewCorpus()

		sweep := u8Sweep()

		for pass := range 80 {
			e.BeginNewIteration()

			require.Equal(t, sweep[pass%40], e.Mode(), "pass %d", pass)
			require.Equal(t, pass/40, e.CorpusState().TargetedFieldIdx, "pass %d", pass)

			v := base.Clone().(*StructValue)
			typ.Mutate(e, v, nil)

			// only the targeted field changes
			other := 1 - pass/40
			require.Equal(t, base.(*StructValue).FieldAt(other), v.FieldAt(other))
		}

		e.BeginNewIteration()
		assert.True(t, e.Mode().IsHavoc())
		assert.Equal(t, 2, e.CorpusState().TargetTotalFields)
		assert.Equal(t, 80, e.CorpusState().TargetTotalPasses)
	})

	t.Run("bool", func(t *testing.T) {
		typ := Bool()
		e := NewEngine(5)

		var modes []m.MutationMode

		for range 3 {
			e.BeginNewIteration()
			modes = append(modes, e.Mode())
			typ.Mutate(e, &BoolValue{}, nil)
		}

		assert.Equal(t, []m.MutationMode{
			m.WalkingBitFlip(1, 0),
			m.InterestingValues(0),
			m.InterestingValues(1),
		}, modes)

		e.BeginNewIteration()
		assert.True(t, e.Mode().IsHavoc())
	})

	t.Run("generation does not advance the mode", func(t *testing.T) {
		typ := NewStruct("pair", []*Field{
			NewField("a", U8()),
			NewField("b", U16()),
		})

		e := NewEngine(6)
		for range 10 {
			e.BeginNewIteration()
			typ.Generate(e, nil)
		}

		assert.Equal(t, m.InitialMode(), e.Mode())
		assert.Zero(t, e.CorpusState().TargetTotalPasses)
	})

	t.Run("vanished target switches to havoc", func(t *testing.T) {
		e := NewEngine(7)
		e.SetCorpusState(m.CorpusState{
			Mode:             m.WalkingBitFlip(1, 0),
			TargetedFieldIdx: 5,
		})

		e.BeginNewIteration()
		MutateScalar(e, new(uint8))

		e.BeginNewIteration()
		assert.True(t, e.Mode().IsHavoc())
	})

	t.Run("mutation pass without scalars switches to havoc", func(t *testing.T) {
		typ := NewStruct("frame", []*Field{
			NewField("data", VecOf(U8(), WithLen(0, 10))),
		})

		e := NewEngine(9)
		base := typ.Zero()
		e.BeginNewCorpus()

		e.BeginNewIteration()
		typ.Mutate(e, base.Clone(), nil)
		assert.Zero(t, e.CorpusState().FieldsFuzzed)

		e.BeginNewIteration()
		assert.True(t, e.Mode().IsHavoc())
	})

	t.Run("new corpus restarts the sweep", func(t *testing.T) {
		e := NewEngine(8)
		e.SetCorpusState(m.CorpusState{Mode: m.Havoc(), TargetedFieldIdx: 3})
		e.SetFlags(m.Flags{FieldCount: 2})

		e.BeginNewCorpus()

		assert.Equal(t, m.NewCorpusState(), e.CorpusState())
		assert.Equal(t, m.Flags{}, e.Flags())
	})
}

func TestNextValue_EmptyBaseReachesHavoc(t *testing.T) {
	typ := NewStruct("frame", []*Field{
		NewField("data", VecOf(U8(), WithLen(0, 10))),
	})

	e := NewEngine(10)
	e.BeginNewCorpus()

	w := &worker{base: typ.Zero()}
	payloads := map[string]bool{}

	for it := range uint64(5000) {
		e.Reseed(it)
		e.BeginNewIteration()

		payloads[string(Serialize(nextValue(e, typ, w, nil), nil))] = true
	}

	assert.True(t, e.Mode().IsHavoc())
	assert.Greater(t, len(payloads), 1)
}
