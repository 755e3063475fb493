package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMutationMode_String(t *testing.T) {
	tests := []struct {
		mode MutationMode
		want string
	}{
		{mode: InitialMode(), want: "WalkingBitFlip{bits: 1, current_idx: 0}"},
		{mode: WalkingBitFlip(3, 5), want: "WalkingBitFlip{bits: 3, current_idx: 5}"},
		{mode: InterestingValues(2), want: "InterestingValues{current_idx: 2}"},
		{mode: Havoc(), want: "Havoc"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestMutationMode_IsHavoc(t *testing.T) {
	assert.True(t, Havoc().IsHavoc())
	assert.False(t, InitialMode().IsHavoc())
	assert.False(t, InterestingValues(0).IsHavoc())
}

func TestCorpusState(t *testing.T) {
	s := NewCorpusState()
	assert.Equal(t, InitialMode(), s.Mode)

	s.FieldsFuzzed = 4
	s.FinishedIteration = true
	s.TargetedFieldIdx = 2
	s.ResetIteration()

	assert.Zero(t, s.FieldsFuzzed)
	assert.False(t, s.FinishedIteration)
	assert.Equal(t, 2, s.TargetedFieldIdx, "the target survives a new pass")

	s.Mode = Havoc()
	s.Reset()
	assert.Equal(t, NewCorpusState(), s)
}

func TestFlags_Active(t *testing.T) {
	assert.Zero(t, Flags{}.Active())
	assert.Equal(t, 1, Flags{FieldCount: 3}.Active())
	assert.Equal(t, 2, Flags{Fixup: FixupNever, Chances: ChanceAlwaysFail}.Active())
	assert.Equal(t, 3, Flags{FieldCount: 1, Fixup: FixupAlways, Chances: ChanceAlwaysSucceed}.Active())
}

func TestIterationRange(t *testing.T) {
	r := IterationRange{Start: 10, End: 15}

	assert.Equal(t, uint64(5), r.Len())
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(14))
	assert.False(t, r.Contains(15))
	assert.False(t, r.Contains(9))
	assert.Equal(t, "[10,15)", r.String())

	assert.Zero(t, IterationRange{Start: 5, End: 5}.Len())
	assert.Zero(t, IterationRange{Start: 6, End: 5}.Len())
}

func TestCampaignStats_ExecsPerSecond(t *testing.T) {
	assert.Zero(t, CampaignStats{Iterations: 10}.ExecsPerSecond())
	assert.InDelta(t, 50.0, CampaignStats{Iterations: 100, Elapsed: 2 * time.Second}.ExecsPerSecond(), 1e-9)
}

func TestIterationStatus_String(t *testing.T) {
	assert.Equal(t, "passed", Passed.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", IterationStatus(7).String())
}
