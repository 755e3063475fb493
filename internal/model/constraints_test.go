package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraints_Validate(t *testing.T) {
	tests := []struct {
		name    string
		c       *Constraints[int]
		wantErr bool
	}{
		{name: "nil", c: nil},
		{name: "empty", c: NewConstraints[int]()},
		{name: "min only", c: NewConstraints[int]().WithMin(5)},
		{name: "max only", c: NewConstraints[int]().WithMax(5)},
		{name: "valid range", c: NewConstraints[int]().WithMin(1).WithMax(2)},
		{name: "empty range", c: NewConstraints[int]().WithMin(2).WithMax(2), wantErr: true},
		{name: "inverted range", c: NewConstraints[int]().WithMin(3).WithMax(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestConstraints_Clone(t *testing.T) {
	var nilConstraints *Constraints[uint8]
	assert.Nil(t, nilConstraints.Clone())

	c := NewConstraints[uint8]().
		WithMin(1).
		WithMax(9).
		WithWeight(WeightMax).
		WithMaxSize(32).
		WithBaseSizeAccountedFor(true)

	out := c.Clone()
	require.Equal(t, c, out)

	*out.Min = 4
	*out.MaxSize = 1
	out.Weighted = WeightMin

	assert.Equal(t, uint8(1), *c.Min, "clone does not share bounds")
	assert.Equal(t, 32, *c.MaxSize, "clone does not share the budget")
	assert.Equal(t, WeightMax, c.Weighted)
}

func TestConstraints_Budget(t *testing.T) {
	var nilConstraints *Constraints[int]

	_, ok := nilConstraints.Budget()
	assert.False(t, ok)

	_, ok = NewConstraints[int]().Budget()
	assert.False(t, ok)

	n, ok := NewConstraints[int]().WithMaxSize(0).Budget()
	assert.True(t, ok)
	assert.Zero(t, n)
}

func TestConstraints_HasBounds(t *testing.T) {
	var nilConstraints *Constraints[int]

	assert.False(t, nilConstraints.HasBounds())
	assert.False(t, NewConstraints[int]().WithMaxSize(3).HasBounds())
	assert.True(t, NewConstraints[int]().WithMin(0).HasBounds())
	assert.True(t, NewConstraints[int]().WithMax(0).HasBounds())
}

func TestConstraints_String(t *testing.T) {
	var nilConstraints *Constraints[int]
	assert.Equal(t, "<none>", nilConstraints.String())

	c := NewConstraints[int]().WithMin(1).WithWeight(WeightMin).WithMaxSize(8)
	assert.Equal(t, "[1, -) weight=min max_size=8 base_accounted=false", c.String())
}

func TestWeighted_String(t *testing.T) {
	assert.Equal(t, "none", WeightNone.String())
	assert.Equal(t, "min", WeightMin.String())
	assert.Equal(t, "max", WeightMax.String())
}
