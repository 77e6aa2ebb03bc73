package overflow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_Basic(t *testing.T) {
	got, ok := Add(3, 4)
	require.True(t, ok)
	assert.Equal(t, 7, got)

	got, ok = Add(-3, 4)
	require.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestAdd_Overflow(t *testing.T) {
	_, ok := Add(math.MaxInt, 1)
	assert.False(t, ok)

	_, ok = Add(math.MinInt, -1)
	assert.False(t, ok)

	// Boundary: MaxInt + 0 is fine
	got, ok := Add(math.MaxInt, 0)
	require.True(t, ok)
	assert.Equal(t, math.MaxInt, got)
}

func TestAdd64_Basic(t *testing.T) {
	got, ok := Add64(40, 2)
	require.True(t, ok)
	assert.Equal(t, int64(42), got)
}

func TestAdd64_Overflow(t *testing.T) {
	_, ok := Add64(80, math.MaxInt64)
	assert.False(t, ok)

	_, ok = Add64(math.MinInt64, -1)
	assert.False(t, ok)

	got, ok := Add64(math.MaxInt64-1, 1)
	require.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), got)
}

func TestMul64_Basic(t *testing.T) {
	got, ok := Mul64(6, 7)
	require.True(t, ok)
	assert.Equal(t, int64(42), got)

	got, ok = Mul64(0, math.MaxInt64)
	require.True(t, ok)
	assert.Equal(t, int64(0), got)
}

func TestMul64_Overflow(t *testing.T) {
	_, ok := Mul64(math.MaxInt64, 2)
	assert.False(t, ok)

	_, ok = Mul64(math.MaxInt64/2+1, 2)
	assert.False(t, ok)

	got, ok := Mul64(math.MaxInt64/2, 2)
	require.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64-1), got)
}

// TestGrownCapacity_FiftyPercentRule verifies the size + size/2 + 1 growth
// sequence for small sizes, including the size=1 -> 2 step.
func TestGrownCapacity_FiftyPercentRule(t *testing.T) {
	cases := []struct{ size, want int }{
		{0, 1},
		{1, 2},
		{2, 4},
		{4, 7},
		{7, 11},
		{10, 16},
	}
	for _, tc := range cases {
		got, err := GrownCapacity(tc.size, tc.size+1)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "size=%d", tc.size)
	}
}

// TestGrownCapacity_ClampsToMaxLength verifies that an overflowing 50% step
// clamps to MaxLength when the minimum still fits.
func TestGrownCapacity_ClampsToMaxLength(t *testing.T) {
	got, err := GrownCapacity(MaxLength-1, MaxLength)
	require.NoError(t, err)
	assert.Equal(t, MaxLength, got)
}

// TestGrownCapacity_MinimumTooLarge verifies the capacity-overflow condition
// when even the minimum required capacity cannot be represented.
func TestGrownCapacity_MinimumTooLarge(t *testing.T) {
	_, err := GrownCapacity(MaxLength, MaxLength+1)
	require.ErrorIs(t, err, ErrCapacityOverflow)
}
