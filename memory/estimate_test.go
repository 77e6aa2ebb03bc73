package memory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/internal/overflow"
)

func TestShallowSizeOfSlice_ScalesWithElementSize(t *testing.T) {
	got, err := ShallowSizeOfSlice[int64](10)
	require.NoError(t, err)
	assert.Equal(t, int64(80), got)

	got, err = ShallowSizeOfSlice[byte](10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got)

	got, err = ShallowSizeOfSlice[struct{ a, b int64 }](4)
	require.NoError(t, err)
	assert.Equal(t, int64(64), got)
}

func TestShallowSizeOfSlice_ZeroLength(t *testing.T) {
	got, err := ShallowSizeOfSlice[int64](0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestShallowSizeOfSlice_NegativeLength(t *testing.T) {
	_, err := ShallowSizeOfSlice[int64](-3)
	require.ErrorIs(t, err, ErrNegativeBytes)
}

// TestShallowSizeOfSlice_CostOverflow verifies a representable length whose
// byte cost exceeds int64 fails with the capacity-overflow condition.
func TestShallowSizeOfSlice_CostOverflow(t *testing.T) {
	_, err := ShallowSizeOfSlice[int64](math.MaxInt)
	require.ErrorIs(t, err, overflow.ErrCapacityOverflow)
}

func TestShallowSizeOfInstance_DereferencesPointers(t *testing.T) {
	type holder struct {
		buf  []int64
		size int
	}

	direct := ShallowSizeOfInstance(holder{})
	viaNilPointer := ShallowSizeOfInstance((*holder)(nil))
	assert.Equal(t, direct, viaNilPointer)
	// The slice header is part of the instance, its backing array is not.
	assert.GreaterOrEqual(t, direct, int64(24))

	assert.Equal(t, int64(0), ShallowSizeOfInstance(nil))
}
