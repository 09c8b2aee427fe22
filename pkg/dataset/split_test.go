package dataset

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int) []Example {
	records := make([]Example, n)
	for i := range records {
		records[i] = Example{Input: strconv.Itoa(i)}
	}
	return records
}

func TestSplitPartitions(t *testing.T) {
	for n := 0; n <= 200; n++ {
		records := numbered(n)
		splits := Split(records)

		require.Equal(t, n, splits.Len(), "n=%d", n)

		var joined []Example
		joined = append(joined, splits.Train...)
		joined = append(joined, splits.Validation...)
		joined = append(joined, splits.Test...)
		if n == 0 {
			assert.Empty(t, joined)
			continue
		}
		assert.Equal(t, records, joined, "n=%d", n)
	}
}

func TestSplitBoundaries(t *testing.T) {
	tests := []struct {
		n                       int
		train, validation, test int
	}{
		{150, 105, 30, 15},
		{10, 7, 2, 1},
		{9, 6, 2, 1},
		{3, 2, 0, 1},
		{1, 0, 0, 1},
		{0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.n), func(t *testing.T) {
			splits := Split(numbered(tt.n))
			assert.Len(t, splits.Train, tt.train)
			assert.Len(t, splits.Validation, tt.validation)
			assert.Len(t, splits.Test, tt.test)
		})
	}
}

func TestSplitSlicesDoNotOverlapOnAppend(t *testing.T) {
	records := numbered(10)
	splits := Split(records)

	_ = append(splits.Train, Example{Input: "extra"})

	assert.Equal(t, "7", splits.Validation[0].Input)
}

func TestSplitAtRejectsInvalidCuts(t *testing.T) {
	records := numbered(10)

	for _, cuts := range [][2]float64{
		{math.NaN(), 0.9},
		{0.7, math.Inf(1)},
		{-0.1, 0.9},
		{0.7, 1.5},
		{0.9, 0.7},
	} {
		_, err := SplitAt(records, cuts[0], cuts[1])
		assert.ErrorIs(t, err, ErrInvalidArgument, "cuts=%v", cuts)
	}
}

func TestSplitAtCustomCuts(t *testing.T) {
	splits, err := SplitAt(numbered(20), 0.5, 0.5)
	require.NoError(t, err)

	assert.Len(t, splits.Train, 10)
	assert.Empty(t, splits.Validation)
	assert.Len(t, splits.Test, 10)
}
