package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRatingValue(t *testing.T) {
	for _, v := range []int8{-1, 0, 1, 2} {
		parsed, err := ParseRatingValue(v)
		require.NoError(t, err)
		assert.Equal(t, RatingValue(v), parsed)
	}
	for _, v := range []int8{-2, 3, 100} {
		_, err := ParseRatingValue(v)
		assert.Error(t, err, "value %d", v)
	}
}

func TestAvgRatingsOf(t *testing.T) {
	t.Run("no ratings average to zero", func(t *testing.T) {
		assert.Equal(t, AvgRatings{}, AvgRatingsOf(nil))
	})

	t.Run("averages are grouped by context", func(t *testing.T) {
		avg := AvgRatingsOf([]Rating{
			{Value: 2, Context: RatingContextFairness},
			{Value: 0, Context: RatingContextFairness},
			{Value: -1, Context: RatingContextDiversity},
		})
		assert.Equal(t, AvgRatingValue(1), avg.Fairness)
		assert.Equal(t, AvgRatingValue(-1), avg.Diversity)
		assert.Equal(t, AvgRatingValue(0), avg.Humanity)
		assert.InDelta(t, float64(1)/3, float64(avg.Total), 1e-9)
	})
}
