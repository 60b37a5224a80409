package elliptic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAGM(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		tests := []struct {
			name   string
			a0, g0 float64
			want   float64
		}{
			{"gauss constant", 1, math.Sqrt2, 1.1981402347355922},
			{"24 and 6", 24, 6, 13.458171481725615},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := AGM(tt.a0, tt.g0)
				require.NoError(t, err)
				assert.InDelta(t, tt.want, got, 1e-13)
			})
		}
	})

	t.Run("fixed point", func(t *testing.T) {
		for _, a := range []float64{0, 0.25, 0.5, 1, 2, 3, 7.5, 100} {
			got, err := AGM(a, a)
			require.NoError(t, err)
			assert.InDelta(t, a, got, 1e-15*math.Max(1, a), "a=%g", a)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		pairs := [][2]float64{{1, 2}, {0.3, 5}, {24, 6}, {1, 1e-5}}
		for _, p := range pairs {
			x, errX := AGM(p[0], p[1])
			y, errY := AGM(p[1], p[0])
			require.NoError(t, errX)
			require.NoError(t, errY)
			assert.Equal(t, x, y, "pair %v", p)
		}
	})

	t.Run("between geometric and arithmetic mean", func(t *testing.T) {
		got, err := AGM(1, 9)
		require.NoError(t, err)
		assert.Greater(t, got, 3.0)
		assert.Less(t, got, 5.0)
	})

	t.Run("zero argument exhausts iterations", func(t *testing.T) {
		got, err := AGM(0, 4)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoConvergence)
		assert.False(t, IsFatal(err))
		assert.Equal(t, KindConvergence, KindOf(err))
		assert.InDelta(t, 0, got, 1e-14)
	})

	t.Run("cap reached returns last iterate", func(t *testing.T) {
		got, err := agm(1, 2, 1)
		require.ErrorIs(t, err, ErrNoConvergence)
		// one refinement after the initial means (1.5, sqrt 2)
		assert.Equal(t, 0.5*(1.5+math.Sqrt2), got)
	})

	t.Run("NaN propagates without warning", func(t *testing.T) {
		got, err := AGM(1, math.NaN())
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got))
	})
}
