package elliptic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mathext"
)

func TestEllipticK(t *testing.T) {
	t.Run("K(0) is pi/2", func(t *testing.T) {
		got, err := EllipticK(0)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi/2, got, 1e-12)
	})

	t.Run("K(0.5)", func(t *testing.T) {
		got, err := EllipticK(0.5)
		require.NoError(t, err)
		assert.InDelta(t, 1.8540746773013719, got, 1e-13)
	})

	t.Run("increasing and bounded below", func(t *testing.T) {
		prev := math.Pi / 2
		for i := 1; i < 100; i++ {
			m := float64(i) / 100
			got, err := EllipticK(m)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, math.Pi/2, "m=%g", m)
			assert.Greater(t, got, prev, "m=%g", m)
			prev = got
		}
	})

	t.Run("matches gonum CompleteK", func(t *testing.T) {
		for _, m := range []float64{0, 1e-9, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 0.999999} {
			got, err := EllipticK(m)
			require.NoError(t, err)
			want := mathext.CompleteK(m)
			assert.True(t, scalar.EqualWithinRel(got, want, 1e-10), "m=%g got %v want %v", m, got, want)
		}
	})

	t.Run("m above one is NaN", func(t *testing.T) {
		got, err := EllipticK(1.5)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got))
	})
}
