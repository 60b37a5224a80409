package elliptic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetNumber(t *testing.T) {
	tests := []struct {
		name   string
		value  interface{}
		want   float64
		wantOK bool
	}{
		{"float64", 1.5, 1.5, true},
		{"float32", float32(0.25), 0.25, true},
		{"int", 3, 3, true},
		{"int64", int64(-7), -7, true},
		{"numeric string", "0.125", 0.125, true},
		{"scientific string", "1e-9", 1e-9, true},
		{"bad string", "half", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetNumber(map[string]interface{}{"x": tt.value}, "x")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := GetNumber(map[string]interface{}{}, "x")
	assert.False(t, ok)
}

func TestValidateNumber(t *testing.T) {
	assert.NoError(t, ValidateNumber(1, "x"))
	assert.NoError(t, ValidateNumber(-1e308, "x"))
	assert.EqualError(t, ValidateNumber(math.NaN(), "x"), "x is NaN")
	assert.EqualError(t, ValidateNumber(math.Inf(-1), "x"), "x is infinite")
}

func TestNumbers(t *testing.T) {
	got, err := numbers(map[string]interface{}{"u": 1, "m": "0.5"}, "u", "m")
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 0.5}, got)

	_, err = numbers(map[string]interface{}{"u": 1}, "u", "m")
	assert.EqualError(t, err, "m parameter required")

	_, err = numbers(map[string]interface{}{"u": math.Inf(1)}, "u")
	assert.EqualError(t, err, "u is infinite")
}
