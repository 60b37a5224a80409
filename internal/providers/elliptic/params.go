package elliptic

import (
	"fmt"
	gomath "math"
	"strconv"

	"github.com/GriffinCanCode/elliptic/internal/types"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetNumber extracts float64 from params with type coercion.
// Numeric strings are accepted so CLI arguments can be passed through as-is.
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// ValidateNumber checks if a number is valid (not NaN or Inf)
func ValidateNumber(x float64, name string) error {
	if gomath.IsNaN(x) {
		return fmt.Errorf("%s is NaN", name)
	}
	if gomath.IsInf(x, 0) {
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}

// numbers extracts and validates the named parameters in order.
func numbers(params map[string]interface{}, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		x, ok := GetNumber(params, name)
		if !ok {
			return nil, fmt.Errorf("%s parameter required", name)
		}
		if err := ValidateNumber(x, name); err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}
