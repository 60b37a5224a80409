// Package testutil provides testing utilities shared by package tests.
package testutil

import (
	"testing"

	"github.com/GriffinCanCode/elliptic/internal/elliptic"
	"github.com/GriffinCanCode/elliptic/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockReporter is a mock implementation of elliptic.Reporter for testing.
type MockReporter struct {
	mock.Mock
}

// Report mocks the Report method.
func (m *MockReporter) Report(d elliptic.Diagnostic) {
	m.Called(d)
}

// MockObserver is a mock implementation of elliptic.Observer for testing.
type MockObserver struct {
	mock.Mock
}

// Observe mocks the Observe method.
func (m *MockObserver) Observe(ev elliptic.Evaluation) {
	m.Called(ev)
}

// NewMockReporter creates a mock reporter that accepts any diagnostic.
func NewMockReporter(t *testing.T) *MockReporter {
	t.Helper()
	m := new(MockReporter)
	m.On("Report", mock.Anything).Return().Maybe()
	return m
}

// NewMockObserver creates a mock observer that accepts any evaluation.
func NewMockObserver(t *testing.T) *MockObserver {
	t.Helper()
	m := new(MockObserver)
	m.On("Observe", mock.Anything).Return().Maybe()
	return m
}

// AssertSuccess is a helper to assert a successful result.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if !result.Success {
		msg := "<nil>"
		if result.Error != nil {
			msg = *result.Error
		}
		t.Fatalf("Expected success, got error: %s", msg)
	}
}

// AssertError is a helper to assert an error result.
func AssertError(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if result.Success {
		t.Fatal("Expected error, got success")
	}
	if result.Error == nil {
		t.Fatal("Expected error message, got nil")
	}
}

// DataFloat returns a float64 field from a successful result.
func DataFloat(t *testing.T, result *types.Result, field string) float64 {
	t.Helper()
	AssertSuccess(t, result)

	actual, ok := result.Data[field]
	if !ok {
		t.Fatalf("Field %s not found in result data", field)
	}
	v, ok := actual.(float64)
	if !ok {
		t.Fatalf("Field %s: expected float64, got %T", field, actual)
	}
	return v
}
