package errors

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// TestCheckScalar tests detection of NaN and Inf scalars
func TestCheckScalar(t *testing.T) {
	if err := CheckScalar("op", 1.5, 0); err != nil {
		t.Errorf("Finite value should pass, got %v", err)
	}

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := CheckScalar("op", v, 3)
		if err == nil {
			t.Errorf("Expected error for %v, got nil", v)
			continue
		}
		var numErr *NumericalInstabilityError
		if !As(err, &numErr) {
			t.Errorf("Expected NumericalInstabilityError, got %T", err)
			continue
		}
		if numErr.Iteration != 3 {
			t.Errorf("Expected iteration 3, got %d", numErr.Iteration)
		}
	}
}

// TestCheckNumericalStability tests slice scanning
func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("op", []float64{0, -1, 2.5}, 0); err != nil {
		t.Errorf("Finite values should pass, got %v", err)
	}
	if err := CheckNumericalStability("op", []float64{0, math.NaN()}, 0); err == nil {
		t.Error("Expected error for NaN in slice, got nil")
	}
}

// TestCheckMatrix tests matrix scanning
func TestCheckMatrix(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	if err := CheckMatrix("op", m, 2, 2, 0); err != nil {
		t.Errorf("Finite matrix should pass, got %v", err)
	}

	m.Set(1, 1, math.Inf(1))
	if err := CheckMatrix("op", m, 2, 2, 0); err == nil {
		t.Error("Expected error for Inf entry, got nil")
	}
}
