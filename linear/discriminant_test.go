package linear

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linclass/pkg/errors"
)

// TestLinearDiscriminantAnalysis_FitPredict tests separation of two 1-D classes
// with unequal spreads
func TestLinearDiscriminantAnalysis_FitPredict(t *testing.T) {
	// Class 0 is centered at -2 with a tighter spread than class 1 at +2,
	// so the threshold quadratic has a well-defined solution.
	X := mat.NewDense(8, 1, []float64{
		-2.6, -2.1, -1.9, -1.4,
		1.2, 1.8, 2.2, 2.8,
	})
	y := mat.NewDense(8, 1, []float64{0, 0, 0, 0, 1, 1, 1, 1})

	lda := NewLinearDiscriminantAnalysis()
	if err := lda.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	// The normalized 1-D direction is the unit vector pointing from class 0
	// toward class 1.
	w := lda.Coef()
	if math.Abs(w.AtVec(0)-1.0) > 1e-9 {
		t.Errorf("Expected direction 1.0, got %v", w.AtVec(0))
	}

	// The threshold sits between the class means, pulled toward the tighter
	// class 0.
	th := lda.Threshold()
	if math.IsNaN(th) || math.Abs(th) > 0.5 {
		t.Errorf("Expected threshold near the midpoint, got %v", th)
	}

	pred, err := lda.Predict(X)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	for i := 0; i < 8; i++ {
		if pred.At(i, 0) != y.At(i, 0) {
			t.Errorf("Sample %d: expected class %v, got %v", i, y.At(i, 0), pred.At(i, 0))
		}
	}
}

// TestLinearDiscriminantAnalysis_TwoDimensional tests classification in 2-D
func TestLinearDiscriminantAnalysis_TwoDimensional(t *testing.T) {
	X := mat.NewDense(8, 2, []float64{
		-2.0, -1.6,
		-1.4, -2.1,
		-2.5, -2.0,
		-1.8, -1.2,
		1.3, 2.2,
		2.4, 1.1,
		1.9, 2.8,
		2.7, 1.7,
	})
	y := mat.NewDense(8, 1, []float64{0, 0, 0, 0, 1, 1, 1, 1})

	lda := NewLinearDiscriminantAnalysis()
	if err := lda.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	// The direction is normalized to unit length.
	if norm := mat.Norm(lda.Coef(), 2); math.Abs(norm-1.0) > 1e-9 {
		t.Errorf("Expected unit-norm direction, got norm %v", norm)
	}

	pred, err := lda.Predict(X)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	for i := 0; i < 8; i++ {
		if pred.At(i, 0) != y.At(i, 0) {
			t.Errorf("Sample %d: expected class %v, got %v", i, y.At(i, 0), pred.At(i, 0))
		}
	}
}

// TestLinearDiscriminantAnalysis_RequiresTwoClasses tests the class count check
func TestLinearDiscriminantAnalysis_RequiresTwoClasses(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{0, 1, 2})
	y := mat.NewDense(3, 1, []float64{0, 1, 2})

	lda := NewLinearDiscriminantAnalysis()
	err := lda.Fit(X, y)
	if err == nil {
		t.Fatal("Expected error for three classes, got nil")
	}
	var valErr *errors.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("Expected ValidationError, got %T: %v", err, err)
	}
}

// TestLinearDiscriminantAnalysis_SingularScatter tests the singular matrix path
func TestLinearDiscriminantAnalysis_SingularScatter(t *testing.T) {
	// The second feature duplicates the first, so the scatter matrix is
	// rank deficient.
	X := mat.NewDense(4, 2, []float64{
		-2.0, -2.0,
		-1.0, -1.0,
		1.0, 1.0,
		2.0, 2.0,
	})
	y := mat.NewDense(4, 1, []float64{0, 0, 1, 1})

	lda := NewLinearDiscriminantAnalysis()
	err := lda.Fit(X, y)
	if err == nil {
		t.Fatal("Expected error for singular scatter matrix, got nil")
	}
	if !errors.Is(err, errors.ErrSingularMatrix) {
		t.Errorf("Expected ErrSingularMatrix in chain, got %v", err)
	}
}

// TestLinearDiscriminantAnalysis_PredictBeforeFit tests the not-fitted guard
func TestLinearDiscriminantAnalysis_PredictBeforeFit(t *testing.T) {
	lda := NewLinearDiscriminantAnalysis()

	_, err := lda.Predict(mat.NewDense(1, 1, []float64{0}))
	if err == nil {
		t.Fatal("Expected error when predicting before fit, got nil")
	}
	var nfErr *errors.NotFittedError
	if !errors.As(err, &nfErr) {
		t.Errorf("Expected NotFittedError, got %T: %v", err, err)
	}
}
