package linear

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linclass/pkg/errors"
)

// logisticTrainingData returns two separable clusters mirrored through the
// origin, so a decision boundary without an intercept can separate them.
func logisticTrainingData() (*mat.Dense, *mat.Dense) {
	X := mat.NewDense(6, 2, []float64{
		-2.0, -1.0,
		-1.5, -2.0,
		-2.5, -2.0,
		2.0, 1.0,
		1.5, 2.0,
		2.5, 2.0,
	})
	y := mat.NewDense(6, 1, []float64{0, 0, 0, 1, 1, 1})
	return X, y
}

// TestLogisticRegression_FitPredict tests classification of separable clusters
func TestLogisticRegression_FitPredict(t *testing.T) {
	X, y := logisticTrainingData()

	lr := NewLogisticRegression(WithAlpha(0.1))
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if lr.NIter() < 1 || lr.NIter() > defaultMaxIter {
		t.Errorf("NIter out of range: %d", lr.NIter())
	}

	pred, err := lr.Predict(X)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	for i := 0; i < 6; i++ {
		if pred.At(i, 0) != y.At(i, 0) {
			t.Errorf("Sample %d: expected class %v, got %v", i, y.At(i, 0), pred.At(i, 0))
		}
	}

	score, err := lr.Score(X, y)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if score != 1.0 {
		t.Errorf("Expected perfect training accuracy, got %v", score)
	}
}

// TestLogisticRegression_PredictProba tests the range and ordering of probabilities
func TestLogisticRegression_PredictProba(t *testing.T) {
	X, y := logisticTrainingData()

	// A nonzero alpha keeps the weights finite on separable data, so the
	// probabilities stay strictly inside (0, 1).
	lr := NewLogisticRegression(WithAlpha(0.1))
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	proba, err := lr.PredictProba(X)
	if err != nil {
		t.Fatalf("PredictProba failed: %v", err)
	}

	rows, cols := proba.Dims()
	if rows != 6 || cols != 1 {
		t.Fatalf("Expected 6x1 probability matrix, got %dx%d", rows, cols)
	}

	for i := 0; i < 6; i++ {
		p := proba.At(i, 0)
		if p <= 0 || p >= 1 {
			t.Errorf("Sample %d: probability %v outside (0, 1)", i, p)
		}
		if y.At(i, 0) == 1 && p <= 0.5 {
			t.Errorf("Sample %d: class 1 sample has probability %v", i, p)
		}
		if y.At(i, 0) == 0 && p >= 0.5 {
			t.Errorf("Sample %d: class 0 sample has probability %v", i, p)
		}
	}
}

// TestLogisticRegression_Determinism tests that refitting yields bit-identical weights
func TestLogisticRegression_Determinism(t *testing.T) {
	X, y := logisticTrainingData()

	a := NewLogisticRegression(WithAlpha(0.5))
	if err := a.Fit(X, y); err != nil {
		t.Fatalf("First fit failed: %v", err)
	}
	b := NewLogisticRegression(WithAlpha(0.5))
	if err := b.Fit(X, y); err != nil {
		t.Fatalf("Second fit failed: %v", err)
	}

	if a.NIter() != b.NIter() {
		t.Errorf("Iteration counts differ: %d vs %d", a.NIter(), b.NIter())
	}
	wa, wb := a.Coef(), b.Coef()
	for j := 0; j < wa.Len(); j++ {
		if wa.AtVec(j) != wb.AtVec(j) {
			t.Errorf("Weight %d differs between fits: %v vs %v", j, wa.AtVec(j), wb.AtVec(j))
		}
	}
}

// TestLogisticRegression_ConvergenceWarning tests the warning on hitting the iteration cap
func TestLogisticRegression_ConvergenceWarning(t *testing.T) {
	X, y := logisticTrainingData()

	var warned error
	errors.SetWarningHandler(func(w error) { warned = w })
	defer errors.SetWarningHandler(nil)

	// One iteration of IRLS cannot converge on this data.
	lr := NewLogisticRegression(WithAlpha(0.1), WithMaxIter(1))
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if lr.Converged() {
		t.Error("Model should not report convergence after one iteration")
	}
	if warned == nil {
		t.Fatal("Expected a convergence warning, got none")
	}
	var cw *errors.ConvergenceWarning
	if !errors.As(warned, &cw) {
		t.Errorf("Expected ConvergenceWarning, got %T: %v", warned, warned)
	}
}

// TestLogisticRegression_InvalidLabels tests rejection of non-binary labels
func TestLogisticRegression_InvalidLabels(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{-1, 0, 1})
	y := mat.NewDense(3, 1, []float64{0, 1, 2})

	lr := NewLogisticRegression()
	if err := lr.Fit(X, y); err == nil {
		t.Error("Expected error for labels outside {0, 1}, got nil")
	}
}

// TestLogisticRegression_NegativeAlpha tests hyperparameter validation
func TestLogisticRegression_NegativeAlpha(t *testing.T) {
	X, y := logisticTrainingData()

	lr := NewLogisticRegression(WithAlpha(-1.0))
	err := lr.Fit(X, y)
	if err == nil {
		t.Fatal("Expected error for negative alpha, got nil")
	}
	var valErr *errors.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("Expected ValidationError, got %T: %v", err, err)
	}
}

// TestLogisticRegression_PredictBeforeFit tests the not-fitted guard
func TestLogisticRegression_PredictBeforeFit(t *testing.T) {
	lr := NewLogisticRegression()

	_, err := lr.Predict(mat.NewDense(1, 2, []float64{0, 0}))
	if err == nil {
		t.Fatal("Expected error when predicting before fit, got nil")
	}
	var nfErr *errors.NotFittedError
	if !errors.As(err, &nfErr) {
		t.Errorf("Expected NotFittedError, got %T: %v", err, err)
	}
}

// TestSigmoid tests the symmetry of the logistic function
func TestSigmoid(t *testing.T) {
	if sigmoid(0) != 0.5 {
		t.Errorf("sigmoid(0) should be 0.5, got %v", sigmoid(0))
	}
	if math.Abs(sigmoid(2)+sigmoid(-2)-1.0) > 1e-12 {
		t.Error("sigmoid(a) + sigmoid(-a) should equal 1")
	}
}

// TestAllClose tests the elementwise closeness check
func TestAllClose(t *testing.T) {
	a := []float64{1.0, 2.0}
	b := []float64{1.0 + 1e-9, 2.0}
	if !allClose(a, b, 1e-5, 1e-8) {
		t.Error("Vectors within tolerance should compare close")
	}
	c := []float64{1.1, 2.0}
	if allClose(a, c, 1e-5, 1e-8) {
		t.Error("Vectors outside tolerance should not compare close")
	}
}
