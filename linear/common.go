package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	linclassErrors "github.com/YuminosukeSato/linclass/pkg/errors"
)

// checkFitInputs validates the common Fit preconditions: non-empty X and a
// label column vector with matching row count.
func checkFitInputs(op string, X, y mat.Matrix) (nSamples, nFeatures int, err error) {
	nSamples, nFeatures = X.Dims()
	yRows, yCols := y.Dims()

	if nSamples == 0 || nFeatures == 0 {
		return 0, 0, linclassErrors.NewModelError(op, "empty data", linclassErrors.ErrEmptyData)
	}
	if yRows != nSamples {
		return 0, 0, linclassErrors.NewDimensionError(op, nSamples, yRows, 0)
	}
	if yCols != 1 {
		return 0, 0, linclassErrors.NewValueError(op, "y must be a column vector")
	}
	return nSamples, nFeatures, nil
}

// checkPredictInputs validates that X matches the feature count seen at fit
// time.
func checkPredictInputs(op string, X mat.Matrix, nFeatures int) (nSamples int, err error) {
	nSamples, cols := X.Dims()
	if cols != nFeatures {
		return 0, linclassErrors.NewDimensionError(op, nFeatures, cols, 1)
	}
	return nSamples, nil
}

// checkBinaryLabels validates that every label is 0 or 1.
func checkBinaryLabels(y mat.Matrix) error {
	rows, _ := y.Dims()
	for i := 0; i < rows; i++ {
		v := y.At(i, 0)
		if v != 0 && v != 1 {
			return linclassErrors.NewValidationError("y",
				"binary classifiers require class labels 0 and 1", v)
		}
	}
	return nil
}

// sigmoid is the logistic function 1/(1+exp(-a)). It is applied without
// overflow guarding; large |a| saturates to 0 or 1 under the usual IEEE
// floating-point semantics.
func sigmoid(a float64) float64 {
	return 1 / (1 + math.Exp(-a))
}

// allClose reports elementwise closeness of two vectors in the
// numpy.allclose sense: |a_i - b_i| <= atol + rtol*|b_i| for every i.
func allClose(a, b []float64, rtol, atol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > atol+rtol*math.Abs(b[i]) {
			return false
		}
	}
	return true
}

// argmaxRow returns the column index of the largest value in row i.
func argmaxRow(m mat.Matrix, i int) int {
	_, cols := m.Dims()
	best := 0
	bestVal := m.At(i, 0)
	for j := 1; j < cols; j++ {
		if v := m.At(i, j); v > bestVal {
			best = j
			bestVal = v
		}
	}
	return best
}
