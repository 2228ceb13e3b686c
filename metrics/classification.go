// Package metrics provides evaluation metrics for classification models.
package metrics

import (
	"gonum.org/v1/gonum/mat"

	linclassErrors "github.com/YuminosukeSato/linclass/pkg/errors"
)

// Accuracy computes the fraction of correctly predicted labels.
//
// Parameters:
//   - yTrue: ground truth labels as an n x 1 matrix
//   - yPred: predicted labels as an n x 1 matrix
//
// Returns an error when the inputs are nil, empty, or differently shaped.
func Accuracy(yTrue, yPred mat.Matrix) (float64, error) {
	if yTrue == nil || yPred == nil {
		return 0, linclassErrors.NewValueError("Accuracy", "input matrices cannot be nil")
	}

	n, cols := yTrue.Dims()
	if n == 0 {
		return 0, linclassErrors.NewModelError("Accuracy", "empty data", linclassErrors.ErrEmptyData)
	}
	if cols != 1 {
		return 0, linclassErrors.NewDimensionError("Accuracy", 1, cols, 1)
	}

	pRows, pCols := yPred.Dims()
	if pRows != n {
		return 0, linclassErrors.NewDimensionError("Accuracy", n, pRows, 0)
	}
	if pCols != 1 {
		return 0, linclassErrors.NewDimensionError("Accuracy", 1, pCols, 1)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.At(i, 0) == yPred.At(i, 0) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// ConfusionMatrix computes the K x K confusion matrix for integer labels
// 0..K-1, with rows indexing the true class and columns the predicted class.
func ConfusionMatrix(yTrue, yPred mat.Matrix, nClasses int) (*mat.Dense, error) {
	if nClasses <= 0 {
		return nil, linclassErrors.NewValidationError("nClasses", "must be positive", nClasses)
	}

	n, _ := yTrue.Dims()
	pRows, _ := yPred.Dims()
	if pRows != n {
		return nil, linclassErrors.NewDimensionError("ConfusionMatrix", n, pRows, 0)
	}

	cm := mat.NewDense(nClasses, nClasses, nil)
	for i := 0; i < n; i++ {
		trueLabel := int(yTrue.At(i, 0))
		predLabel := int(yPred.At(i, 0))
		if trueLabel < 0 || trueLabel >= nClasses {
			return nil, linclassErrors.NewValidationError("yTrue", "label out of range", trueLabel)
		}
		if predLabel < 0 || predLabel >= nClasses {
			return nil, linclassErrors.NewValidationError("yPred", "label out of range", predLabel)
		}
		cm.Set(trueLabel, predLabel, cm.At(trueLabel, predLabel)+1)
	}
	return cm, nil
}
