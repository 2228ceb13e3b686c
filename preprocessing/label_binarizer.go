// Package preprocessing provides data preparation utilities for the
// classifiers in this library.
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linclass/core/model"
	linclassErrors "github.com/YuminosukeSato/linclass/pkg/errors"
)

// LabelBinarizer converts integer class labels into a one-hot matrix.
//
// Labels must be non-negative integers forming a contiguous range 0..K-1.
// The number of classes is validated during Fit rather than silently
// inferred, so a label set with gaps (for example {0, 2}) is rejected
// instead of producing an under-sized one-hot matrix.
type LabelBinarizer struct {
	state *model.StateManager

	// NClasses is the number of distinct classes seen during fitting.
	NClasses int
}

// NewLabelBinarizer creates a new LabelBinarizer.
func NewLabelBinarizer() *LabelBinarizer {
	return &LabelBinarizer{
		state: model.NewStateManager(),
	}
}

// labelAt extracts the integer label from row i of an n x 1 matrix and
// validates that the stored float is a non-negative integer.
func labelAt(op string, y mat.Matrix, i int) (int, error) {
	v := y.At(i, 0)
	if v < 0 || v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, linclassErrors.NewValidationError("y",
			"class labels must be non-negative integers", v)
	}
	return int(v), nil
}

// Fit scans the labels and determines the class count.
//
// Returns a ValidationError when the labels are not a contiguous
// 0-indexed range.
func (lb *LabelBinarizer) Fit(y mat.Matrix) (err error) {
	defer linclassErrors.Recover(&err, "LabelBinarizer.Fit")

	nSamples, cols := y.Dims()
	if nSamples == 0 {
		return linclassErrors.NewModelError("LabelBinarizer.Fit", "empty data", linclassErrors.ErrEmptyData)
	}
	if cols != 1 {
		return linclassErrors.NewDimensionError("LabelBinarizer.Fit", 1, cols, 1)
	}

	maxLabel := 0
	seen := make(map[int]bool)
	for i := 0; i < nSamples; i++ {
		label, lerr := labelAt("LabelBinarizer.Fit", y, i)
		if lerr != nil {
			return lerr
		}
		seen[label] = true
		if label > maxLabel {
			maxLabel = label
		}
	}

	// Every label in 0..max must occur at least once.
	for k := 0; k <= maxLabel; k++ {
		if !seen[k] {
			return linclassErrors.NewValidationError("y",
				"class labels must be contiguous starting at 0, missing label", k)
		}
	}

	lb.NClasses = maxLabel + 1
	lb.state.SetDimensions(1, nSamples)
	lb.state.SetFitted()
	return nil
}

// Transform converts labels into an n x NClasses one-hot matrix.
func (lb *LabelBinarizer) Transform(y mat.Matrix) (_ *mat.Dense, err error) {
	defer linclassErrors.Recover(&err, "LabelBinarizer.Transform")

	if !lb.state.IsFitted() {
		return nil, linclassErrors.NewNotFittedError("LabelBinarizer", "Transform")
	}

	nSamples, cols := y.Dims()
	if cols != 1 {
		return nil, linclassErrors.NewDimensionError("LabelBinarizer.Transform", 1, cols, 1)
	}

	oneHot := mat.NewDense(nSamples, lb.NClasses, nil)
	for i := 0; i < nSamples; i++ {
		label, lerr := labelAt("LabelBinarizer.Transform", y, i)
		if lerr != nil {
			return nil, lerr
		}
		if label >= lb.NClasses {
			return nil, linclassErrors.NewValidationError("y",
				"label out of range seen during fitting", label)
		}
		oneHot.Set(i, label, 1.0)
	}

	return oneHot, nil
}

// FitTransform fits the binarizer and transforms the labels in one call.
func (lb *LabelBinarizer) FitTransform(y mat.Matrix) (*mat.Dense, error) {
	if err := lb.Fit(y); err != nil {
		return nil, err
	}
	return lb.Transform(y)
}
