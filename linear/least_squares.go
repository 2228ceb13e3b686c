package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linclass/core/model"
	"github.com/YuminosukeSato/linclass/pkg/errors"
	"github.com/YuminosukeSato/linclass/preprocessing"
)

// LeastSquaresClassifier is a closed-form multi-class classifier obtained by
// regressing a one-hot target matrix onto the features with the
// pseudo-inverse: W = pinv(X) * T.
//
// It has no probabilistic output; Predict returns the row-wise argmax of
// X * W.
type LeastSquaresClassifier struct {
	state *model.StateManager

	// Model parameters
	coef_     *mat.Dense // (n_features x n_classes)
	nClasses_ int
}

// NewLeastSquaresClassifier creates a new LeastSquaresClassifier.
func NewLeastSquaresClassifier() *LeastSquaresClassifier {
	return &LeastSquaresClassifier{
		state: model.NewStateManager(),
	}
}

// Fit estimates the weight matrix from X and the integer class labels y.
//
// The label set must form a contiguous 0-indexed range; the solve fails with
// a ModelError wrapping ErrSingularMatrix when X is rank deficient.
func (c *LeastSquaresClassifier) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "LeastSquaresClassifier.Fit")

	nSamples, nFeatures, err := checkFitInputs("LeastSquaresClassifier.Fit", X, y)
	if err != nil {
		return err
	}

	lb := preprocessing.NewLabelBinarizer()
	T, err := lb.FitTransform(y)
	if err != nil {
		return err
	}

	// W = pinv(X) * T, computed as the least-squares solution of X*W = T.
	var W mat.Dense
	if solveErr := W.Solve(X, T); solveErr != nil {
		return errors.NewModelError("LeastSquaresClassifier.Fit",
			"pseudo-inverse computation failed", errors.ErrSingularMatrix)
	}

	c.coef_ = &W
	c.nClasses_ = lb.NClasses
	c.state.SetDimensions(nFeatures, nSamples)
	c.state.SetFitted()
	return nil
}

// Predict returns the class label with the highest score for each row of X.
func (c *LeastSquaresClassifier) Predict(X mat.Matrix) (_ mat.Matrix, err error) {
	defer errors.Recover(&err, "LeastSquaresClassifier.Predict")

	if !c.state.IsFitted() {
		return nil, errors.NewNotFittedError("LeastSquaresClassifier", "Predict")
	}

	nFeatures, _ := c.state.GetDimensions()
	nSamples, err := checkPredictInputs("LeastSquaresClassifier.Predict", X, nFeatures)
	if err != nil {
		return nil, err
	}

	var scores mat.Dense
	scores.Mul(X, c.coef_)

	labels := mat.NewDense(nSamples, 1, nil)
	for i := 0; i < nSamples; i++ {
		labels.Set(i, 0, float64(argmaxRow(&scores, i)))
	}
	return labels, nil
}

// Classes returns the class labels seen during fitting.
func (c *LeastSquaresClassifier) Classes() []int {
	classes := make([]int, c.nClasses_)
	for k := range classes {
		classes[k] = k
	}
	return classes
}

// Coef returns the fitted weight matrix, or nil before fitting.
func (c *LeastSquaresClassifier) Coef() *mat.Dense {
	return c.coef_
}
