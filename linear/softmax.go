package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linclass/core/model"
	"github.com/YuminosukeSato/linclass/pkg/errors"
	"github.com/YuminosukeSato/linclass/preprocessing"
)

// SoftmaxRegression is the multinomial generalization of LogisticRegression,
// fitted by IRLS with one weight column per class.
//
// The Hessian is approximated by one (n_features x n_features) block per
// class, ignoring the cross-class coupling terms of the exact multinomial
// Hessian. Each class's weight column is therefore updated by solving its
// own linear system. This approximation is intentional and kept for
// behavioral parity with the per-class Newton update it was derived from.
type SoftmaxRegression struct {
	state *model.StateManager

	// Hyperparameters
	alpha   float64
	maxIter int
	rtol    float64
	atol    float64

	// Model parameters
	coef_      *mat.Dense // (n_features x n_classes)
	nClasses_  int
	nIter_     int
	converged_ bool
}

// SoftmaxRegressionOption is a functional option for SoftmaxRegression.
type SoftmaxRegressionOption func(*SoftmaxRegression)

// WithSoftmaxAlpha sets the prior precision used for regularization.
func WithSoftmaxAlpha(alpha float64) SoftmaxRegressionOption {
	return func(sr *SoftmaxRegression) {
		sr.alpha = alpha
	}
}

// WithSoftmaxMaxIter sets the maximum number of IRLS iterations.
func WithSoftmaxMaxIter(maxIter int) SoftmaxRegressionOption {
	return func(sr *SoftmaxRegression) {
		sr.maxIter = maxIter
	}
}

// WithSoftmaxTol sets the absolute tolerance of the convergence check.
func WithSoftmaxTol(tol float64) SoftmaxRegressionOption {
	return func(sr *SoftmaxRegression) {
		sr.atol = tol
	}
}

// NewSoftmaxRegression creates a new SoftmaxRegression classifier.
func NewSoftmaxRegression(opts ...SoftmaxRegressionOption) *SoftmaxRegression {
	sr := &SoftmaxRegression{
		state:   model.NewStateManager(),
		alpha:   0,
		maxIter: defaultMaxIter,
		rtol:    defaultRtol,
		atol:    defaultAtol,
	}
	for _, opt := range opts {
		opt(sr)
	}
	return sr
}

// softmaxRows applies a row-wise softmax to a in place, stabilized by
// subtracting the row maximum before exponentiating.
func softmaxRows(a *mat.Dense) {
	rows, cols := a.Dims()
	for i := 0; i < rows; i++ {
		rowMax := a.At(i, 0)
		for j := 1; j < cols; j++ {
			if v := a.At(i, j); v > rowMax {
				rowMax = v
			}
		}
		sum := 0.0
		for j := 0; j < cols; j++ {
			e := math.Exp(a.At(i, j) - rowMax)
			a.Set(i, j, e)
			sum += e
		}
		for j := 0; j < cols; j++ {
			a.Set(i, j, a.At(i, j)/sum)
		}
	}
}

// Fit runs the per-class IRLS loop on X and the integer class labels y.
//
// The same stopping rules as LogisticRegression.Fit apply: elementwise
// closeness of consecutive weight matrices, a singular per-class Hessian
// (stops early, keeps the last valid weights), or the iteration cap.
func (sr *SoftmaxRegression) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "SoftmaxRegression.Fit")

	nSamples, nFeatures, err := checkFitInputs("SoftmaxRegression.Fit", X, y)
	if err != nil {
		return err
	}
	if sr.alpha < 0 {
		return errors.NewValidationError("alpha", "must be non-negative", sr.alpha)
	}

	lb := preprocessing.NewLabelBinarizer()
	T, err := lb.FitTransform(y)
	if err != nil {
		return err
	}
	nClasses := lb.NClasses

	W := mat.NewDense(nFeatures, nClasses, nil)
	wOld := make([]float64, nFeatures*nClasses)

	sr.nIter_ = 0
	sr.converged_ = false

	for iter := 0; iter < sr.maxIter; iter++ {
		copy(wOld, W.RawMatrix().Data)

		// Y = softmax(X W)
		var Y mat.Dense
		Y.Mul(X, W)
		softmaxRows(&Y)

		// grad = X^T (Y - T) + alpha W
		var residual mat.Dense
		residual.Sub(&Y, T)
		var grad mat.Dense
		grad.Mul(X.T(), &residual)
		var reg mat.Dense
		reg.Scale(sr.alpha, W)
		grad.Add(&grad, &reg)

		// One Hessian block and one solve per class; cross-class
		// coupling terms are not modeled.
		delta := mat.NewDense(nFeatures, nClasses, nil)
		solveFailed := false
		weighted := mat.NewDense(nSamples, nFeatures, nil)
		for k := 0; k < nClasses; k++ {
			for i := 0; i < nSamples; i++ {
				r := Y.At(i, k) * (1 - Y.At(i, k))
				for j := 0; j < nFeatures; j++ {
					weighted.Set(i, j, r*X.At(i, j))
				}
			}
			hessian := mat.NewDense(nFeatures, nFeatures, nil)
			hessian.Mul(X.T(), weighted)
			for j := 0; j < nFeatures; j++ {
				hessian.Set(j, j, hessian.At(j, j)+sr.alpha)
			}

			deltaK := mat.NewVecDense(nFeatures, nil)
			if solveErr := deltaK.SolveVec(hessian, grad.ColView(k)); solveErr != nil {
				solveFailed = true
				break
			}
			delta.SetCol(k, deltaK.RawVector().Data)
		}
		if solveFailed {
			// Singular Hessian block: stop and keep the last valid
			// weights.
			sr.nIter_ = iter + 1
			break
		}

		W.Sub(W, delta)

		sr.nIter_ = iter + 1
		if allClose(wOld, W.RawMatrix().Data, sr.rtol, sr.atol) {
			sr.converged_ = true
			break
		}
	}

	if !sr.converged_ && sr.nIter_ == sr.maxIter {
		errors.Warn(errors.NewConvergenceWarning("SoftmaxRegression", sr.nIter_, ""))
	}

	sr.coef_ = W
	sr.nClasses_ = nClasses
	sr.state.SetDimensions(nFeatures, nSamples)
	sr.state.SetFitted()
	return nil
}

// PredictProba returns the n x n_classes matrix of class probabilities,
// each row summing to one.
func (sr *SoftmaxRegression) PredictProba(X mat.Matrix) (_ mat.Matrix, err error) {
	defer errors.Recover(&err, "SoftmaxRegression.PredictProba")

	if !sr.state.IsFitted() {
		return nil, errors.NewNotFittedError("SoftmaxRegression", "PredictProba")
	}

	nFeatures, _ := sr.state.GetDimensions()
	if _, err := checkPredictInputs("SoftmaxRegression.PredictProba", X, nFeatures); err != nil {
		return nil, err
	}

	var proba mat.Dense
	proba.Mul(X, sr.coef_)
	softmaxRows(&proba)
	return &proba, nil
}

// Predict returns the most probable class label for each row of X.
func (sr *SoftmaxRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	proba, err := sr.PredictProba(X)
	if err != nil {
		return nil, err
	}

	nSamples, _ := proba.Dims()
	labels := mat.NewDense(nSamples, 1, nil)
	for i := 0; i < nSamples; i++ {
		labels.Set(i, 0, float64(argmaxRow(proba, i)))
	}
	return labels, nil
}

// Score returns the mean accuracy of Predict on X against y.
func (sr *SoftmaxRegression) Score(X, y mat.Matrix) (float64, error) {
	pred, err := sr.Predict(X)
	if err != nil {
		return 0, err
	}
	return accuracy(pred, y), nil
}

// Classes returns the class labels seen during fitting.
func (sr *SoftmaxRegression) Classes() []int {
	classes := make([]int, sr.nClasses_)
	for k := range classes {
		classes[k] = k
	}
	return classes
}

// Coef returns the fitted (n_features x n_classes) weight matrix, or nil
// before fitting.
func (sr *SoftmaxRegression) Coef() *mat.Dense {
	return sr.coef_
}

// NIter returns the number of IRLS iterations performed by the last fit.
func (sr *SoftmaxRegression) NIter() int {
	return sr.nIter_
}

// Converged reports whether the last fit reached the convergence criterion
// before the iteration cap.
func (sr *SoftmaxRegression) Converged() bool {
	return sr.converged_
}
