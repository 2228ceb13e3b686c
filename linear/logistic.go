package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linclass/core/model"
	"github.com/YuminosukeSato/linclass/pkg/errors"
)

const (
	defaultMaxIter = 100
	// Convergence tolerances for the elementwise closeness check between
	// consecutive weight vectors, in the numpy.allclose sense.
	defaultRtol = 1e-5
	defaultAtol = 1e-8
)

// LogisticRegression is a binary classifier fitted with the Newton-Raphson
// method, also known as iteratively reweighted least squares (IRLS). An
// optional ridge-style prior precision alpha regularizes both the gradient
// and the Hessian.
//
// The weight vector is initialized to zero, so repeated fits on the same
// data produce bit-identical parameters.
type LogisticRegression struct {
	state *model.StateManager

	// Hyperparameters
	alpha   float64 // prior precision (>= 0)
	maxIter int     // iteration cap for the IRLS loop
	rtol    float64 // relative tolerance of the convergence check
	atol    float64 // absolute tolerance of the convergence check

	// Model parameters
	coef_      *mat.VecDense
	nIter_     int
	converged_ bool
}

// LogisticRegressionOption is a functional option for LogisticRegression.
type LogisticRegressionOption func(*LogisticRegression)

// WithAlpha sets the prior precision used for ridge-style regularization.
func WithAlpha(alpha float64) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.alpha = alpha
	}
}

// WithMaxIter sets the maximum number of IRLS iterations.
func WithMaxIter(maxIter int) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.maxIter = maxIter
	}
}

// WithTol sets the absolute tolerance of the convergence check.
func WithTol(tol float64) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.atol = tol
	}
}

// NewLogisticRegression creates a new LogisticRegression classifier.
func NewLogisticRegression(opts ...LogisticRegressionOption) *LogisticRegression {
	lr := &LogisticRegression{
		state:   model.NewStateManager(),
		alpha:   0,
		maxIter: defaultMaxIter,
		rtol:    defaultRtol,
		atol:    defaultAtol,
	}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Fit runs the IRLS loop on X and the binary labels y.
//
// Each iteration solves H*delta = grad with
//
//	grad = X^T (sigmoid(Xw) - t) + alpha*w
//	H    = X^T diag(y(1-y)) X + alpha*I
//
// A singular Hessian stops the iteration early and keeps the last valid
// weights; this is recovered locally and not surfaced as an error. NIter
// reports the 1-based iteration index at the stopping point.
func (lr *LogisticRegression) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "LogisticRegression.Fit")

	nSamples, nFeatures, err := checkFitInputs("LogisticRegression.Fit", X, y)
	if err != nil {
		return err
	}
	if err := checkBinaryLabels(y); err != nil {
		return err
	}
	if lr.alpha < 0 {
		return errors.NewValidationError("alpha", "must be non-negative", lr.alpha)
	}

	t := mat.NewVecDense(nSamples, nil)
	for i := 0; i < nSamples; i++ {
		t.SetVec(i, y.At(i, 0))
	}

	w := mat.NewVecDense(nFeatures, nil)
	wOld := make([]float64, nFeatures)

	lr.nIter_ = 0
	lr.converged_ = false

	for iter := 0; iter < lr.maxIter; iter++ {
		copy(wOld, w.RawVector().Data)

		// y_n = sigmoid(x_n . w)
		prob := mat.NewVecDense(nSamples, nil)
		prob.MulVec(X, w)
		for i := 0; i < nSamples; i++ {
			prob.SetVec(i, sigmoid(prob.AtVec(i)))
		}

		grad, hessian := irlsSystem(X, t, prob, w, lr.alpha)

		delta := mat.NewVecDense(nFeatures, nil)
		if solveErr := delta.SolveVec(hessian, grad); solveErr != nil {
			// Singular Hessian: stop and keep the last valid weights.
			lr.nIter_ = iter + 1
			break
		}
		w.SubVec(w, delta)

		lr.nIter_ = iter + 1
		if allClose(wOld, w.RawVector().Data, lr.rtol, lr.atol) {
			lr.converged_ = true
			break
		}
	}

	if !lr.converged_ && lr.nIter_ == lr.maxIter {
		errors.Warn(errors.NewConvergenceWarning("LogisticRegression", lr.nIter_, ""))
	}

	lr.coef_ = w
	lr.state.SetDimensions(nFeatures, nSamples)
	lr.state.SetFitted()
	return nil
}

// irlsSystem assembles the regularized gradient and Hessian of the binary
// cross-entropy objective at the current weights.
func irlsSystem(X mat.Matrix, t, prob, w *mat.VecDense, alpha float64) (*mat.VecDense, *mat.Dense) {
	nSamples, nFeatures := X.Dims()

	// residual = y - t
	residual := mat.NewVecDense(nSamples, nil)
	residual.SubVec(prob, t)

	grad := mat.NewVecDense(nFeatures, nil)
	grad.MulVec(X.T(), residual)
	grad.AddScaledVec(grad, alpha, w)

	// weighted = diag(y(1-y)) X
	weighted := mat.NewDense(nSamples, nFeatures, nil)
	for i := 0; i < nSamples; i++ {
		r := prob.AtVec(i) * (1 - prob.AtVec(i))
		for j := 0; j < nFeatures; j++ {
			weighted.Set(i, j, r*X.At(i, j))
		}
	}

	hessian := mat.NewDense(nFeatures, nFeatures, nil)
	hessian.Mul(X.T(), weighted)
	for j := 0; j < nFeatures; j++ {
		hessian.Set(j, j, hessian.At(j, j)+alpha)
	}

	return grad, hessian
}

// PredictProba returns the probability of class one for each row of X.
func (lr *LogisticRegression) PredictProba(X mat.Matrix) (_ mat.Matrix, err error) {
	defer errors.Recover(&err, "LogisticRegression.PredictProba")

	if !lr.state.IsFitted() {
		return nil, errors.NewNotFittedError("LogisticRegression", "PredictProba")
	}

	nFeatures, _ := lr.state.GetDimensions()
	nSamples, err := checkPredictInputs("LogisticRegression.PredictProba", X, nFeatures)
	if err != nil {
		return nil, err
	}

	activation := mat.NewVecDense(nSamples, nil)
	activation.MulVec(X, lr.coef_)

	proba := mat.NewDense(nSamples, 1, nil)
	for i := 0; i < nSamples; i++ {
		proba.Set(i, 0, sigmoid(activation.AtVec(i)))
	}
	return proba, nil
}

// Predict returns 1 where the probability of class one exceeds 0.5, else 0.
func (lr *LogisticRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	proba, err := lr.PredictProba(X)
	if err != nil {
		return nil, err
	}

	nSamples, _ := proba.Dims()
	labels := mat.NewDense(nSamples, 1, nil)
	for i := 0; i < nSamples; i++ {
		if proba.At(i, 0) > 0.5 {
			labels.Set(i, 0, 1)
		}
	}
	return labels, nil
}

// Score returns the mean accuracy of Predict on X against y.
func (lr *LogisticRegression) Score(X, y mat.Matrix) (float64, error) {
	pred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	return accuracy(pred, y), nil
}

// accuracy computes the fraction of rows where the two n x 1 matrices agree.
func accuracy(pred, y mat.Matrix) float64 {
	rows, _ := pred.Dims()
	correct := 0
	for i := 0; i < rows; i++ {
		if pred.At(i, 0) == y.At(i, 0) {
			correct++
		}
	}
	return float64(correct) / float64(rows)
}

// Classes returns the class labels seen during fitting.
func (lr *LogisticRegression) Classes() []int {
	return []int{0, 1}
}

// Coef returns the fitted weight vector, or nil before fitting.
func (lr *LogisticRegression) Coef() *mat.VecDense {
	return lr.coef_
}

// NIter returns the number of IRLS iterations performed by the last fit.
func (lr *LogisticRegression) NIter() int {
	return lr.nIter_
}

// Converged reports whether the last fit reached the convergence criterion
// before the iteration cap.
func (lr *LogisticRegression) Converged() bool {
	return lr.converged_
}

// Alpha returns the prior precision.
func (lr *LogisticRegression) Alpha() float64 {
	return lr.alpha
}
