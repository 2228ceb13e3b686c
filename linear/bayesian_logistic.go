package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linclass/pkg/errors"
)

// BayesianLogisticRegression augments LogisticRegression with a Laplace
// approximation of the weight posterior. After the IRLS fit it stores the
// inverse Hessian at the final weights as the posterior covariance, and
// PredictDist applies a probit-style moment-matching correction
//
//	sigmoid(mu_a / sqrt(1 + pi*var_a/8))
//
// that shrinks confident predictions toward 0.5 to account for posterior
// weight uncertainty. The base IRLS estimator is embedded by composition;
// Predict and PredictProba delegate to it unchanged.
type BayesianLogisticRegression struct {
	irls *LogisticRegression

	// Model parameters
	wCov_ *mat.Dense // weight posterior covariance
}

// NewBayesianLogisticRegression creates a new BayesianLogisticRegression.
// It accepts the same options as NewLogisticRegression.
func NewBayesianLogisticRegression(opts ...LogisticRegressionOption) *BayesianLogisticRegression {
	return &BayesianLogisticRegression{
		irls: NewLogisticRegression(opts...),
	}
}

// Fit runs the embedded IRLS fit, then recomputes the Hessian at the final
// weights and stores its inverse as the posterior covariance.
//
// The covariance inversion is a one-shot closed-form computation: a singular
// Hessian here is a fatal ModelError, unlike the locally recovered solve
// failures inside the IRLS loop.
func (b *BayesianLogisticRegression) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "BayesianLogisticRegression.Fit")

	b.wCov_ = nil
	if err := b.irls.Fit(X, y); err != nil {
		return err
	}

	nSamples, _ := X.Dims()
	prob := mat.NewVecDense(nSamples, nil)
	prob.MulVec(X, b.irls.coef_)
	for i := 0; i < nSamples; i++ {
		prob.SetVec(i, sigmoid(prob.AtVec(i)))
	}

	t := mat.NewVecDense(nSamples, nil)
	for i := 0; i < nSamples; i++ {
		t.SetVec(i, y.At(i, 0))
	}

	_, hessian := irlsSystem(X, t, prob, b.irls.coef_, b.irls.alpha)

	var cov mat.Dense
	if invErr := cov.Inverse(hessian); invErr != nil {
		return errors.NewModelError("BayesianLogisticRegression.Fit",
			"posterior covariance inversion failed", errors.ErrSingularMatrix)
	}

	b.wCov_ = &cov
	return nil
}

// PredictDist returns the moderated probability of class one for each row,
// accounting for the posterior uncertainty of the weights. The output always
// lies between the plain PredictProba output and 0.5.
func (b *BayesianLogisticRegression) PredictDist(X mat.Matrix) (_ mat.Matrix, err error) {
	defer errors.Recover(&err, "BayesianLogisticRegression.PredictDist")

	if b.wCov_ == nil || !b.irls.state.IsFitted() {
		return nil, errors.NewNotFittedError("BayesianLogisticRegression", "PredictDist")
	}

	nFeatures, _ := b.irls.state.GetDimensions()
	nSamples, err := checkPredictInputs("BayesianLogisticRegression.PredictDist", X, nFeatures)
	if err != nil {
		return nil, err
	}

	muA := mat.NewVecDense(nSamples, nil)
	muA.MulVec(X, b.irls.coef_)

	// var_a per row is the diagonal of X Cov X^T, computed row-wise.
	var xCov mat.Dense
	xCov.Mul(X, b.wCov_)

	dist := mat.NewDense(nSamples, 1, nil)
	for i := 0; i < nSamples; i++ {
		varA := 0.0
		for j := 0; j < nFeatures; j++ {
			varA += xCov.At(i, j) * X.At(i, j)
		}
		dist.Set(i, 0, sigmoid(muA.AtVec(i)/math.Sqrt(1+math.Pi*varA/8)))
	}
	return dist, nil
}

// PredictProba delegates to the embedded IRLS estimator.
func (b *BayesianLogisticRegression) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	return b.irls.PredictProba(X)
}

// Predict delegates to the embedded IRLS estimator.
func (b *BayesianLogisticRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	return b.irls.Predict(X)
}

// Score returns the mean accuracy of Predict on X against y.
func (b *BayesianLogisticRegression) Score(X, y mat.Matrix) (float64, error) {
	return b.irls.Score(X, y)
}

// Classes returns the class labels seen during fitting.
func (b *BayesianLogisticRegression) Classes() []int {
	return b.irls.Classes()
}

// Coef returns the fitted weight vector of the embedded estimator.
func (b *BayesianLogisticRegression) Coef() *mat.VecDense {
	return b.irls.Coef()
}

// Covariance returns the weight posterior covariance, or nil before fitting.
func (b *BayesianLogisticRegression) Covariance() *mat.Dense {
	return b.wCov_
}

// NIter returns the number of IRLS iterations performed by the last fit.
func (b *BayesianLogisticRegression) NIter() int {
	return b.irls.NIter()
}
