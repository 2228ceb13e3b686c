// Package gp implements a kernelized Gaussian process classifier with a
// sigmoid link.
package gp

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linclass/core/model"
	"github.com/YuminosukeSato/linclass/kernel"
	"github.com/YuminosukeSato/linclass/pkg/errors"
)

// defaultNu is the default jitter added to the Gram diagonal.
const defaultNu = 1e-4

// GaussianProcessClassifier is a non-parametric binary classifier. Fit
// stores the training data and the inverse of the jittered Gram matrix;
// Predict returns the sigmoid of the posterior mean
//
//	a = K(X*, X) (K(X, X) + nu I)^-1 t
//
// The stored labels t are used directly as target values for a mean-only
// prediction. A full Laplace treatment would first iterate to the mode of
// the latent function posterior; this simplification is intentional and
// changes observable behavior on non-separable data, so it is preserved
// rather than upgraded.
type GaussianProcessClassifier struct {
	state *model.StateManager

	// Hyperparameters
	kernel kernel.Kernel
	nu     float64 // jitter ensuring positive-definiteness of the Gram matrix

	// Fitted state
	x_          *mat.Dense
	t_          *mat.VecDense
	covariance_ *mat.Dense
	precision_  *mat.Dense
}

// GaussianProcessClassifierOption is a functional option for
// GaussianProcessClassifier.
type GaussianProcessClassifierOption func(*GaussianProcessClassifier)

// WithKernel sets the pairwise kernel function.
func WithKernel(k kernel.Kernel) GaussianProcessClassifierOption {
	return func(gpc *GaussianProcessClassifier) {
		gpc.kernel = k
	}
}

// WithNu sets the jitter added to the Gram matrix diagonal. Raising nu is
// the mitigation when Fit fails on a near-singular covariance.
func WithNu(nu float64) GaussianProcessClassifierOption {
	return func(gpc *GaussianProcessClassifier) {
		gpc.nu = nu
	}
}

// NewGaussianProcessClassifier creates a new GaussianProcessClassifier.
// The default kernel is RBF(1, 1) and the default jitter is 1e-4.
func NewGaussianProcessClassifier(opts ...GaussianProcessClassifierOption) *GaussianProcessClassifier {
	gpc := &GaussianProcessClassifier{
		state:  model.NewStateManager(),
		kernel: kernel.NewRBF(1, 1),
		nu:     defaultNu,
	}
	for _, opt := range opts {
		opt(gpc)
	}
	return gpc
}

// Fit stores the training data and precomputes the precision matrix
// (K + nu I)^-1 over the training inputs.
//
// Inversion failure on a near-singular covariance is a fatal ModelError
// wrapping ErrSingularMatrix; increasing the jitter nu is the mitigation.
func (gpc *GaussianProcessClassifier) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "GaussianProcessClassifier.Fit")

	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()

	if nSamples == 0 || nFeatures == 0 {
		return errors.NewModelError("GaussianProcessClassifier.Fit", "empty data", errors.ErrEmptyData)
	}
	if yRows != nSamples {
		return errors.NewDimensionError("GaussianProcessClassifier.Fit", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("GaussianProcessClassifier.Fit", "y must be a column vector")
	}
	if gpc.nu < 0 {
		return errors.NewValidationError("nu", "must be non-negative", gpc.nu)
	}

	t := mat.NewVecDense(nSamples, nil)
	for i := 0; i < nSamples; i++ {
		v := y.At(i, 0)
		if v != 0 && v != 1 {
			return errors.NewValidationError("y",
				"GaussianProcessClassifier requires class labels 0 and 1", v)
		}
		t.SetVec(i, v)
	}

	gram := kernel.Gram(gpc.kernel, X, X)

	covariance := mat.DenseCopyOf(gram)
	for i := 0; i < nSamples; i++ {
		covariance.Set(i, i, covariance.At(i, i)+gpc.nu)
	}

	var precision mat.Dense
	if invErr := precision.Inverse(covariance); invErr != nil {
		return errors.NewModelError("GaussianProcessClassifier.Fit",
			"covariance inversion failed, consider increasing nu", errors.ErrSingularMatrix)
	}

	gpc.x_ = mat.DenseCopyOf(X)
	gpc.t_ = t
	gpc.covariance_ = covariance
	gpc.precision_ = &precision
	gpc.state.SetDimensions(nFeatures, nSamples)
	gpc.state.SetFitted()
	return nil
}

// Predict returns the sigmoid of the posterior mean for each row of X, an
// n x 1 matrix of probabilities of class one.
func (gpc *GaussianProcessClassifier) Predict(X mat.Matrix) (_ mat.Matrix, err error) {
	defer errors.Recover(&err, "GaussianProcessClassifier.Predict")

	if !gpc.state.IsFitted() {
		return nil, errors.NewNotFittedError("GaussianProcessClassifier", "Predict")
	}

	nFeatures, _ := gpc.state.GetDimensions()
	nSamples, cols := X.Dims()
	if cols != nFeatures {
		return nil, errors.NewDimensionError("GaussianProcessClassifier.Predict", nFeatures, cols, 1)
	}

	// a = K(X, X_train) precision t
	k := kernel.Gram(gpc.kernel, X, gpc.x_)

	nTrain := gpc.t_.Len()
	weightedTargets := mat.NewVecDense(nTrain, nil)
	weightedTargets.MulVec(gpc.precision_, gpc.t_)

	a := mat.NewVecDense(nSamples, nil)
	a.MulVec(k, weightedTargets)

	proba := mat.NewDense(nSamples, 1, nil)
	for i := 0; i < nSamples; i++ {
		proba.Set(i, 0, 1/(1+math.Exp(-a.AtVec(i))))
	}
	return proba, nil
}

// PredictLabels thresholds Predict at 0.5 and returns hard 0/1 labels.
func (gpc *GaussianProcessClassifier) PredictLabels(X mat.Matrix) (mat.Matrix, error) {
	proba, err := gpc.Predict(X)
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

// Classes returns the class labels seen during fitting.
func (gpc *GaussianProcessClassifier) Classes() []int {
	return []int{0, 1}
}

// Nu returns the jitter.
func (gpc *GaussianProcessClassifier) Nu() float64 {
	return gpc.nu
}
