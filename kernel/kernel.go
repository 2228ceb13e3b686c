// Package kernel defines the pairwise kernel function contract used by the
// Gaussian process classifier, together with a reference RBF implementation.
package kernel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Kernel computes a scalar similarity between two feature vectors.
//
// Implementations must be symmetric, Eval(x, y) == Eval(y, x), and at least
// approximately positive semi-definite over any finite set of inputs for the
// Gaussian process classifier to be well-posed.
type Kernel interface {
	// Eval computes the kernel value between two points x and y.
	// Both slices must have the same length.
	Eval(x, y []float64) float64
}

// RBF is the radial basis function (squared exponential) kernel
//
//	k(x, y) = Variance * exp(-||x - y||^2 / (2 * LengthScale^2))
type RBF struct {
	// LengthScale controls the smoothness; larger values give smoother
	// interpolation.
	LengthScale float64

	// Variance controls the amplitude.
	Variance float64
}

// NewRBF creates an RBF kernel with the given length scale and variance.
func NewRBF(lengthScale, variance float64) *RBF {
	return &RBF{LengthScale: lengthScale, Variance: variance}
}

// Eval computes the RBF kernel value between x and y.
func (k *RBF) Eval(x, y []float64) float64 {
	sumSq := 0.0
	for i := range x {
		diff := x[i] - y[i]
		sumSq += diff * diff
	}
	return k.Variance * math.Exp(-sumSq/(2*k.LengthScale*k.LengthScale))
}

// Gram computes the pairwise kernel matrix between the rows of X and the
// rows of Y. The result has dimensions (rows of X) x (rows of Y).
func Gram(k Kernel, X, Y mat.Matrix) *mat.Dense {
	nX, d := X.Dims()
	nY, _ := Y.Dims()

	xi := make([]float64, d)
	yj := make([]float64, d)

	gram := mat.NewDense(nX, nY, nil)
	for i := 0; i < nX; i++ {
		for c := 0; c < d; c++ {
			xi[c] = X.At(i, c)
		}
		for j := 0; j < nY; j++ {
			for c := 0; c < d; c++ {
				yj[c] = Y.At(j, c)
			}
			gram.Set(i, j, k.Eval(xi, yj))
		}
	}
	return gram
}
