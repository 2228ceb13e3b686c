package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/linclass/core/model"
	"github.com/YuminosukeSato/linclass/pkg/errors"
	"github.com/YuminosukeSato/linclass/preprocessing"
)

// minDirectionNorm is the floor applied to the norm of the discriminant
// direction before normalization, to avoid dividing by a vanishing norm.
const minDirectionNorm = 1e-10

// LinearDiscriminantAnalysis is a closed-form binary classifier. Fit
// computes the direction w = S^-1 (m1 - m0) from the pooled within-class
// scatter matrix S, then derives a decision threshold in the projected
// one-dimensional space by equating the two class-conditional Gaussian
// densities.
//
// Known gap: when the two projected class variances are exactly equal the
// threshold quadratic degenerates (its leading coefficient is zero) and the
// computed threshold is non-finite. This configuration is not detected.
type LinearDiscriminantAnalysis struct {
	state *model.StateManager

	// Model parameters
	coef_      *mat.VecDense // unit-norm discriminant direction
	threshold_ float64
}

// NewLinearDiscriminantAnalysis creates a new LinearDiscriminantAnalysis.
func NewLinearDiscriminantAnalysis() *LinearDiscriminantAnalysis {
	return &LinearDiscriminantAnalysis{
		state: model.NewStateManager(),
	}
}

// Fit estimates the discriminant direction and decision threshold.
//
// Exactly two classes labelled 0 and 1 are required; any other label set is
// a ValidationError. A singular scatter matrix is a fatal ModelError.
func (lda *LinearDiscriminantAnalysis) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "LinearDiscriminantAnalysis.Fit")

	nSamples, nFeatures, err := checkFitInputs("LinearDiscriminantAnalysis.Fit", X, y)
	if err != nil {
		return err
	}

	lb := preprocessing.NewLabelBinarizer()
	if err := lb.Fit(y); err != nil {
		return err
	}
	if lb.NClasses != 2 {
		return errors.NewValidationError("y",
			"LinearDiscriminantAnalysis requires exactly two classes", lb.NClasses)
	}

	// Split samples by class.
	var rows0, rows1 []int
	for i := 0; i < nSamples; i++ {
		if y.At(i, 0) == 0 {
			rows0 = append(rows0, i)
		} else {
			rows1 = append(rows1, i)
		}
	}

	m0 := classMean(X, rows0, nFeatures)
	m1 := classMean(X, rows1, nFeatures)

	// Pooled within-class scatter S = sum_c sum_i (x_i - m_c)(x_i - m_c)^T.
	S := mat.NewDense(nFeatures, nFeatures, nil)
	accumulateScatter(S, X, rows0, m0)
	accumulateScatter(S, X, rows1, m1)

	diff := mat.NewVecDense(nFeatures, nil)
	for j := 0; j < nFeatures; j++ {
		diff.SetVec(j, m1[j]-m0[j])
	}

	w := mat.NewVecDense(nFeatures, nil)
	if solveErr := w.SolveVec(S, diff); solveErr != nil {
		return errors.NewModelError("LinearDiscriminantAnalysis.Fit",
			"scatter matrix inversion failed", errors.ErrSingularMatrix)
	}

	norm := mat.Norm(w, 2)
	if norm < minDirectionNorm {
		norm = minDirectionNorm
	}
	w.ScaleVec(1/norm, w)

	// Summarize the two projected classes as Gaussians and solve the
	// quadratic equating their densities for the decision threshold.
	mean0, var0 := projectionSummary(X, rows0, w)
	mean1, var1 := projectionSummary(X, rows1, w)

	a := var1 - var0
	b := var0*mean1 - var1*mean0
	c := var1*mean0*mean0 - var0*mean1*mean1 - var1*var0*math.Log(var1/var0)

	lda.coef_ = w
	lda.threshold_ = (math.Sqrt(b*b-a*c) - b) / a
	lda.state.SetDimensions(nFeatures, nSamples)
	lda.state.SetFitted()
	return nil
}

// classMean computes the per-feature mean over the given rows of X.
func classMean(X mat.Matrix, rows []int, nFeatures int) []float64 {
	m := make([]float64, nFeatures)
	for _, i := range rows {
		for j := 0; j < nFeatures; j++ {
			m[j] += X.At(i, j)
		}
	}
	for j := range m {
		m[j] /= float64(len(rows))
	}
	return m
}

// accumulateScatter adds sum_i (x_i - m)(x_i - m)^T over the given rows to S.
func accumulateScatter(S *mat.Dense, X mat.Matrix, rows []int, m []float64) {
	nFeatures := len(m)
	centered := mat.NewDense(len(rows), nFeatures, nil)
	for r, i := range rows {
		for j := 0; j < nFeatures; j++ {
			centered.Set(r, j, X.At(i, j)-m[j])
		}
	}
	var contrib mat.Dense
	contrib.Mul(centered.T(), centered)
	S.Add(S, &contrib)
}

// projectionSummary projects the given rows onto w and returns the mean and
// population variance of the projections.
func projectionSummary(X mat.Matrix, rows []int, w *mat.VecDense) (mean, variance float64) {
	_, nFeatures := X.Dims()
	proj := make([]float64, len(rows))
	for r, i := range rows {
		dot := 0.0
		for j := 0; j < nFeatures; j++ {
			dot += X.At(i, j) * w.AtVec(j)
		}
		proj[r] = dot
	}
	return stat.Mean(proj, nil), stat.PopVariance(proj, nil)
}

// Predict returns 1 for rows whose projection exceeds the threshold, else 0.
func (lda *LinearDiscriminantAnalysis) Predict(X mat.Matrix) (_ mat.Matrix, err error) {
	defer errors.Recover(&err, "LinearDiscriminantAnalysis.Predict")

	if !lda.state.IsFitted() {
		return nil, errors.NewNotFittedError("LinearDiscriminantAnalysis", "Predict")
	}

	nFeatures, _ := lda.state.GetDimensions()
	nSamples, err := checkPredictInputs("LinearDiscriminantAnalysis.Predict", X, nFeatures)
	if err != nil {
		return nil, err
	}

	labels := mat.NewDense(nSamples, 1, nil)
	for i := 0; i < nSamples; i++ {
		proj := 0.0
		for j := 0; j < nFeatures; j++ {
			proj += X.At(i, j) * lda.coef_.AtVec(j)
		}
		if proj > lda.threshold_ {
			labels.Set(i, 0, 1)
		}
	}
	return labels, nil
}

// Classes returns the class labels seen during fitting.
func (lda *LinearDiscriminantAnalysis) Classes() []int {
	return []int{0, 1}
}

// Coef returns the unit-norm discriminant direction, or nil before fitting.
func (lda *LinearDiscriminantAnalysis) Coef() *mat.VecDense {
	return lda.coef_
}

// Threshold returns the decision threshold in the projected space.
func (lda *LinearDiscriminantAnalysis) Threshold() float64 {
	return lda.threshold_
}
