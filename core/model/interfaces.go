package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter is the interface for models that can be trained.
type Fitter interface {
	// Fit trains the model on the feature matrix X and targets y.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that produce predictions.
type Predictor interface {
	// Predict returns predictions for the input data.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Classifier combines the interfaces every classifier in this library
// implements. Predict returns an n x 1 matrix of class labels.
type Classifier interface {
	Fitter
	Predictor

	// Classes returns the class labels seen during fitting.
	Classes() []int
}

// ProbabilisticClassifier is a Classifier that also yields class
// probabilities.
type ProbabilisticClassifier interface {
	Classifier

	// PredictProba returns probability estimates. For binary models the
	// result is n x 1 (probability of class one); for multinomial models
	// it is n x K with rows summing to one.
	PredictProba(X mat.Matrix) (mat.Matrix, error)
}

// DistributionPredictor is implemented by models that produce a predictive
// distribution accounting for parameter uncertainty.
type DistributionPredictor interface {
	// PredictDist returns the moderated predictive probability of class
	// one for each input row.
	PredictDist(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the mean accuracy on the given data and labels.
	Score(X, y mat.Matrix) (float64, error)
}
