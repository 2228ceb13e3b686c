package model_test

import (
	"github.com/YuminosukeSato/linclass/core/model"
	"github.com/YuminosukeSato/linclass/gp"
	"github.com/YuminosukeSato/linclass/linear"
)

// Compile-time checks that every estimator satisfies the interfaces it is
// expected to implement.
var (
	_ model.Classifier = (*linear.LeastSquaresClassifier)(nil)
	_ model.Classifier = (*linear.LinearDiscriminantAnalysis)(nil)
	_ model.Classifier = (*gp.GaussianProcessClassifier)(nil)

	_ model.ProbabilisticClassifier = (*linear.LogisticRegression)(nil)
	_ model.ProbabilisticClassifier = (*linear.SoftmaxRegression)(nil)
	_ model.ProbabilisticClassifier = (*linear.BayesianLogisticRegression)(nil)

	_ model.DistributionPredictor = (*linear.BayesianLogisticRegression)(nil)

	_ model.Scorer = (*linear.LogisticRegression)(nil)
	_ model.Scorer = (*linear.SoftmaxRegression)(nil)
	_ model.Scorer = (*linear.BayesianLogisticRegression)(nil)
)
