// Standard attribute keys for machine learning operations. Using these keys
// keeps log output consistent across the library and makes filtering and
// analysis of training runs straightforward.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of model.
	// Examples: "LogisticRegression", "GaussianProcessClassifier"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "predict_proba", "predict_dist"
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	// Examples: "linear", "gp", "preprocessing"
	ComponentKey = "ml.component"
)

// Data shape and characteristics.
const (
	// SamplesKey is the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// ClassesKey is the number of distinct class labels.
	ClassesKey = "data.classes"
)

// Training progress and performance.
const (
	// IterationsKey is the number of iterations an iterative fit performed.
	IterationsKey = "train.iterations"

	// ConvergedKey reports whether an iterative fit reached its
	// convergence criterion before the iteration cap.
	ConvergedKey = "train.converged"

	// DurationMsKey records the execution time of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey records a classification accuracy value.
	AccuracyKey = "metric.accuracy"
)
