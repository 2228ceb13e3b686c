// Package linear implements linear classification models on dense feature
// matrices: closed-form least squares classification, Fisher's linear
// discriminant, binary and multinomial logistic regression fitted by
// iteratively reweighted least squares (IRLS), and a Bayesian logistic
// regression with a Laplace approximation over the weight posterior.
//
// All models share the same lifecycle: construct with functional options,
// call Fit once with an (n_samples x n_features) matrix X and an
// (n_samples x 1) matrix of integer class labels, then call Predict or
// PredictProba any number of times. Fit overwrites all fitted parameters in
// place; concurrent Predict calls on a fitted model are safe, concurrent
// Fit calls are not.
package linear
