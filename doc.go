// Package linclass provides classification algorithms for dense numeric
// feature matrices, with a scikit-learn-like API built on gonum.
//
// The library covers closed-form least squares classification, Fisher's
// linear discriminant, binary and multinomial logistic regression fitted by
// iteratively reweighted least squares, Bayesian logistic regression with a
// Laplace-approximated weight posterior, and a kernelized Gaussian process
// classifier with a sigmoid link.
//
// # Installation
//
//	go get github.com/YuminosukeSato/linclass
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/linclass/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 2, []float64{
//	        0, 0,
//	        0, 1,
//	        3, 3,
//	        3, 4,
//	    })
//	    y := mat.NewDense(4, 1, []float64{0, 0, 1, 1})
//
//	    clf := linear.NewLogisticRegression(linear.WithAlpha(0.1))
//	    if err := clf.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    proba, err := clf.PredictProba(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("class-one probabilities:", proba)
//	}
//
// # Packages
//
//   - linear: least squares, LDA, logistic, softmax and Bayesian logistic
//     classifiers
//   - gp: Gaussian process classifier
//   - kernel: pairwise kernel functions and Gram matrices
//   - preprocessing: label binarization
//   - metrics: classification metrics
package linclass
