package kernel

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// TestRBF_Eval tests basic RBF kernel properties
func TestRBF_Eval(t *testing.T) {
	k := NewRBF(1.0, 1.0)

	// Kernel of a point with itself equals the variance
	x := []float64{1.0, 2.0}
	if got := k.Eval(x, x); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("k(x, x) should equal the variance 1.0, got %v", got)
	}

	// Symmetry
	y := []float64{0.5, -1.0}
	if math.Abs(k.Eval(x, y)-k.Eval(y, x)) > 1e-12 {
		t.Error("Kernel should be symmetric")
	}

	// Known value: ||x - y||^2 = 1 gives exp(-0.5)
	a := []float64{0.0}
	b := []float64{1.0}
	want := math.Exp(-0.5)
	if got := k.Eval(a, b); math.Abs(got-want) > 1e-12 {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// TestRBF_LengthScale tests that larger length scales decay more slowly
func TestRBF_LengthScale(t *testing.T) {
	narrow := NewRBF(0.5, 1.0)
	wide := NewRBF(2.0, 1.0)

	x := []float64{0.0}
	y := []float64{1.0}
	if narrow.Eval(x, y) >= wide.Eval(x, y) {
		t.Error("Kernel with larger length scale should decay more slowly")
	}
}

// TestGram_Shape tests the dimensions of the pairwise kernel matrix
func TestGram_Shape(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
	})
	Y := mat.NewDense(2, 2, []float64{
		1, 1,
		2, 2,
	})

	g := Gram(NewRBF(1.0, 1.0), X, Y)
	rows, cols := g.Dims()
	if rows != 3 || cols != 2 {
		t.Errorf("Expected 3x2 Gram matrix, got %dx%d", rows, cols)
	}
}

// TestGram_Symmetric tests that Gram(X, X) is symmetric with variance on the diagonal
func TestGram_Symmetric(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		-1, 2,
	})

	k := NewRBF(1.5, 2.0)
	g := Gram(k, X, X)

	n, _ := g.Dims()
	for i := 0; i < n; i++ {
		if math.Abs(g.At(i, i)-2.0) > 1e-12 {
			t.Errorf("Diagonal entry %d should equal the variance 2.0, got %v", i, g.At(i, i))
		}
		for j := i + 1; j < n; j++ {
			if math.Abs(g.At(i, j)-g.At(j, i)) > 1e-12 {
				t.Errorf("Gram matrix not symmetric at (%d, %d)", i, j)
			}
		}
	}
}
