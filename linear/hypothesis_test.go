package linear

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSigmoid(t *testing.T) {
	if got := Sigmoid(0); got != 0.5 {
		t.Errorf("Sigmoid(0) = %v, want 0.5", got)
	}

	prev := 0.0
	for z := -30.0; z <= 30; z += 0.5 {
		s := Sigmoid(z)
		if s <= 0 || s >= 1 {
			t.Fatalf("Sigmoid(%v) = %v, want in (0,1)", z, s)
		}
		if s <= prev {
			t.Fatalf("Sigmoid not increasing at %v: %v <= %v", z, s, prev)
		}
		prev = s
	}

	if math.Abs(Sigmoid(2)+Sigmoid(-2)-1) > 1e-15 {
		t.Error("Sigmoid(z) + Sigmoid(-z) should be 1")
	}
}

func TestHypothesis(t *testing.T) {
	Xb := mat.NewDense(2, 2, []float64{
		1, -1,
		1, 2,
	})
	theta := mat.NewDense(3, 2, []float64{
		0, 0,
		0, 1,
		1, -1,
	})

	h := Hypothesis(Xb, theta)
	r, c := h.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("dims = %d×%d, want 2×3", r, c)
	}

	want := [][]float64{
		{0.5, Sigmoid(-1), Sigmoid(2)},
		{0.5, Sigmoid(2), Sigmoid(-1)},
	}
	for i := range want {
		for j := range want[i] {
			if math.Abs(h.At(i, j)-want[i][j]) > 1e-15 {
				t.Errorf("h(%d,%d) = %v, want %v", i, j, h.At(i, j), want[i][j])
			}
		}
	}
}

func TestCost(t *testing.T) {
	Xb := mat.NewDense(2, 2, []float64{1, -1, 1, 1})
	yCls := mat.NewDense(2, 1, []float64{0, 1})

	tests := []struct {
		name  string
		theta *mat.Dense
		lam   float64
		want  float64
	}{
		{
			name:  "zero theta",
			theta: mat.NewDense(1, 2, nil),
			lam:   0,
			want:  -math.Log(0.5 + 1e-5),
		},
		{
			name:  "bias is not penalized",
			theta: mat.NewDense(1, 2, []float64{3, 0}),
			lam:   100,
			want:  -(math.Log(1-Sigmoid(3)+1e-5) + math.Log(Sigmoid(3)+1e-5)) / 2,
		},
		{
			name:  "weight penalty",
			theta: mat.NewDense(1, 2, []float64{0, 2}),
			lam:   1,
			want:  -(math.Log(1-Sigmoid(-2)+1e-5)+math.Log(Sigmoid(2)+1e-5))/2 + 1.0/4*4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cost(Xb, yCls, tt.theta, tt.lam)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Cost() = %v, want %v", got, tt.want)
			}
			if got < 0 {
				t.Errorf("Cost() = %v, want non-negative", got)
			}
		})
	}
}

func TestAddBias(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	Xb := addBias(X)

	want := mat.NewDense(3, 3, []float64{
		1, 1, 2,
		1, 3, 4,
		1, 5, 6,
	})
	if !mat.Equal(Xb, want) {
		t.Errorf("addBias() = %v", mat.Formatted(Xb))
	}

	// 並列経路
	const rows = parallelThreshold + 7
	big := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		big.Set(i, 0, float64(i))
	}
	bigB := addBias(big)
	for _, i := range []int{0, rows / 2, rows - 1} {
		if bigB.At(i, 0) != 1 || bigB.At(i, 1) != float64(i) {
			t.Fatalf("row %d = [%v %v]", i, bigB.At(i, 0), bigB.At(i, 1))
		}
	}
}

func TestOneHot(t *testing.T) {
	got := oneHot([]int{2, 0, 1}, 3)
	want := mat.NewDense(3, 3, []float64{
		0, 0, 1,
		1, 0, 0,
		0, 1, 0,
	})
	if !mat.Equal(got, want) {
		t.Errorf("oneHot() = %v", mat.Formatted(got))
	}
}
