package quno

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

/*
Gate is a unitary acting on Arity qubits. The matrix is indexed with the
first qubit a gate is applied to as the least significant bit, matching
the way a Register numbers its basis states.
*/
type Gate struct {
	Name   string
	Arity  int
	matrix *mat.CDense
}

/*
NewGate wraps a 2^k x 2^k matrix as a k-qubit gate. Unitarity is the
caller's responsibility; the elementary constructors below are exact.
*/
func NewGate(name string, m *mat.CDense) (Gate, error) {
	r, c := m.Dims()
	if r != c || r == 0 || r&(r-1) != 0 {
		return Gate{}, fmt.Errorf("%w: %s matrix is %dx%d", ErrGateArity, name, r, c)
	}

	arity := 0
	for d := r; d > 1; d >>= 1 {
		arity++
	}

	return Gate{Name: name, Arity: arity, matrix: m}, nil
}

func (g Gate) At(i, j int) complex128 {
	return g.matrix.At(i, j)
}

func (g Gate) String() string {
	return g.Name
}

func single(name string, a, b, c, d complex128) Gate {
	return Gate{Name: name, Arity: 1, matrix: mat.NewCDense(2, 2, []complex128{a, b, c, d})}
}

// X is the NOT gate.
func X() Gate {
	return single("X", 0, 1, 1, 0)
}

// H is the Hadamard gate, 1/√2 [[1, 1], [1, -1]].
func H() Gate {
	h := complex(1/math.Sqrt2, 0)
	return single("H", h, h, h, -h)
}

// P is the phase gate diag(1, e^{iθ}).
func P(theta float64) Gate {
	return single(fmt.Sprintf("P(%.4f)", theta), 1, 0, 0, cmplx.Exp(complex(0, theta)))
}

// RX rotates about the X axis by theta.
func RX(theta float64) Gate {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return single(fmt.Sprintf("RX(%.4f)", theta), c, s, s, c)
}

// CP is the controlled phase gate, applied as (control, target).
func CP(theta float64) Gate {
	m := mat.NewCDense(4, 4, nil)
	m.Set(0, 0, 1)
	m.Set(1, 1, 1)
	m.Set(2, 2, 1)
	m.Set(3, 3, cmplx.Exp(complex(0, theta)))
	return Gate{Name: fmt.Sprintf("CP(%.4f)", theta), Arity: 2, matrix: m}
}

// CX is the controlled NOT, applied as (control, target).
func CX() Gate {
	m := mat.NewCDense(4, 4, nil)
	m.Set(0, 0, 1)
	m.Set(2, 2, 1)
	m.Set(1, 3, 1)
	m.Set(3, 1, 1)
	return Gate{Name: "CX", Arity: 2, matrix: m}
}
