package quno

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
)

/*
Register is a dense statevector over 2^n basis states. Basis index bit q is
the value of qubit q. The register owns its amplitudes exclusively and is
not safe for concurrent use; the caller serializes access.
*/
type Register struct {
	qubits     int
	amplitudes []complex128
	rng        *rand.Rand
	metrics    *Metrics
}

// RegisterOption configures a Register at construction.
type RegisterOption func(*Register)

// WithMetrics records gate and collapse counts into m.
func WithMetrics(m *Metrics) RegisterOption {
	return func(r *Register) {
		r.metrics = m
	}
}

/*
NewRegister returns an n-qubit register in |0...0⟩. All randomness the
register uses is drawn from src, so a seeded source makes sampling
reproducible.
*/
func NewRegister(qubits int, src rand.Source, opts ...RegisterOption) *Register {
	r := &Register{
		qubits:     qubits,
		amplitudes: make([]complex128, 1<<uint(qubits)),
		rng:        rand.New(src),
	}
	r.amplitudes[0] = 1

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Register) Qubits() int {
	return r.qubits
}

// Reset returns the register to |0...0⟩.
func (r *Register) Reset() {
	clear(r.amplitudes)
	r.amplitudes[0] = 1
}

// Amplitudes returns a copy of the statevector.
func (r *Register) Amplitudes() []complex128 {
	out := make([]complex128, len(r.amplitudes))
	copy(out, r.amplitudes)
	return out
}

// Norm is the sum of squared magnitudes, 1 for any valid state.
func (r *Register) Norm() float64 {
	return floats.Sum(r.basisProbabilities())
}

func (r *Register) validate(qubits []int) error {
	seen := 0
	for _, q := range qubits {
		if q < 0 || q >= r.qubits {
			return fmt.Errorf("%w: qubit %d outside [0,%d)", ErrInvalidQubitIndex, q, r.qubits)
		}
		if seen&(1<<uint(q)) != 0 {
			return fmt.Errorf("%w: qubit %d repeated", ErrInvalidQubitIndex, q)
		}
		seen |= 1 << uint(q)
	}
	return nil
}

/*
Apply multiplies the statevector by g restricted to the listed qubits.
qubits[j] plays the role of bit j of the gate's matrix index.
*/
func (r *Register) Apply(g Gate, qubits ...int) error {
	if len(qubits) != g.Arity {
		return fmt.Errorf("%w: %s wants %d qubits, got %d", ErrGateArity, g.Name, g.Arity, len(qubits))
	}
	if err := r.validate(qubits); err != nil {
		return err
	}

	dim := 1 << uint(g.Arity)
	offsets := make([]int, dim)
	mask := 0
	for _, q := range qubits {
		mask |= 1 << uint(q)
	}
	for l := range offsets {
		for j, q := range qubits {
			if l&(1<<uint(j)) != 0 {
				offsets[l] |= 1 << uint(q)
			}
		}
	}

	in := make([]complex128, dim)
	for base := range r.amplitudes {
		if base&mask != 0 {
			continue
		}

		for l, off := range offsets {
			in[l] = r.amplitudes[base|off]
		}

		for row, off := range offsets {
			var sum complex128
			for col := range in {
				if a := g.At(row, col); a != 0 {
					sum += a * in[col]
				}
			}
			r.amplitudes[base|off] = sum
		}
	}

	r.metrics.recordGate()
	return nil
}

func (r *Register) basisProbabilities() []float64 {
	probs := make([]float64, len(r.amplitudes))
	for i, a := range r.amplitudes {
		m := cmplx.Abs(a)
		probs[i] = m * m
	}
	return probs
}

// project maps a basis index onto the pattern formed by the listed qubits.
func project(index int, qubits []int) Pattern {
	var p Pattern
	for j, q := range qubits {
		if index&(1<<uint(q)) != 0 {
			p |= 1 << uint(j)
		}
	}
	return p
}

/*
Probabilities returns the marginal distribution over the patterns of the
listed qubits, indexed by pattern.
*/
func (r *Register) Probabilities(qubits ...int) ([]float64, error) {
	if err := r.validate(qubits); err != nil {
		return nil, err
	}

	marginal := make([]float64, 1<<uint(len(qubits)))
	for i, p := range r.basisProbabilities() {
		marginal[project(i, qubits)] += p
	}

	return marginal, nil
}

// draw picks one index from an unnormalized cumulative distribution.
func (r *Register) draw(cumulative []float64) Pattern {
	total := cumulative[len(cumulative)-1]
	u := total * (1 - r.rng.Float64())

	i := sort.SearchFloat64s(cumulative, u)
	if i >= len(cumulative) {
		i = len(cumulative) - 1
	}

	return Pattern(i)
}

/*
Sample draws shots outcomes over the listed qubits without disturbing the
statevector.
*/
func (r *Register) Sample(qubits []int, shots int) (Histogram, error) {
	marginal, err := r.Probabilities(qubits...)
	if err != nil {
		return Histogram{}, err
	}

	cumulative := floats.CumSum(make([]float64, len(marginal)), marginal)
	hist := newHistogram(qubits, len(marginal))

	for range shots {
		hist.add(r.draw(cumulative))
	}

	return hist, nil
}

/*
Collapse measures the listed qubits once, projects the statevector onto the
observed outcome and renormalizes. It cannot be undone.
*/
func (r *Register) Collapse(qubits ...int) (Pattern, error) {
	marginal, err := r.Probabilities(qubits...)
	if err != nil {
		return 0, err
	}

	outcome := r.draw(floats.CumSum(make([]float64, len(marginal)), marginal))
	scale := complex(1/math.Sqrt(marginal[outcome]), 0)

	for i := range r.amplitudes {
		if project(i, qubits) == outcome {
			r.amplitudes[i] *= scale
		} else {
			r.amplitudes[i] = 0
		}
	}

	r.metrics.recordCollapse()
	return outcome, nil
}

/*
PrepareBranches moves a register in |0...0⟩ into |a⟩ for one pattern, or
(|a⟩+|b⟩)/√2 for two distinct patterns, over the listed qubits.
*/
func (r *Register) PrepareBranches(qubits []int, patterns ...Pattern) error {
	switch len(patterns) {
	case 0:
		return ErrEmptyBranchSet
	case 1, 2:
	default:
		return fmt.Errorf("%w: %d", ErrTooManyBranches, len(patterns))
	}

	a := patterns[0]
	diff := Pattern(0)
	if len(patterns) == 2 {
		diff = a ^ patterns[1]
	}

	pivot := -1
	for j := range qubits {
		if diff.Bit(j) {
			pivot = j
			break
		}
	}

	// The branch with a zero pivot bit goes first so both branches carry a + sign.
	if pivot >= 0 && a.Bit(pivot) {
		a = patterns[1]
	}

	for j, q := range qubits {
		if a.Bit(j) {
			if err := r.Apply(X(), q); err != nil {
				return err
			}
		}
	}

	if pivot < 0 {
		return nil
	}

	if err := r.Apply(H(), qubits[pivot]); err != nil {
		return err
	}

	for j, q := range qubits {
		if j != pivot && diff.Bit(j) {
			if err := r.Apply(CX(), qubits[pivot], q); err != nil {
				return err
			}
		}
	}

	return nil
}
