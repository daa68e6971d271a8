package quno

import (
	"fmt"
	"math"

	"github.com/theapemachine/errnie"
)

/*
AmplifierState tracks a single amplification run. A run only moves forward:
once measured, the amplifier refuses to run again.
*/
type AmplifierState int

const (
	AmplifierUninitialized AmplifierState = iota // Oracle known, circuit not built
	AmplifierRunning                             // Grover iterations in progress
	AmplifierMeasured                            // Data qubits sampled, terminal
	AmplifierFailed                              // A gate or sample failed mid-run, terminal
)

func (s AmplifierState) String() string {
	switch s {
	case AmplifierUninitialized:
		return "UNINITIALIZED"
	case AmplifierRunning:
		return "RUNNING"
	case AmplifierMeasured:
		return "MEASURED"
	case AmplifierFailed:
		return "FAILED"
	default:
		return fmt.Sprintf("AmplifierState(%d)", int(s))
	}
}

/*
IterationCount is the Grover iteration count floor(π/4 · √(N/M)) for M
marked states out of N.
*/
func IterationCount(marked, total int) (int, error) {
	if marked <= 0 || marked > total {
		return 0, fmt.Errorf("%w: M=%d, N=%d", ErrInvalidOracleSize, marked, total)
	}
	return int(math.Floor(math.Pi / 4 * math.Sqrt(float64(total)/float64(marked)))), nil
}

/*
Amplifier runs amplitude amplification of an oracle's patterns on a card
register and samples the data qubits. The search space is fixed at the six
data qubits; the flag qubit is never part of N.
*/
type Amplifier struct {
	register   *Register
	oracle     Oracle
	shots      int
	state      AmplifierState
	iterations int
	histogram  Histogram
}

func NewAmplifier(register *Register, oracle Oracle, shots int) *Amplifier {
	return &Amplifier{
		register: register,
		oracle:   oracle,
		shots:    shots,
		state:    AmplifierUninitialized,
	}
}

func (a *Amplifier) State() AmplifierState {
	return a.state
}

// Iterations is R for the last run, zero before one.
func (a *Amplifier) Iterations() int {
	return a.iterations
}

func (a *Amplifier) Histogram() Histogram {
	return a.histogram
}

/*
Run builds and executes the search circuit: flag in |−⟩, data in uniform
superposition, R rounds of oracle then diffusion, flag restored, data
sampled. The shot count and oracle size are checked before any gate is
applied. A run that fails part way leaves the amplifier AmplifierFailed.
*/
func (a *Amplifier) Run() (Histogram, error) {
	switch a.state {
	case AmplifierUninitialized:
	case AmplifierMeasured:
		return Histogram{}, fmt.Errorf("%w: amplifier is %s", ErrAlreadyMeasured, a.state)
	default:
		return Histogram{}, fmt.Errorf("%w: amplifier is %s", ErrAmplifierFailed, a.state)
	}

	if a.shots <= 0 {
		return Histogram{}, fmt.Errorf("%w: %d", ErrInvalidShots, a.shots)
	}

	iterations, err := IterationCount(a.oracle.Size(), SearchSpace)
	if err != nil {
		return Histogram{}, err
	}
	if a.register.Qubits() != CardQubits {
		return Histogram{}, fmt.Errorf(
			"%w: amplification needs %d qubits, register has %d",
			ErrInvalidQubitIndex, CardQubits, a.register.Qubits(),
		)
	}

	errnie.Info(
		"amplify - marked %d, iterations %d, shots %d",
		a.oracle.Size(), iterations, a.shots,
	)

	a.state = AmplifierRunning
	a.iterations = iterations

	hist, err := a.search(iterations)
	if err != nil {
		a.state = AmplifierFailed
		return Histogram{}, fmt.Errorf("%w: %w", ErrAmplifierFailed, err)
	}

	a.histogram = hist
	a.state = AmplifierMeasured
	a.register.metrics.recordAmplification(iterations, a.shots)

	return hist, nil
}

func (a *Amplifier) search(iterations int) (Histogram, error) {
	data := dataQubits()
	r := a.register
	r.Reset()

	if err := prepareFlag(r); err != nil {
		return Histogram{}, err
	}
	if err := applyAll(r, H(), data); err != nil {
		return Histogram{}, err
	}

	for range iterations {
		if err := a.oracle.Apply(r); err != nil {
			return Histogram{}, err
		}
		if err := Diffuse(r, data); err != nil {
			return Histogram{}, err
		}
	}

	if err := unprepareFlag(r); err != nil {
		return Histogram{}, err
	}

	return r.Sample(data, a.shots)
}

// Measure runs the search and returns the single most frequent pattern.
func (a *Amplifier) Measure() (Pattern, error) {
	hist, err := a.Run()
	if err != nil {
		return 0, err
	}

	top := hist.Top()
	if err := a.oracle.Verify(top); err != nil {
		return 0, err
	}
	return top, nil
}

/*
MeasureTop runs the search and returns the M most frequent distinct
patterns, where M is the oracle size.
*/
func (a *Amplifier) MeasureTop() ([]Pattern, error) {
	hist, err := a.Run()
	if err != nil {
		return nil, err
	}

	patterns := hist.TopN(a.oracle.Size())
	if err := a.oracle.Verify(patterns...); err != nil {
		return nil, err
	}
	return patterns, nil
}

/*
Diffuse reflects the listed qubits about their uniform superposition, up to
a global phase: H and X on every qubit around a multi-controlled sign flip.
*/
func Diffuse(r *Register, qubits []int) error {
	if len(qubits) == 0 {
		return fmt.Errorf("%w: diffusion needs at least one qubit", ErrInvalidQubitIndex)
	}

	if err := applyAll(r, H(), qubits); err != nil {
		return err
	}
	if err := applyAll(r, X(), qubits); err != nil {
		return err
	}

	last := len(qubits) - 1
	if err := MCPhase(r, math.Pi, qubits[:last], qubits[last]); err != nil {
		return err
	}

	if err := applyAll(r, X(), qubits); err != nil {
		return err
	}
	return applyAll(r, H(), qubits)
}

func applyAll(r *Register, g Gate, qubits []int) error {
	for _, q := range qubits {
		if err := r.Apply(g, q); err != nil {
			return err
		}
	}
	return nil
}

func prepareFlag(r *Register) error {
	if err := r.Apply(X(), FlagQubit); err != nil {
		return err
	}
	return r.Apply(H(), FlagQubit)
}

func unprepareFlag(r *Register) error {
	if err := r.Apply(H(), FlagQubit); err != nil {
		return err
	}
	return r.Apply(X(), FlagQubit)
}
