package quno

import "math"

/*
MCPhase applies a phase of theta to the target when every control qubit is
1, synthesized from phase and controlled-phase gates only (Barenco et al.).
With the last control split off as c and the rest as R:

	C^k P(θ) = CP(θ/2)[c,t] · C^(k-1)X[R,c] · CP(-θ/2)[c,t] · C^(k-1)X[R,c] · C^(k-1)P(θ/2)[R,t]

The gate count grows as 3^k, which is fine for the six data qubits a card has.
*/
func MCPhase(r *Register, theta float64, controls []int, target int) error {
	if err := r.validate(append(append([]int(nil), controls...), target)); err != nil {
		return err
	}
	return mcPhase(r, theta, controls, target)
}

/*
MCX flips the target when every control qubit is 1. It is the multi-controlled
phase of π conjugated by Hadamards on the target, so zero controls gives X
and one control gives CX.
*/
func MCX(r *Register, controls []int, target int) error {
	if err := r.validate(append(append([]int(nil), controls...), target)); err != nil {
		return err
	}
	return mcx(r, controls, target)
}

func mcx(r *Register, controls []int, target int) error {
	if err := r.Apply(H(), target); err != nil {
		return err
	}
	if err := mcPhase(r, math.Pi, controls, target); err != nil {
		return err
	}
	return r.Apply(H(), target)
}

func mcPhase(r *Register, theta float64, controls []int, target int) error {
	switch len(controls) {
	case 0:
		return r.Apply(P(theta), target)
	case 1:
		return r.Apply(CP(theta), controls[0], target)
	}

	last := controls[len(controls)-1]
	rest := controls[:len(controls)-1]

	steps := []func() error{
		func() error { return r.Apply(CP(theta/2), last, target) },
		func() error { return mcx(r, rest, last) },
		func() error { return r.Apply(CP(-theta/2), last, target) },
		func() error { return mcx(r, rest, last) },
		func() error { return mcPhase(r, theta/2, rest, target) },
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}
