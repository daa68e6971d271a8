package quno

import (
	"fmt"
	"slices"
)

const (
	// FlagQubit receives the oracle's mark; it sits just above the data qubits.
	FlagQubit = DataQubits

	// CardQubits is the width of a card register: data qubits plus the flag.
	CardQubits = DataQubits + 1
)

func dataQubits() []int {
	q := make([]int, DataQubits)
	for i := range q {
		q[i] = i
	}
	return q
}

/*
Oracle flips the flag qubit exactly when the data qubits hold one of its
patterns. With the flag prepared in |−⟩ the flip kicks back as a sign on
the marked basis states and every other state is left alone.
*/
type Oracle struct {
	patterns []Pattern
}

/*
BuildOracle encodes the known branches of a card. Duplicate branches mark
the same pattern once.
*/
func BuildOracle(branches []Branch) (Oracle, error) {
	switch {
	case len(branches) == 0:
		return Oracle{}, ErrEmptyBranchSet
	case len(branches) > 2:
		return Oracle{}, fmt.Errorf("%w: %d branches", ErrTooManyBranches, len(branches))
	}

	patterns := make([]Pattern, 0, len(branches))
	for _, b := range branches {
		if !b.Color.Valid() {
			return Oracle{}, fmt.Errorf("%w: %d", ErrInvalidColor, int(b.Color))
		}
		if !b.Type.Valid() {
			return Oracle{}, fmt.Errorf("%w: %d", ErrInvalidType, int(b.Type))
		}
		patterns = append(patterns, Encode(b))
	}

	return NewOracle(patterns...), nil
}

// NewOracle marks an arbitrary set of data patterns.
func NewOracle(patterns ...Pattern) Oracle {
	marked := slices.Clone(patterns)
	slices.Sort(marked)
	return Oracle{patterns: slices.Compact(marked)}
}

// Size is M, the number of distinct marked patterns.
func (o Oracle) Size() int {
	return len(o.patterns)
}

func (o Oracle) Patterns() []Pattern {
	return slices.Clone(o.patterns)
}

func (o Oracle) Marks(p Pattern) bool {
	_, found := slices.BinarySearch(o.patterns, p)
	return found
}

// Verify fails with ErrUnmarkedOutcome for the first pattern the oracle does not mark.
func (o Oracle) Verify(patterns ...Pattern) error {
	for _, p := range patterns {
		if !o.Marks(p) {
			return fmt.Errorf("%w: pattern %d", ErrUnmarkedOutcome, p)
		}
	}
	return nil
}

/*
Apply runs the oracle on a card register. Each pattern is bracketed by NOT
gates on its zero bits around a multi-controlled NOT from the data qubits
into the flag.
*/
func (o Oracle) Apply(r *Register) error {
	data := dataQubits()

	for _, p := range o.patterns {
		if err := flipZeros(r, data, p); err != nil {
			return err
		}
		if err := MCX(r, data, FlagQubit); err != nil {
			return err
		}
		if err := flipZeros(r, data, p); err != nil {
			return err
		}
	}

	return nil
}

func flipZeros(r *Register, qubits []int, p Pattern) error {
	for j, q := range qubits {
		if !p.Bit(j) {
			if err := r.Apply(X(), q); err != nil {
				return err
			}
		}
	}
	return nil
}
