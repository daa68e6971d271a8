package quno

import (
	"fmt"
	"math/rand/v2"

	"github.com/theapemachine/errnie"
)

/*
Entanglement links the colors of two cards through a shared two-qubit
register in (|01⟩+|10⟩)/√2. Sampling qubit 0 fixes both halves at once,
and the two halves never come out the same.

The correlation only lives as long as the Entanglement value; the cards
it produces carry no reference back to it.
*/
type Entanglement struct {
	register *Register
	colors   [2]Color
}

/*
NewEntanglement prepares a pair over two distinct colors. colors[0] goes to
the current player when qubit 0 reads 0, colors[1] when it reads 1.
*/
func NewEntanglement(colors [2]Color, src rand.Source, opts ...RegisterOption) (*Entanglement, error) {
	for _, c := range colors {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidColor, int(c))
		}
	}
	if colors[0] == colors[1] {
		return nil, fmt.Errorf("%w: entangled colors must differ, both %s", ErrInvalidColor, colors[0])
	}

	return &Entanglement{
		register: NewRegister(2, src, opts...),
		colors:   colors,
	}, nil
}

// Partner maps a measured color to the color the other half must have.
func (e *Entanglement) Partner(c Color) (Color, bool) {
	switch c {
	case e.colors[0]:
		return e.colors[1], true
	case e.colors[1]:
		return e.colors[0], true
	}
	return c, false
}

// Prepare puts the register into the anti-correlated pair state: H on 0, X on 1, CX 0→1.
func (e *Entanglement) Prepare() error {
	e.register.Reset()

	if err := e.register.Apply(H(), 0); err != nil {
		return err
	}
	if err := e.register.Apply(X(), 1); err != nil {
		return err
	}
	return e.register.Apply(CX(), 0, 1)
}

/*
Resolve prepares the pair, collapses qubit 0 and decodes the assignment:
0 gives the current player colors[0] and the partner colors[1], 1 swaps them.
*/
func (e *Entanglement) Resolve() (current, partner Color, err error) {
	if err = e.Prepare(); err != nil {
		return
	}

	bit, err := e.register.Collapse(0)
	if err != nil {
		return
	}

	current, partner = e.colors[0], e.colors[1]
	if bit == 1 {
		current, partner = partner, current
	}

	e.register.metrics.recordEntanglement()
	errnie.Info("Entanglement.Resolve - sampled %d, current %s, partner %s", bit, current, partner)
	return current, partner, nil
}
