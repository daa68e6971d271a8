package quno

import (
	"math/rand/v2"

	"github.com/theapemachine/errnie"
)

/*
topSlot is the top of the pile. Only the color lives in its two-qubit
register; the type of each branch rides along classically. Rotations are
applied to the register as they happen, but the displayed candidates come
from the phase cycle and the register is only read when the card is drawn.
*/
type topSlot struct {
	register *Register
	cycle    PhaseCycle
	step     float64
}

func newTopSlot(branches []Branch, step float64, src rand.Source, opts ...RegisterOption) (*topSlot, error) {
	if _, err := BuildOracle(branches); err != nil {
		return nil, err
	}

	patterns := make([]Pattern, len(branches))
	for i, b := range branches {
		patterns[i] = Pattern(b.Color)
	}

	slot := &topSlot{
		register: NewRegister(colorBits, src, opts...),
		cycle:    NewPhaseCycle(branches),
		step:     step,
	}

	if err := slot.register.PrepareBranches([]int{0, 1}, patterns...); err != nil {
		return nil, err
	}

	return slot, nil
}

func (s *topSlot) rotate() error {
	if err := s.register.Apply(RX(s.step), 0); err != nil {
		return err
	}

	s.cycle.Rotate()
	s.register.metrics.recordRotation()
	errnie.Info("topSlot.rotate - count %d, candidates %v", s.cycle.Count(), s.cycle.Candidates())
	return nil
}

/*
collapse reads the color register with every rotation so far already in
it. At a count of 2 mod 4 the phase steps have flipped the low color bit,
so the type comes from the branch whose opposite was observed; otherwise
an exact color match wins. Branches sharing the observed color are chosen
between at random.
*/
func (s *topSlot) collapse() (Branch, error) {
	p, err := s.register.Collapse(0, 1)
	if err != nil {
		return Branch{}, err
	}

	color := Color(p)
	base := s.cycle.Base()

	exact := func(b Branch) bool { return b.Color == color }
	flipped := func(b Branch) bool { return b.Color.Opposite() == color }

	prefer, fallback := exact, flipped
	if s.cycle.Count()%4 == 2 {
		prefer, fallback = flipped, exact
	}

	matches := branchesWhere(base, prefer)
	if len(matches) == 0 {
		matches = branchesWhere(base, fallback)
	}
	if len(matches) == 0 {
		matches = base
	}

	pick := matches[0]
	if len(matches) > 1 {
		pick = matches[s.register.rng.IntN(len(matches))]
	}
	outcome := Branch{Color: color, Type: pick.Type}

	errnie.Info("topSlot.collapse - %d rotations, outcome %s", s.cycle.Count(), outcome)
	return outcome, nil
}

func branchesWhere(branches []Branch, keep func(Branch) bool) []Branch {
	var out []Branch
	for _, b := range branches {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
