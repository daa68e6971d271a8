package quno

import "slices"

/*
PhaseCycle is the display state of the top card under repeated phase
rotation. The candidate outcomes follow from the rotation count mod 4
alone, so nothing has to be re-measured while rotations accumulate:

	0    the base branches
	2    every base color replaced by its opposite
	1, 3 both of the above
*/
type PhaseCycle struct {
	base  []Branch
	count int
}

func NewPhaseCycle(base []Branch) PhaseCycle {
	return PhaseCycle{base: slices.Clone(base)}
}

func (p *PhaseCycle) Rotate() {
	p.count++
}

// Count is the number of rotations applied since the base was set.
func (p PhaseCycle) Count() int {
	return p.count
}

func (p PhaseCycle) Base() []Branch {
	return slices.Clone(p.base)
}

func (p PhaseCycle) opposite() []Branch {
	flipped := make([]Branch, len(p.base))
	for i, b := range p.base {
		flipped[i] = Branch{Color: b.Color.Opposite(), Type: b.Type}
	}
	return flipped
}

// Candidates lists the branch sets a player should consider plausible right now.
func (p PhaseCycle) Candidates() [][]Branch {
	switch p.count % 4 {
	case 0:
		return [][]Branch{p.Base()}
	case 2:
		return [][]Branch{p.opposite()}
	default:
		return [][]Branch{p.Base(), p.opposite()}
	}
}
