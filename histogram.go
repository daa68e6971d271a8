package quno

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

/*
Histogram is the empirical frequency table of a Sample call, indexed by the
pattern over the sampled qubits.
*/
type Histogram struct {
	Qubits []int
	Counts []int
	Shots  int
}

func newHistogram(qubits []int, width int) Histogram {
	return Histogram{
		Qubits: append([]int(nil), qubits...),
		Counts: make([]int, width),
	}
}

func (h *Histogram) add(p Pattern) {
	h.Counts[p]++
	h.Shots++
}

func (h Histogram) Count(p Pattern) int {
	if int(p) >= len(h.Counts) {
		return 0
	}
	return h.Counts[p]
}

func (h Histogram) Frequency(p Pattern) float64 {
	if h.Shots == 0 {
		return 0
	}
	return float64(h.Count(p)) / float64(h.Shots)
}

func (h Histogram) weights() []float64 {
	w := make([]float64, len(h.Counts))
	for i, c := range h.Counts {
		w[i] = float64(c)
	}
	return w
}

// Top returns the most frequent pattern; ties go to the lowest pattern.
func (h Histogram) Top() Pattern {
	return Pattern(floats.MaxIdx(h.weights()))
}

/*
TopN returns up to n distinct observed patterns, most frequent first, with
ties broken towards the lower pattern. Patterns never observed are left out.
*/
func (h Histogram) TopN(n int) []Pattern {
	order := make([]Pattern, 0, len(h.Counts))
	for i, c := range h.Counts {
		if c > 0 {
			order = append(order, Pattern(i))
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return h.Counts[order[i]] > h.Counts[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}

	return order
}
