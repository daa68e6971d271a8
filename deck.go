package quno

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

// dealable excludes Entangled, which only comes out of an entangled pair.
var dealable = []Type{Number, Skip, Reverse, Draw2, WildDraw4, Wild, MakeEntangled, Interference}

/*
Deck deals random cards and owns the single top-of-pile slot. It is driven
by one caller at a time; nothing here locks.
*/
type Deck struct {
	config  *Config
	src     rand.Source
	rng     *rand.Rand
	metrics *Metrics
	top     *topSlot
}

// DeckOption configures a Deck at construction.
type DeckOption func(*Deck)

func WithDeckMetrics(m *Metrics) DeckOption {
	return func(d *Deck) {
		d.metrics = m
	}
}

/*
NewDeck returns a deck drawing from src, or from a PCG source seeded by the
config when src is nil. Every card register the deck creates shares that
source, so one seed reproduces a whole game.
*/
func NewDeck(config *Config, src rand.Source, opts ...DeckOption) *Deck {
	if config == nil {
		config = NewConfig()
	}
	if src == nil {
		seed := config.seed()
		src = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}

	d := &Deck{
		config: config,
		src:    src,
		rng:    rand.New(src),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Deck) randomColor() Color {
	return Color(d.rng.IntN(NumColors))
}

func (d *Deck) randomType() Type {
	return dealable[d.rng.IntN(len(dealable))]
}

/*
NewCard picks the branch specification of a fresh card: one branch, or with
the configured chance two distinct branches.
*/
func (d *Deck) NewCard() ([]Color, []Type) {
	first := Branch{Color: d.randomColor(), Type: d.randomType()}
	if d.rng.Float64() >= d.config.SuperpositionChance {
		return []Color{first.Color}, []Type{first.Type}
	}

	second := first
	for second == first {
		second = Branch{Color: d.randomColor(), Type: d.randomType()}
	}

	return []Color{first.Color, second.Color}, []Type{first.Type, second.Type}
}

func (d *Deck) cardOptions() []CardOption {
	return []CardOption{WithShots(d.config.Shots), WithCardMetrics(d.metrics)}
}

// Deal constructs the card NewCard specifies.
func (d *Deck) Deal() (*Card, error) {
	colors, types := d.NewCard()

	branches := make([]Branch, len(colors))
	for i := range colors {
		branches[i] = Branch{Color: colors[i], Type: types[i]}
	}

	return NewCard(branches, false, d.src, d.cardOptions()...)
}

/*
NewEntangled resolves an entangled pair over two colors. It returns the
branch the current player receives and the partner card, which is flagged
entangled, unmeasured, and has a fresh random type. The caller links its
own half by constructing it WithPair(partner.PairID()).
*/
func (d *Deck) NewEntangled(colors [2]Color) (Branch, *Card, error) {
	pair, err := NewEntanglement(colors, d.src, WithMetrics(d.metrics))
	if err != nil {
		return Branch{}, nil, err
	}

	current, partner, err := pair.Resolve()
	if err != nil {
		return Branch{}, nil, err
	}

	received := Branch{Color: current, Type: d.randomType()}
	opts := append(d.cardOptions(), WithPair(uuid.New()))
	card, err := NewCard([]Branch{{Color: partner, Type: d.randomType()}}, true, d.src, opts...)
	if err != nil {
		return Branch{}, nil, err
	}

	errnie.Info("Deck.NewEntangled - current %s, partner %s", received, card)
	return received, card, nil
}

/*
NewEntangledPair draws the two pair colors from a fresh superposition card,
recovered through Reconstruct rather than read off the branch list. If only
one branch was observed its opposite color completes the pair.
*/
func (d *Deck) NewEntangledPair() (Branch, *Card, error) {
	first := Branch{Color: d.randomColor(), Type: d.randomType()}
	second := Branch{Color: first.Color.Opposite(), Type: d.randomType()}

	source, err := NewCard([]Branch{first, second}, false, d.src, d.cardOptions()...)
	if err != nil {
		return Branch{}, nil, err
	}

	branches, err := source.Reconstruct()
	if err != nil {
		return Branch{}, nil, err
	}
	if len(branches) == 0 {
		return Branch{}, nil, fmt.Errorf("%w: reconstruction observed nothing", ErrEmptyBranchSet)
	}

	colors := [2]Color{branches[0].Color, branches[0].Color.Opposite()}
	if len(branches) > 1 && branches[1].Color != colors[0] {
		colors[1] = branches[1].Color
	}

	return d.NewEntangled(colors)
}

// SetTopCard replaces the top of the pile and restarts its phase cycle.
func (d *Deck) SetTopCard(branches []Branch) error {
	slot, err := newTopSlot(branches, d.config.PhaseStep, d.src, WithMetrics(d.metrics))
	if err != nil {
		return err
	}
	d.top = slot
	return nil
}

func (d *Deck) topOrErr() (*topSlot, error) {
	if d.top == nil {
		return nil, fmt.Errorf("%w: no top card", ErrEmptyBranchSet)
	}
	return d.top, nil
}

// AddPhase rotates the top card's color register by one phase step.
func (d *Deck) AddPhase() error {
	slot, err := d.topOrErr()
	if err != nil {
		return err
	}
	return slot.rotate()
}

// Candidates is the display view of the top card, empty when there is none.
func (d *Deck) Candidates() [][]Branch {
	if d.top == nil {
		return nil
	}
	return d.top.cycle.Candidates()
}

func (d *Deck) RotationCount() int {
	if d.top == nil {
		return 0
	}
	return d.top.cycle.Count()
}

/*
TopCard measures the top of the pile using the accumulated rotation and
returns it as a measured card. The slot is reset to that outcome.
*/
func (d *Deck) TopCard() (*Card, error) {
	slot, err := d.topOrErr()
	if err != nil {
		return nil, err
	}

	outcome, err := slot.collapse()
	if err != nil {
		return nil, err
	}

	if err := d.SetTopCard([]Branch{outcome}); err != nil {
		return nil, err
	}

	return newMeasuredCard(outcome, d.src)
}
