package quno

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

/*
Card is a playing card whose identity lives in a 7-qubit register: six data
qubits for color and type plus the oracle flag. The known lists mirror what
a player can see. They always have equal length, one for a definite card
and two for a superposition, and collapse to one on Measure.
*/
type Card struct {
	id   uuid.UUID
	pair uuid.UUID

	register *Register
	oracle   Oracle
	shots    int

	knownColor []Color
	knownType  []Type

	isEntangled bool
	wasMeasured bool
}

// CardOption configures a Card at construction.
type CardOption func(*Card)

// WithShots overrides the sample count used by Measure.
func WithShots(shots int) CardOption {
	return func(c *Card) {
		c.shots = shots
	}
}

// WithPair tags a card as one half of the entangled pair id.
func WithPair(id uuid.UUID) CardOption {
	return func(c *Card) {
		c.pair = id
	}
}

// WithCardMetrics attaches m to the card's register.
func WithCardMetrics(m *Metrics) CardOption {
	return func(c *Card) {
		c.register.metrics = m
	}
}

/*
NewCard builds a card from one or two known branches. The branches are
encoded into the card's oracle here, so Measure only has to run the search.
*/
func NewCard(branches []Branch, isEntangled bool, src rand.Source, opts ...CardOption) (*Card, error) {
	oracle, err := BuildOracle(branches)
	if err != nil {
		return nil, err
	}

	card := &Card{
		id:          uuid.New(),
		register:    NewRegister(CardQubits, src),
		oracle:      oracle,
		shots:       NewConfig().Shots,
		isEntangled: isEntangled,
	}

	for _, b := range branches {
		card.knownColor = append(card.knownColor, b.Color)
		card.knownType = append(card.knownType, b.Type)
	}

	for _, opt := range opts {
		opt(card)
	}

	errnie.Info("NewCard - %s, entangled %v", card, isEntangled)
	return card, nil
}

// newMeasuredCard is a definite card whose value is already known, such as a collapsed top card.
func newMeasuredCard(b Branch, src rand.Source) (*Card, error) {
	card, err := NewCard([]Branch{b}, false, src)
	if err != nil {
		return nil, err
	}
	card.wasMeasured = true
	return card, nil
}

func (c *Card) ID() uuid.UUID {
	return c.id
}

// PairID identifies the entangled pair the card belongs to, uuid.Nil if none.
func (c *Card) PairID() uuid.UUID {
	return c.pair
}

func (c *Card) IsEntangled() bool {
	return c.isEntangled
}

func (c *Card) WasMeasured() bool {
	return c.wasMeasured
}

func (c *Card) KnownColors() []Color {
	return slices.Clone(c.knownColor)
}

func (c *Card) KnownTypes() []Type {
	return slices.Clone(c.knownType)
}

func (c *Card) Branches() []Branch {
	branches := make([]Branch, len(c.knownColor))
	for i := range branches {
		branches[i] = Branch{Color: c.knownColor[i], Type: c.knownType[i]}
	}
	return branches
}

/*
Measure resolves the card through amplitude amplification of its known
branches and writes the outcome back as the only known branch. A card can
be measured once.
*/
func (c *Card) Measure() (Branch, error) {
	if c.wasMeasured {
		return Branch{}, fmt.Errorf("%w: %s", ErrAlreadyMeasured, c.id)
	}

	pattern, err := NewAmplifier(c.register, c.oracle, c.shots).Measure()
	if err != nil {
		return Branch{}, err
	}

	outcome, err := Decode(pattern)
	if err != nil {
		return Branch{}, err
	}

	c.knownColor = []Color{outcome.Color}
	c.knownType = []Type{outcome.Type}
	c.wasMeasured = true

	errnie.Info("Card.Measure - %s collapsed to %s", c.id, outcome)
	return outcome, nil
}

// Outcome is the measured value of the card.
func (c *Card) Outcome() (Branch, error) {
	if !c.wasMeasured {
		return Branch{}, fmt.Errorf("%w: %s", ErrNotYetMeasured, c.id)
	}
	return Branch{Color: c.knownColor[0], Type: c.knownType[0]}, nil
}

/*
Reconstruct recovers the card's branches from the register by the top-M
variant of amplification, without marking the card measured. A measured
card just reports its outcome.
*/
func (c *Card) Reconstruct() ([]Branch, error) {
	if c.wasMeasured {
		return c.Branches(), nil
	}

	patterns, err := NewAmplifier(c.register, c.oracle, c.shots).MeasureTop()
	if err != nil {
		return nil, err
	}

	branches := make([]Branch, 0, len(patterns))
	for _, p := range patterns {
		b, err := Decode(p)
		if err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}

	return branches, nil
}

/*
IsPlayable reports whether the card may go on top. Any card plays on an
empty pile, entangled cards play on anything, otherwise a known color or
type has to match.
*/
func (c *Card) IsPlayable(top *Branch) bool {
	if top == nil || c.isEntangled {
		return true
	}

	return slices.Contains(c.knownColor, top.Color) || slices.Contains(c.knownType, top.Type)
}

func (c *Card) String() string {
	parts := make([]string, 0, len(c.knownColor))
	for _, b := range c.Branches() {
		parts = append(parts, b.String())
	}

	s := strings.Join(parts, " | ")
	if c.isEntangled {
		s += " (entangled)"
	}
	return s
}
