package quno

import "fmt"

/*
Action is the effect a measured card has on play. The variants are closed;
Resolve matches on them exhaustively.
*/
type Action interface {
	action()
}

// PlainAction covers every type without a quantum effect of its own.
type PlainAction struct {
	Type Type
}

// MakeEntangledAction deals an entangled pair.
type MakeEntangledAction struct{}

// InterferenceAction adds phase to the top of the pile.
type InterferenceAction struct{}

func (PlainAction) action()         {}
func (MakeEntangledAction) action() {}
func (InterferenceAction) action()  {}

func ActionFor(t Type) Action {
	switch t {
	case MakeEntangled:
		return MakeEntangledAction{}
	case Interference:
		return InterferenceAction{}
	default:
		return PlainAction{Type: t}
	}
}

/*
Resolution is what resolving a card produced. Received and Partner are set
for MakeEntangledAction only.
*/
type Resolution struct {
	Action   Action
	Received *Branch
	Partner  *Card
}

/*
Resolve applies a played, measured card. Plain and entangling cards become
the new top of the pile; an interference card rotates the existing top
instead of replacing it, and only lands on an empty pile.
*/
func Resolve(deck *Deck, played *Card) (Resolution, error) {
	outcome, err := played.Outcome()
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{Action: ActionFor(outcome.Type)}

	switch act := res.Action.(type) {
	case PlainAction:
		err = deck.SetTopCard([]Branch{outcome})
	case MakeEntangledAction:
		var received Branch
		if received, res.Partner, err = deck.NewEntangledPair(); err != nil {
			return Resolution{}, err
		}
		res.Received = &received
		err = deck.SetTopCard([]Branch{outcome})
	case InterferenceAction:
		if deck.top == nil {
			err = deck.SetTopCard([]Branch{outcome})
		} else {
			err = deck.AddPhase()
		}
	default:
		err = fmt.Errorf("unhandled action %T", act)
	}

	if err != nil {
		return Resolution{}, err
	}
	return res, nil
}
