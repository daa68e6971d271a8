package quno

import "fmt"

// Color is the two-bit color register value of a card.
type Color int

const (
	Red Color = iota
	Blue
	Yellow
	Green
)

// NumColors is the size of the enumerated color range.
const NumColors = 4

var colorNames = [NumColors]string{"RED", "BLUE", "YELLOW", "GREEN"}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

func (c Color) Valid() bool {
	return c >= Red && c <= Green
}

/*
Opposite returns the color a phase flip on the low color qubit turns c into.
Red and blue swap, as do yellow and green.
*/
func (c Color) Opposite() Color {
	return c ^ 1
}

// Type is the four-bit type register value of a card.
type Type int

const (
	Number Type = iota
	Skip
	Reverse
	Draw2
	WildDraw4
	Wild
	MakeEntangled
	Entangled
	Interference
)

// NumTypes is the number of valid types; 9..15 fit in the register but are invalid.
const NumTypes = 9

var typeNames = [NumTypes]string{
	"NUMBER", "SKIP", "REVERSE", "DRAW_2", "WILD_DRAW_4", "WILD",
	"MAKE_ENTANGLED", "ENTANGLED", "INTERFERENCE",
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (t Type) Valid() bool {
	return t >= Number && t <= Interference
}

/*
Branch is one (color, type) possibility a card can collapse into.
A definite card has one branch, a superposition card has two.
*/
type Branch struct {
	Color Color
	Type  Type
}

func (b Branch) String() string {
	return b.Color.String() + " " + b.Type.String()
}

const (
	colorBits = 2
	typeBits  = 4

	// DataQubits is the width of a card's data register: color bits then type bits.
	DataQubits = colorBits + typeBits

	// SearchSpace is N, the number of data basis states amplification searches over.
	SearchSpace = 1 << DataQubits
)

/*
Pattern is a basis-state index over the data qubits. Qubit q holds bit q,
so the color occupies qubits 0-1 and the type occupies qubits 2-5.
*/
type Pattern uint

// Bit reports the value of qubit q in the pattern.
func (p Pattern) Bit(q int) bool {
	return p&(1<<uint(q)) != 0
}

// Encode reduces a branch to its fixed-width data pattern.
func Encode(b Branch) Pattern {
	return Pattern(b.Color) | Pattern(b.Type)<<colorBits
}

// Decode is the inverse of Encode. Type values 9..15 are rejected.
func Decode(p Pattern) (Branch, error) {
	if p >= SearchSpace {
		return Branch{}, fmt.Errorf("%w: pattern %d exceeds %d data qubits", ErrInvalidType, p, DataQubits)
	}

	b := Branch{
		Color: Color(p & (1<<colorBits - 1)),
		Type:  Type(p >> colorBits),
	}

	if !b.Type.Valid() {
		return Branch{}, fmt.Errorf("%w: %d", ErrInvalidType, int(b.Type))
	}

	return b, nil
}
