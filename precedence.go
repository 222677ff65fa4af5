package climb

import "strconv"

// Level is the declared strength of an operator. Higher levels bind tighter.
type Level uint16

const (
	PRECEDENCE_ASSIGNMENT Level = iota
	PRECEDENCE_CONDITIONAL
	PRECEDENCE_SUM
	PRECEDENCE_PRODUCT
	PRECEDENCE_EXPONENT
	PRECEDENCE_PREFIX
	PRECEDENCE_CALL
)

// Strength is a binding power. Each level has a weak and a strong form, with
//
//	None < Weak(0) < Strong(0) < Weak(1) < Strong(1) < ...
//
// so the strong form of a level is the tightest threshold that still rejects
// every operator of a looser level and accepts every operator of a tighter one.
type Strength uint32

// None is the threshold of an unconstrained call: no strength is less than it.
const None Strength = 0

func Weak(l Level) Strength {
	return Strength(l)<<1 + 1
}

func Strong(l Level) Strength {
	return Strength(l)<<1 + 2
}

func (s Strength) Less(other Strength) bool {
	return s < other
}

// Level returns the level s derives from, false for None.
func (s Strength) Level() (Level, bool) {
	if s == None {
		return 0, false
	}
	return Level((s - 1) >> 1), true
}

func (s Strength) String() string {
	l, ok := s.Level()
	if !ok {
		return "none"
	}
	if s&1 == 1 {
		return "weak(" + strconv.Itoa(int(l)) + ")"
	}
	return "strong(" + strconv.Itoa(int(l)) + ")"
}

// Precedence is the pair of strengths an operator carries. Left is compared
// with the threshold of the call that meets the operator; Right is the
// threshold used to parse the operand that follows it.
type Precedence struct {
	Left  Strength
	Right Strength
}

// LeftAssoc parses the right operand with a threshold stronger than l, so an
// operator of the same level ends the operand and groups left to right.
func LeftAssoc(l Level) Precedence {
	return Precedence{Left: Weak(l), Right: Strong(l)}
}

// RightAssoc parses the right operand at l itself, so an operator of the same
// level is claimed by the operand and groups right to left.
func RightAssoc(l Level) Precedence {
	return Precedence{Left: Weak(l), Right: Weak(l)}
}

// PrefixAssoc only has a right strength, prefix operators are never gated.
func PrefixAssoc(l Level) Precedence {
	return Precedence{Left: None, Right: Weak(l)}
}
