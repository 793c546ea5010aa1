package words

import (
	"errors"
	"fmt"
)

var ErrNoZero = errors.New("zero element not in alphabet")

// Alphabet is the finite base alphabet Sigma with its distinguished zero.
type Alphabet[E comparable] struct {
	Elements []E
	Zero     E
}

func NewAlphabet[E comparable](zero E, elements ...E) (Alphabet[E], error) {
	for _, e := range elements {
		if e == zero {
			return Alphabet[E]{
				Elements: elements,
				Zero:     zero,
			}, nil
		}
	}
	return Alphabet[E]{}, fmt.Errorf("%w: %v", ErrNoZero, zero)
}

func (a Alphabet[E]) ZeroPair() Pair[E] {
	return Pair[E]{
		Top:    a.Zero,
		Bottom: a.Zero,
	}
}

func (a Alphabet[E]) ZeroSymbol() Symbol[E] {
	return FromPair(a.ZeroPair())
}

func (a Alphabet[E]) set() map[E]bool {
	ret := make(map[E]bool, len(a.Elements))
	for _, e := range a.Elements {
		ret[e] = true
	}
	return ret
}
