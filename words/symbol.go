package words

import "fmt"

type Marker uint8

const (
	NoMarker Marker = iota
	Right
	Left
)

func (m Marker) String() string {
	switch m {
	case Right:
		return ">"
	case Left:
		return "<"
	}
	return ""
}

type Pair[E comparable] struct {
	Top    E
	Bottom E
}

func (p Pair[E]) String() string {
	return fmt.Sprintf("(%v,%v)", p.Top, p.Bottom)
}

// Symbol is either a marker or a pair. Marker symbols always carry the zero Pair,
// so two symbols are equal iff they compare equal with ==.
type Symbol[E comparable] struct {
	Marker Marker
	Pair   Pair[E]
}

func RightMarker[E comparable]() Symbol[E] {
	return Symbol[E]{Marker: Right}
}

func LeftMarker[E comparable]() Symbol[E] {
	return Symbol[E]{Marker: Left}
}

func PairOf[E comparable](top, bottom E) Symbol[E] {
	return Symbol[E]{
		Pair: Pair[E]{
			Top:    top,
			Bottom: bottom,
		},
	}
}

func FromPair[E comparable](pair Pair[E]) Symbol[E] {
	return Symbol[E]{Pair: pair}
}

func (s Symbol[E]) IsRight() bool {
	return s.Marker == Right
}

func (s Symbol[E]) IsLeft() bool {
	return s.Marker == Left
}

func (s Symbol[E]) IsMarker() bool {
	return s.Marker != NoMarker
}

func (s Symbol[E]) String() string {
	if s.IsMarker() {
		return s.Marker.String()
	}
	return s.Pair.String()
}
