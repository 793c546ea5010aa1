package belts

import (
	"slices"

	"github.com/reusee/wreath/words"
)

// Belt is a run's content folded into a closed two-track conveyor.
// Positions [0,N) address the top track left to right, positions [N,2N) the bottom
// track right to left. All positions are taken modulo 2N.
type Belt[E comparable] []words.Pair[E]

func (b Belt[E]) Span() int {
	return 2 * len(b)
}

func (b Belt[E]) Clone() Belt[E] {
	return slices.Clone(b)
}

// fold maps pos to a pair index and whether it addresses the top track. b must not be empty.
func (b Belt[E]) fold(pos int) (int, bool) {
	span := b.Span()
	pos %= span
	if pos < 0 {
		pos += span
	}
	if pos < len(b) {
		return pos, true
	}
	return span - 1 - pos, false
}

func (b Belt[E]) Read(pos int) E {
	i, top := b.fold(pos)
	if top {
		return b[i].Top
	}
	return b[i].Bottom
}

func (b Belt[E]) Write(pos int, value E) {
	i, top := b.fold(pos)
	if top {
		b[i].Top = value
	} else {
		b[i].Bottom = value
	}
}

// Lay clears b and writes pattern starting at pos, zero everywhere past it.
func (b Belt[E]) Lay(pos int, pattern []E, zero E) {
	for p := range b.Span() {
		if p < len(pattern) {
			b.Write(pos+p, pattern[p])
		} else {
			b.Write(pos+p, zero)
		}
	}
}

func FromWord[E comparable](word words.Word[E]) Belt[E] {
	ret := make(Belt[E], 0, len(word))
	for _, s := range word {
		ret = append(ret, s.Pair)
	}
	return ret
}

func (b Belt[E]) Word() words.Word[E] {
	ret := make(words.Word[E], 0, len(b))
	for _, pair := range b {
		ret = append(ret, words.FromPair(pair))
	}
	return ret
}
