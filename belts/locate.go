package belts

import (
	"errors"
	"fmt"
	"iter"
)

var (
	ErrNoMatch   = errors.New("no pattern on belt")
	ErrAmbiguous = errors.New("pattern occurs more than once on belt")
)

type Match struct {
	// index into the candidate patterns
	Pattern  int
	Position int
}

func (b Belt[E]) holds(pattern []E, pos int, zero E) bool {
	for i := range b.Span() {
		if i < len(pattern) {
			if pattern[i] != b.Read(pos+i) {
				return false
			}
		} else if b.Read(pos+i) != zero {
			return false
		}
	}
	return true
}

func (b Belt[E]) matches(patterns [][]E, zero E) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for idx, pattern := range patterns {
			for pos := range b.Span() {
				if b.holds(pattern, pos, zero) {
					if !yield(Match{
						Pattern:  idx,
						Position: pos,
					}) {
						return
					}
				}
			}
		}
	}
}

// Locate finds a pattern that the belt holds exactly, zero everywhere else. Only the
// first Span() elements of a pattern are compared.
// Patterns are tried in order, each at every rotation; the first hit is returned.
// The search is brute force and cubic in the belt length.
func Locate[E comparable](belt Belt[E], patterns [][]E, zero E) (Match, bool) {
	for m := range belt.matches(patterns, zero) {
		return m, true
	}
	return Match{}, false
}

// LocateUnique is Locate for callers that require exactly one occurrence.
func LocateUnique[E comparable](belt Belt[E], patterns [][]E, zero E) (ret Match, err error) {
	n := 0
	for m := range belt.matches(patterns, zero) {
		if n == 0 {
			ret = m
		}
		n++
	}
	switch n {
	case 0:
		return ret, ErrNoMatch
	case 1:
		return ret, nil
	}
	return ret, fmt.Errorf("%w: %d occurrences", ErrAmbiguous, n)
}
