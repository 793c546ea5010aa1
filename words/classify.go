package words

import (
	"errors"
	"fmt"
)

// ErrUnanchored is raised (as a panic) when the first or last position of a word is good.
var ErrUnanchored = errors.New("word not anchored by bad positions")

// Set is a position set over a word, indexed by position.
type Set []bool

func (s Set) Has(i int) bool {
	return i >= 0 && i < len(s) && s[i]
}

func (s Set) Indices() (ret []int) {
	for i, ok := range s {
		if ok {
			ret = append(ret, i)
		}
	}
	return
}

// Run is a maximal good run, half-open [Start, End).
type Run struct {
	Start int
	End   int
}

func (r Run) Len() int {
	return r.End - r.Start
}

type Classification[E comparable] struct {
	Alphabet Alphabet[E]
	Word     Word[E]
	Bad      Set
	Wall     Set
	Error    Set
	Good     Set
	Runs     []Run

	sigma map[E]bool
}

// InB reports whether s is a pair over the alphabet.
func (c *Classification[E]) InB(s Symbol[E]) bool {
	return !s.IsMarker() && c.sigma[s.Pair.Top] && c.sigma[s.Pair.Bottom]
}

// InC reports whether s is a pair over the alphabet other than (zero, zero).
func (c *Classification[E]) InC(s Symbol[E]) bool {
	return c.InB(s) && s.Pair != c.Alphabet.ZeroPair()
}

// Universe enumerates B, all pairs over the alphabet.
func (c *Classification[E]) Universe() []Pair[E] {
	ret := make([]Pair[E], 0, len(c.Alphabet.Elements)*len(c.Alphabet.Elements))
	for _, s := range c.Alphabet.Elements {
		for _, t := range c.Alphabet.Elements {
			ret = append(ret, Pair[E]{Top: s, Bottom: t})
		}
	}
	return ret
}

// NonZero enumerates C, B without (zero, zero).
func (c *Classification[E]) NonZero() []Pair[E] {
	zero := c.Alphabet.ZeroPair()
	var ret []Pair[E]
	for _, p := range c.Universe() {
		if p != zero {
			ret = append(ret, p)
		}
	}
	return ret
}

// goodAdjacency implements the six good two-letter words >>, >C, BB, C<, <<, ><.
func (c *Classification[E]) goodAdjacency(a, b Symbol[E]) bool {
	switch {
	case a.IsRight() && b.IsRight():
		return true
	case a.IsRight() && c.InC(b):
		return true
	case c.InB(a) && c.InB(b):
		return true
	case c.InC(a) && b.IsLeft():
		return true
	case a.IsLeft() && b.IsLeft():
		return true
	case a.IsRight() && b.IsLeft():
		return true
	}
	return false
}

// Classify computes bad, wall, error and good positions and the maximal good runs of word.
// It panics with ErrUnanchored unless the first and last positions are bad.
func Classify[E comparable](alphabet Alphabet[E], word Word[E]) *Classification[E] {
	n := len(word)
	c := &Classification[E]{
		Alphabet: alphabet,
		Word:     word,
		Bad:      make(Set, n),
		Wall:     make(Set, n),
		Error:    make(Set, n),
		Good:     make(Set, n),
		sigma:    alphabet.set(),
	}

	for i := 0; i+1 < n; i++ {
		if !c.goodAdjacency(word[i], word[i+1]) {
			c.Bad[i] = true
			c.Bad[i+1] = true
		}
	}

	for i := 0; i+1 < n; i++ {
		if !word[i].IsRight() && word[i+1].IsRight() {
			c.Wall[i+1] = true
		}
		if word[i].IsLeft() && !word[i+1].IsLeft() {
			c.Wall[i] = true
		}
	}

	for i := range n {
		c.Error[i] = c.Bad[i] && !c.Wall[i]
		c.Good[i] = !c.Bad[i]
	}

	if !c.Bad.Has(0) || !c.Bad.Has(n-1) {
		panic(fmt.Errorf("%w: length %d, word %v", ErrUnanchored, n, word))
	}

	for i := 0; i < n; {
		if !c.Good[i] {
			i++
			continue
		}
		start := i
		for i < n && c.Good[i] {
			i++
		}
		c.Runs = append(c.Runs, Run{
			Start: start,
			End:   i,
		})
	}

	return c
}

// Affixes describes the marker affixes around the content of a run.
type Affixes struct {
	LeftWall  bool
	RightWall bool
	// leading > count
	Prefix int
	// trailing < count
	Suffix int
}

// Empty reports whether the affixes cover the whole run.
func (a Affixes) Empty(run Run) bool {
	return a.Prefix+a.Suffix == run.Len()
}

// Affixes counts markers inside run only, so Prefix+Suffix never exceeds run.Len().
func (c *Classification[E]) Affixes(run Run) Affixes {
	ret := Affixes{
		LeftWall:  c.Wall.Has(run.Start - 1),
		RightWall: c.Wall.Has(run.End),
	}
	for run.Start+ret.Prefix < run.End && c.Word[run.Start+ret.Prefix].IsRight() {
		ret.Prefix++
	}
	for run.End-1-ret.Suffix >= run.Start+ret.Prefix && c.Word[run.End-1-ret.Suffix].IsLeft() {
		ret.Suffix++
	}
	return ret
}
