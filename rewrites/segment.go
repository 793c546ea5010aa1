package rewrites

import (
	"errors"
	"fmt"

	"github.com/reusee/wreath/belts"
	"github.com/reusee/wreath/words"
)

var ErrInvalidTable = errors.New("invalid segment table")

// Segment moves a recognized pattern along the belt of every closed run and swaps it
// for another pattern.
type Segment[E comparable] struct {
	// runs shorter than this are skipped
	MinLength int
	Patterns  [][]E
	// Shifts[i] is added to the position of Patterns[i]
	Shifts []int
	// Patterns[i] is replaced by Patterns[Permutation[i]]
	Permutation []int
	Checks
}

// Checks tighten pattern locating. By default the first occurrence wins and runs
// without a pattern are left unchanged.
type Checks struct {
	// fail on runs holding a pattern more than once
	Unique bool
	// fail on closed runs with content that hold no pattern; implies Unique
	Strict bool
}

var _ Generator[int] = Segment[int]{}

func (s Segment[E]) Validate() error {
	if len(s.Shifts) != len(s.Patterns) {
		return fmt.Errorf("%w: %d shifts for %d patterns", ErrInvalidTable, len(s.Shifts), len(s.Patterns))
	}
	if len(s.Permutation) != len(s.Patterns) {
		return fmt.Errorf("%w: permutation of %d for %d patterns", ErrInvalidTable, len(s.Permutation), len(s.Patterns))
	}
	for i, j := range s.Permutation {
		if j < 0 || j >= len(s.Patterns) {
			return fmt.Errorf("%w: permutation maps %d to %d", ErrInvalidTable, i, j)
		}
	}
	return nil
}

func (s Segment[E]) locate(belt belts.Belt[E], zero E) (belts.Match, bool, error) {
	if !s.Unique && !s.Strict {
		m, ok := belts.Locate(belt, s.Patterns, zero)
		return m, ok, nil
	}
	m, err := belts.LocateUnique(belt, s.Patterns, zero)
	if errors.Is(err, belts.ErrNoMatch) && !s.Strict {
		return m, false, nil
	} else if err != nil {
		return m, false, err
	}
	return m, true, nil
}

func (s Segment[E]) Apply(alphabet words.Alphabet[E], word words.Word[E]) (words.Word[E], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return rewrite(alphabet, word, func(c *words.Classification[E], r region[E]) (words.Word[E], error) {
		if r.run.Len() < s.MinLength {
			return nil, nil
		}
		if !r.affixes.LeftWall || !r.affixes.RightWall {
			return nil, nil
		}
		if r.affixes.Empty(r.run) {
			return nil, nil
		}

		belt := r.simulate(c)
		m, ok, err := s.locate(belt, alphabet.Zero)
		if err != nil {
			return nil, fmt.Errorf("run [%d,%d): %w", r.run.Start, r.run.End, err)
		}
		if !ok {
			return nil, nil
		}

		pos := m.Position + s.Shifts[m.Pattern]
		belt.Lay(pos, s.Patterns[s.Permutation[m.Pattern]], alphabet.Zero)
		return r.restore(c, belt), nil
	})
}
