package rewrites

import (
	"fmt"

	"github.com/reusee/wreath/belts"
	"github.com/reusee/wreath/words"
)

// Generator rewrites a whole word into a new word of the same length.
type Generator[E comparable] interface {
	Apply(alphabet words.Alphabet[E], word words.Word[E]) (words.Word[E], error)
}

// CA applies a zero-preserving cellular automaton rule to every good run.
type CA[E comparable] struct {
	Rule belts.Rule[E]
}

var _ Generator[int] = CA[int]{}

func (c CA[E]) Apply(alphabet words.Alphabet[E], word words.Word[E]) (words.Word[E], error) {
	return ApplyCA(c.Rule, alphabet, word)
}

// ApplyCA runs rule on the conveyor belt of each good run that has content. Word must
// start and end at bad positions.
func ApplyCA[E comparable](
	rule belts.Rule[E],
	alphabet words.Alphabet[E],
	word words.Word[E],
) (words.Word[E], error) {
	return rewrite(alphabet, word, func(c *words.Classification[E], r region[E]) (words.Word[E], error) {
		if r.affixes.Empty(r.run) {
			return nil, nil
		}
		result, err := belts.Step(rule, r.simulate(c))
		if err != nil {
			return nil, fmt.Errorf("run [%d,%d): %w", r.run.Start, r.run.End, err)
		}
		return r.restore(c, result), nil
	})
}
