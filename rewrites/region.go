package rewrites

import (
	"github.com/reusee/wreath/belts"
	"github.com/reusee/wreath/words"
)

type region[E comparable] struct {
	run     words.Run
	affixes words.Affixes
}

// simulate reinterprets the marker affixes of the run as zero padding, so the
// belt is exactly as long as the run.
func (r region[E]) simulate(c *words.Classification[E]) belts.Belt[E] {
	zero := c.Alphabet.ZeroPair()
	ret := make(belts.Belt[E], 0, r.run.Len())
	for range r.affixes.Prefix {
		ret = append(ret, zero)
	}
	for _, s := range c.Word[r.run.Start+r.affixes.Prefix : r.run.End-r.affixes.Suffix] {
		ret = append(ret, s.Pair)
	}
	for range r.affixes.Suffix {
		ret = append(ret, zero)
	}
	return ret
}

// restore turns zero padding back into markers on the walled sides.
func (r region[E]) restore(c *words.Classification[E], belt belts.Belt[E]) words.Word[E] {
	zero := c.Alphabet.ZeroSymbol()
	ret := belt.Word()
	if r.affixes.LeftWall {
		ret = words.ReplacePrefix(ret, zero, words.RightMarker[E]())
	}
	if r.affixes.RightWall {
		ret = words.ReplaceSuffix(ret, zero, words.LeftMarker[E]())
	}
	return ret
}

// rewrite computes the new content of every run from one classification of word and
// splices the results into a copy of it. fn returns nil for runs left untouched.
func rewrite[E comparable](
	alphabet words.Alphabet[E],
	word words.Word[E],
	fn func(c *words.Classification[E], r region[E]) (words.Word[E], error),
) (words.Word[E], error) {
	c := words.Classify(alphabet, word)

	rewrites := make([]words.Word[E], len(c.Runs))
	for i, run := range c.Runs {
		r := region[E]{
			run:     run,
			affixes: c.Affixes(run),
		}
		result, err := fn(c, r)
		if err != nil {
			return nil, err
		}
		rewrites[i] = result
	}

	ret := word.Clone()
	for i, run := range c.Runs {
		if rewrites[i] == nil {
			continue
		}
		copy(ret[run.Start:run.End], rewrites[i])
	}
	return ret, nil
}
