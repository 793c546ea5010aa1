package words

import (
	"slices"
	"strings"
)

type Word[E comparable] []Symbol[E]

func (w Word[E]) Clone() Word[E] {
	return slices.Clone(w)
}

func (w Word[E]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, s := range w {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(s.String())
	}
	b.WriteString("]")
	return b.String()
}

// ReplacePrefix returns a copy of word with its maximal leading run of a replaced by b.
func ReplacePrefix[E comparable](word Word[E], a, b Symbol[E]) Word[E] {
	ret := word.Clone()
	for i := range ret {
		if ret[i] != a {
			break
		}
		ret[i] = b
	}
	return ret
}

// ReplaceSuffix returns a copy of word with its maximal trailing run of a replaced by b.
func ReplaceSuffix[E comparable](word Word[E], a, b Symbol[E]) Word[E] {
	ret := word.Clone()
	for i := len(ret) - 1; i >= 0; i-- {
		if ret[i] != a {
			break
		}
		ret[i] = b
	}
	return ret
}
