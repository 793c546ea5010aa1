package rules

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"
)

var ErrBadValue = errors.New("bad rule value")

// Digits decodes a list or tuple of exactly n integers in [0, base).
func Digits(v starlark.Value, n int, base int) ([]int, error) {
	iterable, ok := v.(starlark.Indexable)
	if !ok {
		return nil, fmt.Errorf("%w: want list or tuple, got %s", ErrBadValue, v.Type())
	}
	if iterable.Len() != n {
		return nil, fmt.Errorf("%w: want %d items, got %d", ErrBadValue, n, iterable.Len())
	}
	ret := make([]int, 0, n)
	for i := range n {
		digit, err := starlark.AsInt32(iterable.Index(i))
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrBadValue, i, err)
		}
		if digit < 0 || digit >= base {
			return nil, fmt.Errorf("%w: item %d out of range: %d", ErrBadValue, i, digit)
		}
		ret = append(ret, digit)
	}
	return ret, nil
}
