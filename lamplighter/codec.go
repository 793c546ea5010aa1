package lamplighter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/wreath/words"
)

var ErrBadSymbol = errors.New("bad symbol")

// ParseCell parses three binary digits, like "101".
func ParseCell(str string) (ret Cell, err error) {
	if len(str) != len(ret) {
		return ret, fmt.Errorf("%w: %q", ErrBadSymbol, str)
	}
	for i := range ret {
		switch str[i] {
		case '0':
		case '1':
			ret[i] = 1
		default:
			return ret, fmt.Errorf("%w: %q", ErrBadSymbol, str)
		}
	}
	return ret, nil
}

// ParseSymbol parses ">", "<" or a pair written as "top/bottom".
func ParseSymbol(str string) (words.Symbol[Cell], error) {
	switch str {
	case ">":
		return words.RightMarker[Cell](), nil
	case "<":
		return words.LeftMarker[Cell](), nil
	}
	top, bottom, ok := strings.Cut(str, "/")
	if !ok {
		return words.Symbol[Cell]{}, fmt.Errorf("%w: %q", ErrBadSymbol, str)
	}
	a, err := ParseCell(top)
	if err != nil {
		return words.Symbol[Cell]{}, err
	}
	b, err := ParseCell(bottom)
	if err != nil {
		return words.Symbol[Cell]{}, err
	}
	return words.PairOf(a, b), nil
}

// ParseWord parses whitespace separated symbols.
func ParseWord(str string) (words.Word[Cell], error) {
	var ret words.Word[Cell]
	for i, field := range strings.Fields(str) {
		s, err := ParseSymbol(field)
		if err != nil {
			return nil, fmt.Errorf("symbol %d: %w", i, err)
		}
		ret = append(ret, s)
	}
	return ret, nil
}

func FormatSymbol(s words.Symbol[Cell]) string {
	if s.IsMarker() {
		return s.Marker.String()
	}
	return s.Pair.Top.String() + "/" + s.Pair.Bottom.String()
}

func FormatWord(word words.Word[Cell]) string {
	fields := make([]string, 0, len(word))
	for _, s := range word {
		fields = append(fields, FormatSymbol(s))
	}
	return strings.Join(fields, " ")
}
