package lamplighter

import (
	"github.com/reusee/wreath/belts"
	"github.com/reusee/wreath/rules"
	"go.starlark.net/starlark"
)

func decodeCell(v starlark.Value) (ret Cell, err error) {
	digits, err := rules.Digits(v, len(ret), 2)
	if err != nil {
		return ret, err
	}
	for i, d := range digits {
		ret[i] = uint8(d)
	}
	return ret, nil
}

// ScriptRule compiles a starlark rule over cells. at(offset) yields cells as lists
// of three bits and rule must return three bits.
func ScriptRule(name, source string) (belts.Rule[Cell], error) {
	return rules.Starlark[Cell]{
		Name:   name,
		Source: source,
		Decode: decodeCell,
	}.Compile()
}
