package rules

import (
	"errors"
	"fmt"

	"github.com/reusee/wreath/belts"
	"github.com/reusee/wreath/debugs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var ErrNoRule = errors.New("script defines no rule function")

// MaxSteps bounds the starlark computation steps of compiling a script and of every
// rule call.
var MaxSteps uint64 = 1 << 24

// Starlark is a local update rule written in starlark. The script must define
// rule(at), where at(offset) returns the element at a relative belt position.
type Starlark[E comparable] struct {
	Name   string
	Source string
	// Decode converts the return value of rule to an element
	Decode func(starlark.Value) (E, error)
	// Encode converts elements passed to the script, defaults to debugs.ToStarlarkValue
	Encode func(E) starlark.Value
}

var predeclared = starlark.StringDict{
	"xor": debugs.ToStarlarkValue(func(a, b int) int {
		return a ^ b
	}),
}

func (s Starlark[E]) Compile() (belts.Rule[E], error) {
	encode := s.Encode
	if encode == nil {
		encode = func(e E) starlark.Value {
			return debugs.ToStarlarkValue(e)
		}
	}

	thread := &starlark.Thread{
		Name: s.Name,
	}
	thread.SetMaxExecutionSteps(MaxSteps)
	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
	}, thread, s.Name, s.Source, predeclared)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", s.Name, err)
	}
	globals.Freeze()

	fn, ok := globals["rule"].(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoRule, s.Name)
	}

	return func(at belts.Oracle[E]) (ret E, err error) {
		thread.Steps = 0
		oracle := starlark.NewBuiltin("at", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var offset int
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &offset); err != nil {
				return nil, err
			}
			return encode(at(offset)), nil
		})
		value, err := starlark.Call(thread, fn, starlark.Tuple{oracle}, nil)
		if err != nil {
			return ret, fmt.Errorf("%s: %w", s.Name, err)
		}
		ret, err = s.Decode(value)
		if err != nil {
			return ret, fmt.Errorf("%s: decode %v: %w", s.Name, value, err)
		}
		return ret, nil
	}, nil
}
