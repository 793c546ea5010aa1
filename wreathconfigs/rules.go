package wreathconfigs

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/reusee/wreath/configs"
)

var ErrBadCode = errors.New("operation code must be a single character")

// ScriptedRules maps operation codes to starlark rule sources.
type ScriptedRules map[rune]string

func (Module) ScriptedRules(
	loader configs.Loader,
) ScriptedRules {
	ret := make(ScriptedRules)
	for rules := range configs.All[map[string]string](loader, "rules") {
		for name, source := range rules {
			code, size := utf8.DecodeRuneInString(name)
			if code == utf8.RuneError || size != len(name) {
				panic(fmt.Errorf("%w: %q", ErrBadCode, name))
			}
			if _, ok := ret[code]; ok {
				// earlier sources take precedence
				continue
			}
			ret[code] = source
		}
	}
	return ret
}
