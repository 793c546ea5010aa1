package cmds

import (
	"fmt"
	"reflect"
)

// Var defines a command that sets the returned value from its argument, and a name+"."
// command that resets it.
func Var[T any](name string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Desc(fmt.Sprintf("<%v>", reflect.TypeFor[T]())))

	Define(name+".", Func(func() {
		var zero T
		value = zero
	}).Desc("reset "+name))

	return &value
}

// Switch defines name to turn the returned value on and "!"+name to turn it off.
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}))

	Define("!"+name, Func(func() {
		value = false
	}).Desc("undo "+name))

	return &value
}

func Describe(name string, desc string) {
	GlobalExecutor.Describe(name, desc)
}
