package cmds

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrBadFunc = errors.New("bad command function")

// Command is a function called with the args following its name, or a set of sub
// commands, or both.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Func wraps fn, which must return nothing or a single error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("%w: must be function, got %T", ErrBadFunc, fn))
	}
	switch fnType := fnValue.Type(); {
	case fnType.NumOut() > 1:
		panic(fmt.Errorf("%w: must return 0 or 1 value", ErrBadFunc))
	case fnType.NumOut() == 1 && fnType.Out(0) != errorType:
		panic(fmt.Errorf("%w: must return error", ErrBadFunc))
	}
	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
