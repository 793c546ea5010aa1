package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/wreath/cmds"
	"github.com/reusee/wreath/modes"
)

var tapFlag = cmds.Switch("-tap")

func init() {
	cmds.Describe("-tap", "open a starlark REPL after every step")
}

func main() {
	cmds.Execute(os.Args[1:])

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		run Run,
	) {
		if err := run(context.Background(), os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	})
}
