package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/wreath/debugs"
	"github.com/reusee/wreath/figures"
	"github.com/reusee/wreath/lamplighter"
	"github.com/reusee/wreath/logs"
	"github.com/reusee/wreath/programs"
	"github.com/reusee/wreath/rewrites"
	"github.com/reusee/wreath/traces"
	"github.com/reusee/wreath/words"
	"github.com/reusee/wreath/wreathconfigs"
)

// Run executes the configured lamplighter program, printing every word to out and
// writing the spacetime figure to the output file.
type Run func(ctx context.Context, out io.Writer) error

func (Module) Run(
	logger logs.Logger,
	output wreathconfigs.Output,
	tracePath wreathconfigs.Trace,
	startWord wreathconfigs.StartWord,
	codes wreathconfigs.ProgramCodes,
	scripted wreathconfigs.ScriptedRules,
	checks rewrites.Checks,
	layout figures.Layout,
	tap debugs.Tap,
) Run {
	return func(ctx context.Context, out io.Writer) (err error) {
		word, err := lamplighter.ParseWord(string(startWord))
		if err != nil {
			return err
		}

		generators := lamplighter.Generators(checks)
		for code, source := range scripted {
			rule, err := lamplighter.ScriptRule(fmt.Sprintf("rules.%c", code), source)
			if err != nil {
				return err
			}
			if _, ok := generators[code]; ok {
				logger.WarnContext(ctx, "scripted rule replaces builtin",
					"code", string(code),
				)
			}
			generators[code] = rewrites.CA[lamplighter.Cell]{Rule: rule}
		}

		f, err := os.Create(string(output))
		if err != nil {
			return err
		}
		defer func() {
			if e := f.Close(); e != nil && err == nil {
				err = e
			}
		}()
		w := bufio.NewWriter(f)

		spacetime := &figures.Spacetime[lamplighter.Cell]{
			Layout: layout,
			Bits:   lamplighter.Bits,
			W:      w,
		}
		if err := spacetime.Start(word); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, lamplighter.FormatWord(word)); err != nil {
			return err
		}

		machine := &programs.Machine[lamplighter.Cell]{
			Program: programs.Program[lamplighter.Cell]{
				Alphabet:   lamplighter.Alphabet(),
				Word:       word,
				Codes:      string(codes),
				Generators: generators,
			},
			Logger: logger,
			Format: lamplighter.FormatWord,
			Observe: func(ctx context.Context, step logs.Step, word words.Word[lamplighter.Cell]) error {
				if err := spacetime.Observe(ctx, step, word); err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "%c\n%s\n", step.Code, lamplighter.FormatWord(word)); err != nil {
					return err
				}
				if *tapFlag {
					tap(ctx, "step", map[string]any{
						"step": step.Index,
						"code": string(step.Code),
						"word": lamplighter.FormatWord(word),
					})
				}
				return nil
			},
		}
		history, err := machine.Run(ctx)
		if err != nil {
			return err
		}

		if err := w.Flush(); err != nil {
			return err
		}
		logger.InfoContext(ctx, "figure written",
			"path", string(output),
		)

		if tracePath != "" {
			if err := writeTrace(string(tracePath), machine.ID, history, string(codes)); err != nil {
				return err
			}
			logger.InfoContext(ctx, "trace written",
				"path", string(tracePath),
			)
		}
		return nil
	}
}

func writeTrace(path string, run string, history []words.Word[lamplighter.Cell], codes string) (err error) {
	trace, err := traces.FromHistory(run, history, codes, lamplighter.FormatWord)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return trace.Write(f)
}
