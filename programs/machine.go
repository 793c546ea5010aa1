package programs

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/reusee/wreath/logs"
	"github.com/reusee/wreath/procs"
	"github.com/reusee/wreath/rewrites"
	"github.com/reusee/wreath/words"
)

var ErrUnknownCode = errors.New("unknown operation code")

// Program is a starting word and a sequence of generator codes to apply to it.
type Program[E comparable] struct {
	Alphabet   words.Alphabet[E]
	Word       words.Word[E]
	Codes      string
	Generators map[rune]rewrites.Generator[E]
}

func (p Program[E]) Validate() error {
	for i, code := range []rune(p.Codes) {
		if _, ok := p.Generators[code]; !ok {
			return fmt.Errorf("%w: %q at %d", ErrUnknownCode, code, i)
		}
	}
	return nil
}

// Observer is called after every step with the new word.
type Observer[E comparable] func(ctx context.Context, step logs.Step, word words.Word[E]) error

type Machine[E comparable] struct {
	// ID tags every log record of a run, generated when empty
	ID      string
	Program Program[E]
	Logger  logs.Logger
	Observe Observer[E]
	// Format renders words in logs, defaults to Word.String
	Format func(words.Word[E]) string
}

func (m *Machine[E]) format(word words.Word[E]) string {
	if m.Format != nil {
		return m.Format(word)
	}
	return word.String()
}

// Run applies every code in order and returns all words, the starting word first.
func (m *Machine[E]) Run(ctx context.Context) ([]words.Word[E], error) {
	if err := m.Program.Validate(); err != nil {
		return nil, err
	}

	if m.ID == "" {
		m.ID = uuid.NewString()[:12]
	}
	logger := m.Logger.With("run", m.ID)

	history := []words.Word[E]{m.Program.Word}
	var steps procs.Procs[context.Context]
	for i, code := range []rune(m.Program.Codes) {
		step := logs.Step{
			Index: i,
			Code:  code,
		}
		steps = append(steps, procs.Func[context.Context](func(ctx context.Context) (procs.Proc[context.Context], error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			ctx = logs.WithStep(ctx, step)

			word := history[len(history)-1]
			next, err := m.Program.Generators[code].Apply(m.Program.Alphabet, word)
			if err != nil {
				logger.ErrorContext(ctx, "step failed", "error", err)
				return nil, logs.WrapStep(ctx, err)
			}
			if len(next) != len(word) {
				panic(fmt.Errorf("step %s changed word length from %d to %d", step, len(word), len(next)))
			}
			history = append(history, next)
			logger.DebugContext(ctx, "applied", "word", m.format(next))

			if m.Observe != nil {
				if err := m.Observe(ctx, step, next); err != nil {
					return nil, logs.WrapStep(ctx, err)
				}
			}
			return nil, nil
		}))
	}

	logger.InfoContext(ctx, "run program",
		"codes", m.Program.Codes,
		"length", len(m.Program.Word),
	)
	if err := procs.Loop[context.Context](ctx, steps); err != nil {
		return history, err
	}
	logger.InfoContext(ctx, "program done",
		"steps", len(history)-1,
	)
	return history, nil
}
