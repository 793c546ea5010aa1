package figures

import (
	"context"
	"io"

	"github.com/reusee/wreath/logs"
	"github.com/reusee/wreath/words"
)

type Layout struct {
	Width  float64
	Height float64
	// Pad is the vertical gap between rows
	Pad float64
}

var DefaultLayout = Layout{
	Width:  1,
	Height: 1.5,
	Pad:    0.2,
}

// Spacetime stacks one row per word, each later row annotated with the code that
// produced it.
type Spacetime[E comparable] struct {
	Layout Layout
	Bits   Bits[E]
	W      io.Writer
	rows   int
}

func (s *Spacetime[E]) at() float64 {
	return (s.Layout.Height + s.Layout.Pad) * float64(s.rows)
}

// Start writes the first row.
func (s *Spacetime[E]) Start(word words.Word[E]) error {
	if err := Line(s.W, word, s.Bits, s.Layout.Width, s.Layout.Height, s.at()); err != nil {
		return err
	}
	s.rows++
	return nil
}

// Observe writes the row for a step. It matches the program observer signature.
func (s *Spacetime[E]) Observe(ctx context.Context, step logs.Step, word words.Word[E]) error {
	at := s.at()
	if err := Line(s.W, word, s.Bits, s.Layout.Width, s.Layout.Height, at); err != nil {
		return err
	}
	if err := Arrow(s.W, s.Layout.Height, at); err != nil {
		return err
	}
	if err := Label(s.W, string(step.Code), at); err != nil {
		return err
	}
	s.rows++
	return nil
}
