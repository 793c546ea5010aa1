package figures

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/reusee/wreath/logs"
	"github.com/reusee/wreath/words"
)

func intBits(p words.Pair[int]) []uint8 {
	return []uint8{uint8(p.Top), uint8(p.Bottom)}
}

func TestLine(t *testing.T) {
	word := words.Word[int]{
		words.RightMarker[int](),
		words.PairOf(1, 0),
		words.LeftMarker[int](),
	}
	buf := new(strings.Builder)
	if err := Line(buf, word, intBits, 1, 1, 0); err != nil {
		t.Fatal(err)
	}
	expected := `\node () at (0.5, -0.5) {\footnotesize $>$};
\fill[red] (1, 0) rectangle (2, -0.5);
\node () at (2.5, -0.5) {\footnotesize $<$};
\draw[black,thick] (1, -0.5) -- (2, -0.5);
\draw[thick, xstep=1, ystep=1, shift={(0,0)}] (0, 0) grid (3, -1);
`
	if buf.String() != expected {
		t.Fatalf("got %s", buf.String())
	}
}

func TestNum(t *testing.T) {
	for _, c := range []struct {
		v        float64
		expected string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{0.5, "0.5"},
		{-0.75, "-0.75"},
		{3, "3"},
	} {
		if got := num(c.v); got != c.expected {
			t.Fatalf("%v: got %s", c.v, got)
		}
	}
}

func TestSpacetime(t *testing.T) {
	buf := new(strings.Builder)
	s := &Spacetime[int]{
		Layout: DefaultLayout,
		Bits:   intBits,
		W:      buf,
	}
	word := words.Word[int]{
		words.PairOf(0, 0),
		words.RightMarker[int](),
	}
	if err := s.Start(word); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "stealth") {
		t.Fatal("first row should have no arrow")
	}
	if err := s.Observe(context.Background(), logs.Step{Index: 0, Code: 'R'}, word); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `\node () at (-1, -1.7) {R};`) {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, `shift={(0,-1.7)}`) {
		t.Fatalf("got %s", out)
	}
	if strings.Count(out, "grid") != 2 {
		t.Fatalf("got %s", out)
	}
}
