// Package figures renders words as TikZ pictures.
package figures

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/reusee/wreath/words"
)

// Bits flattens a pair into track bits, top tracks first.
type Bits[E comparable] func(words.Pair[E]) []uint8

var colors = []string{"red", "green", "blue"}

func num(v float64) string {
	if v == 0 {
		// -0 to 0; FormatFloat prints -0 as "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Line writes one configuration row whose top edge is at -at. Markers become nodes,
// set bits become filled squares, one horizontal band per track.
func Line[E comparable](w io.Writer, word words.Word[E], bits Bits[E], width, height, at float64) error {
	var b strings.Builder

	for i, s := range word {
		x := (float64(i) + 0.5) * width
		switch s.Marker {
		case words.Left:
			fmt.Fprintf(&b, "\\node () at (%s, %s) {\\footnotesize $<$};\n", num(x), num(-at-height/2))
			continue
		case words.Right:
			fmt.Fprintf(&b, "\\node () at (%s, %s) {\\footnotesize $>$};\n", num(x), num(-at-height/2))
			continue
		}
		tracks := bits(s.Pair)
		band := height / float64(len(tracks))
		for j, bit := range tracks {
			if bit != 1 {
				continue
			}
			h := band * float64(j+1)
			fmt.Fprintf(&b, "\\fill[%s] (%s, %s) rectangle (%s, %s);\n",
				colors[j%len(colors)],
				num(float64(i)*width), num(-at-h+band),
				num(float64(i+1)*width), num(-at-h),
			)
		}
	}

	for i, s := range word {
		if s.IsMarker() {
			continue
		}
		tracks := len(bits(s.Pair))
		band := height / float64(tracks)
		for j := range tracks - 1 {
			h := band * float64(j+1)
			style := "black"
			if j == tracks/2-1 {
				style = "black,thick"
			}
			fmt.Fprintf(&b, "\\draw[%s] (%s, %s) -- (%s, %s);\n",
				style,
				num(float64(i)*width), num(-at-h),
				num(float64(i+1)*width), num(-at-h),
			)
		}
	}

	fmt.Fprintf(&b, "\\draw[thick, xstep=%s, ystep=%s, shift={(0,%s)}] (0, 0) grid (%s, %s);\n",
		num(width), num(height), num(-at),
		num(float64(len(word))*width), num(-height),
	)

	_, err := io.WriteString(w, b.String())
	return err
}

// Arrow writes a bent arrow left of the row at -at, pointing down into it.
func Arrow(w io.Writer, height, at float64) error {
	_, err := fmt.Fprintf(w, "\\draw (%s,%s) edge[-stealth, bend right=45] (%s,%s);\n",
		num(-0.25), num(-(at - height/2.1)),
		num(-0.25), num(-(at + height/2.1)),
	)
	return err
}

func Label(w io.Writer, text string, at float64) error {
	_, err := fmt.Fprintf(w, "\\node () at (%s, %s) {%s};\n", num(-1), num(-at), text)
	return err
}
