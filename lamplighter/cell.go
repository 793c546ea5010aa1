// Package lamplighter embeds Z wr (Z2 wr Z) into conveyor-belt words.
//
// A cell has three binary tracks: the head position of the lamplighter, the lamp
// states, and a marker tape that is carried along unchanged.
package lamplighter

import (
	"fmt"

	"github.com/reusee/wreath/words"
)

type Cell [3]uint8

const (
	Head = iota
	Lamp
	Tape
)

var Zero = Cell{}

func Alphabet() words.Alphabet[Cell] {
	var elements []Cell
	for a := range uint8(2) {
		for b := range uint8(2) {
			for c := range uint8(2) {
				elements = append(elements, Cell{a, b, c})
			}
		}
	}
	alphabet, err := words.NewAlphabet(Zero, elements...)
	if err != nil {
		panic(err)
	}
	return alphabet
}

func (c Cell) String() string {
	return fmt.Sprintf("%d%d%d", c[0], c[1], c[2])
}

// Bits lists the tracks of a pair, top cell first.
func Bits(p words.Pair[Cell]) []uint8 {
	return []uint8{
		p.Top[0], p.Top[1], p.Top[2],
		p.Bottom[0], p.Bottom[1], p.Bottom[2],
	}
}
