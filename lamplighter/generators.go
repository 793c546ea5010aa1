package lamplighter

import (
	"github.com/reusee/wreath/belts"
	"github.com/reusee/wreath/rewrites"
)

// base moves the single head pattern by shift, for the Z factor of the wreath product.
func base(shift int, checks rewrites.Checks) rewrites.Segment[Cell] {
	return rewrites.Segment[Cell]{
		MinLength:   1,
		Patterns:    [][]Cell{{{1, 0, 1}}},
		Shifts:      []int{shift},
		Permutation: []int{0},
		Checks:      checks,
	}
}

func Up(checks rewrites.Checks) rewrites.Segment[Cell] {
	return base(1, checks)
}

func Down(checks rewrites.Checks) rewrites.Segment[Cell] {
	return base(-1, checks)
}

// Generators maps operation codes to generators:
// R and L shift the lamplighter, F flips the lamp, U and D move along the base.
func Generators(checks rewrites.Checks) map[rune]rewrites.Generator[Cell] {
	return map[rune]rewrites.Generator[Cell]{
		'R': rewrites.CA[Cell]{Rule: belts.Rule[Cell](ShiftRight)},
		'L': rewrites.CA[Cell]{Rule: belts.Rule[Cell](ShiftLeft)},
		'F': rewrites.CA[Cell]{Rule: belts.Rule[Cell](Flip)},
		'U': Up(checks),
		'D': Down(checks),
	}
}

const (
	ExampleWord  = "000/000 > > 101/000 < < > > > > 101/000 010/000 < 000/000 101/000 > > 101/000 010/100 000/000 < 000/000"
	ExampleCodes = "RFLDDDDRFULULFLFLF"
)
