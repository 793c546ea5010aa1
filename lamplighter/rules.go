package lamplighter

import "github.com/reusee/wreath/belts"

// ShiftLeft moves the head track one position towards lower belt positions.
func ShiftLeft(at belts.Oracle[Cell]) (Cell, error) {
	a, b := at(0), at(1)
	return Cell{b[Head], a[Lamp], a[Tape]}, nil
}

// ShiftRight moves the head track one position towards higher belt positions.
func ShiftRight(at belts.Oracle[Cell]) (Cell, error) {
	a, b := at(0), at(-1)
	return Cell{b[Head], a[Lamp], a[Tape]}, nil
}

// Flip toggles the lamp under the head.
func Flip(at belts.Oracle[Cell]) (Cell, error) {
	a := at(0)
	return Cell{a[Head], (a[Head] + a[Lamp]) % 2, a[Tape]}, nil
}
