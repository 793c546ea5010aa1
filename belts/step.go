package belts

import "fmt"

// Oracle answers neighborhood queries relative to one belt position.
type Oracle[E comparable] func(offset int) E

// Rule is a local update rule.
type Rule[E comparable] func(at Oracle[E]) (E, error)

// Step applies rule at every position of belt synchronously: all oracles read belt,
// which is left unchanged, and results are written to a fresh belt.
func Step[E comparable](rule Rule[E], belt Belt[E]) (Belt[E], error) {
	ret := belt.Clone()
	for i := range belt.Span() {
		at := func(offset int) E {
			return belt.Read(i + offset)
		}
		value, err := rule(at)
		if err != nil {
			return nil, fmt.Errorf("belt position %d: %w", i, err)
		}
		ret.Write(i, value)
	}
	return ret, nil
}

func Identity[E comparable](at Oracle[E]) (E, error) {
	return at(0), nil
}
