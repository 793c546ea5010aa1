package procs

// Procs runs its elements in order. A continuation returned by an element runs
// before the next element. Procs values are never modified, so one sequence may be
// run several times.
type Procs[C any] []Proc[C]

var _ Proc[any] = Procs[any]{}

func (p Procs[C]) Run(ctx C) (Proc[C], error) {
	if len(p) == 0 {
		return nil, nil
	}
	cont, err := p[0].Run(ctx)
	if err != nil {
		return nil, err
	}
	rest := p[1:]
	if cont != nil {
		rest = append(Procs[C]{cont}, rest...)
	}
	if len(rest) == 0 {
		return nil, nil
	}
	return rest, nil
}
