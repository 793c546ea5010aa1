package logs

import (
	"context"
	"fmt"
)

// Step identifies one generator application of a running program.
type Step struct {
	Index int
	Code  rune
}

func (s Step) String() string {
	return fmt.Sprintf("%d:%c", s.Index, s.Code)
}

type stepKey struct{}

var StepKey stepKey

func WithStep(ctx context.Context, step Step) context.Context {
	return context.WithValue(ctx, StepKey, step)
}

func StepFrom(ctx context.Context) (Step, bool) {
	step, ok := ctx.Value(StepKey).(Step)
	return step, ok
}
