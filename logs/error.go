package logs

import (
	"context"
	"errors"
	"fmt"
)

func WrapStep(ctx context.Context, err error) error {
	step, ok := StepFrom(ctx)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("step: %s", step))
}
