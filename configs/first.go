package configs

import (
	"errors"
	"fmt"
)

// First decodes the value at path from the first source defining it. Missing values
// yield the zero T, other errors panic.
func First[T any](loader Loader, path string) (ret T) {
	if err := loader.AssignFirst(path, &ret); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return
		}
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return
}
