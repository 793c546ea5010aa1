package vars

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadBool = errors.New("not a boolean")

func ParseBool(str string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true, nil
	case "false", "f", "no", "n", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrBadBool, str)
}
