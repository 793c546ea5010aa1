package modes

import "github.com/reusee/wreath/rewrites"

type Mode string

const (
	ModeProduction  Mode = "production"
	ModeDevelopment Mode = "development"
)

// Checks returns the pattern locating checks for the mode: development runs assert
// that no belt holds a pattern ambiguously.
func (m Mode) Checks() rewrites.Checks {
	return rewrites.Checks{
		Unique: m == ModeDevelopment,
	}
}
