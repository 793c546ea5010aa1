package vars

// FirstNonZero picks the value of highest precedence, earlier values first.
func FirstNonZero[T comparable](values ...T) T {
	for _, value := range values {
		if value != *new(T) {
			return value
		}
	}
	return *new(T)
}
