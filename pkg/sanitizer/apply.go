package sanitizer

// Apply runs value through transforms left to right.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		if transform == nil {
			continue
		}
		value = transform(value)
	}
	return value
}

// Compose stores a transformation chain for reuse.
// Preferred over repeated Apply calls when the same chain runs on every keystroke.
func Compose[T any](transforms ...func(T) T) func(T) T {
	chain := make([]func(T) T, 0, len(transforms))
	for _, transform := range transforms {
		if transform != nil {
			chain = append(chain, transform)
		}
	}
	return func(value T) T {
		return Apply(value, chain...)
	}
}
