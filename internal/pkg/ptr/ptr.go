package ptr

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}

// Coalesce returns the value pointed to by p, or fallback when p is nil.
func Coalesce[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
