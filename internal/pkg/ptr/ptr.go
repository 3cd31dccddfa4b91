package ptr

// Of returns a pointer to a copy of v.
func Of[T any](v T) *T {
	return &v
}

// StringOrNil returns nil for the empty string, which keeps optional JSON
// fields omitted instead of serialised as "".
func StringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// Coalesce returns *p when p is set, otherwise fallback. Optional request
// fields use it to apply defaults.
func Coalesce[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
