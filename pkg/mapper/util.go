package mapper

func orZero[T any](v *T) *T {
	if v == nil {
		return new(T)
	}
	return v
}

// mapList applies fn to every element. The result is never nil.
func mapList[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, item := range in {
		out = append(out, fn(item))
	}
	return out
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
