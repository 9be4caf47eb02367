package maybe

// ToList returns a one-element slice for Just(x) and an empty slice for
// Nothing.
func ToList[T any](m Maybe[T]) []T {
	if !m.just {
		return []T{}
	}
	return []T{m.value}
}

// FromList returns Just of the first element of l, or Nothing for an empty
// slice. Elements past the head are ignored.
func FromList[T any](l []T) Maybe[T] {
	if len(l) == 0 {
		return Nothing[T]()
	}
	return Just(l[0])
}

// CatMaybes returns the payloads of every Just element of l in order,
// dropping every Nothing.
func CatMaybes[T any](l []Maybe[T]) []T {
	out := make([]T, 0, len(l))
	for _, m := range l {
		if m.just {
			out = append(out, m.value)
		}
	}
	return out
}

// MapMaybes applies f to every element of l in order and keeps the
// payloads of the Just results, preserving their order. f is evaluated
// exactly once per element.
func MapMaybes[A, B any](f func(A) Maybe[B], l []A) []B {
	out := make([]B, 0, len(l))
	for _, x := range l {
		if m := f(x); m.just {
			out = append(out, m.value)
		}
	}
	return out
}
