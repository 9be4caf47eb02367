package monad

// Map transforms the payload of m with the pure function f, staying inside
// the instance. Equivalent to Bind(m, func(x) Return(f(x))).
func Map(in Instance, m any, f func(any) any) any {
	return in.Bind(m, func(x any) any {
		return in.Return(f(x))
	})
}

// Then sequences m before n, discarding m's payload. The failure shape of
// m still short-circuits past n.
func Then(in Instance, m, n any) any {
	return in.Bind(m, func(any) any {
		return n
	})
}

// Join flattens a monadic value of monadic values by one level.
func Join(in Instance, mm any) any {
	return in.Bind(mm, func(m any) any {
		return m
	})
}

// CatValues returns the ordered payloads of every element of l that is in
// the success shape, dropping failure-shaped elements.
func CatValues(ex Extractor, l []any) []any {
	out := make([]any, 0, len(l))
	for _, m := range l {
		if v, ok := ex.Extract(m); ok {
			out = append(out, v)
		}
	}
	return out
}

// FilterMap applies f to every element of l in order and keeps the
// payloads of the monadic results that are in the success shape. f is
// evaluated exactly once per element.
func FilterMap(ex Extractor, f func(any) any, l []any) []any {
	out := make([]any, 0, len(l))
	for _, x := range l {
		if v, ok := ex.Extract(f(x)); ok {
			out = append(out, v)
		}
	}
	return out
}
