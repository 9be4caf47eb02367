package maybe

import "fmt"

// Maybe is an immutable optional value: Just(x) or Nothing. The zero value
// is Nothing.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just wraps x in the success variant.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing returns the empty variant.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Fail returns Nothing unconditionally. Maybe has no informative failure
// payload, so msg is ignored.
func Fail[T any](_ any) Maybe[T] {
	return Nothing[T]()
}

// IsJust reports whether m holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.just
}

// IsNothing reports whether m is empty.
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// Value returns the payload and whether it is present.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.just
}

func (m Maybe[T]) String() string {
	if !m.just {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

// extractJust is the internal hook behind monad.Extractor: it erases T so
// the dynamic instance can operate on a Maybe of any payload type.
func (m Maybe[T]) extractJust() (any, bool) {
	return m.value, m.just
}

// Bind applies f to the payload of m, or propagates Nothing without
// invoking f.
func Bind[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if !m.just {
		return Nothing[B]()
	}
	return f(m.value)
}

// Map transforms the payload of m with a pure function, or propagates
// Nothing without invoking f.
func Map[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if !m.just {
		return Nothing[B]()
	}
	return Just(f(m.value))
}

// FromJust returns the payload of m. Calling it on Nothing is a contract
// violation by the caller and panics; use FromMaybe or Value when absence
// is a legal state.
func FromJust[T any](m Maybe[T]) T {
	if !m.just {
		panic("maybe: FromJust called on Nothing")
	}
	return m.value
}

// FromMaybe returns the payload of m, or def when m is Nothing.
func FromMaybe[T any](def T, m Maybe[T]) T {
	if !m.just {
		return def
	}
	return m.value
}

// Fold applies f to the payload of m, or to def when m is Nothing. Note
// that f runs in both branches; the default is fed through f, not returned
// as-is.
func Fold[A, B any](def A, f func(A) B, m Maybe[A]) B {
	if !m.just {
		return f(def)
	}
	return f(m.value)
}
