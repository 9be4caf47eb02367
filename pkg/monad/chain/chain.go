package chain

import (
	"github.com/ib-77/mdo/pkg/monad"
)

// Chain wraps a monad instance and one of its values to enable fluent
// chaining. Chains are immutable; every operation returns a new Chain.
type Chain struct {
	in monad.Instance
	m  any
}

// Start creates a new chain from a monadic value of in.
func Start(in monad.Instance, m any) Chain {
	return Chain{in: in, m: m}
}

// FromValue creates a new chain from a plain value, wrapped via Return.
func FromValue(in monad.Instance, v any) Chain {
	return Chain{in: in, m: in.Return(v)}
}

// Value returns the underlying monadic value.
func (c Chain) Value() any {
	return c.m
}

// Then binds f, which must return a monadic value of the chain's instance.
func (c Chain) Then(f func(v any) any) Chain {
	return Chain{in: c.in, m: c.in.Bind(c.m, f)}
}

// Map transforms the payload with a pure function.
func (c Chain) Map(f func(v any) any) Chain {
	return Chain{in: c.in, m: monad.Map(c.in, c.m, f)}
}

// Ensure runs a side effect on the payload without changing the result.
// Built from Bind and Return only, so it is lawful for any instance.
func (c Chain) Ensure(f func(v any)) Chain {
	return Chain{in: c.in, m: c.in.Bind(c.m, func(v any) any {
		f(v)
		return c.in.Return(v)
	})}
}

// Or returns c when its value is in the success shape, and alt otherwise.
// The chain's instance must implement monad.Extractor; chains over other
// instances are treated as empty.
func (c Chain) Or(alt Chain) Chain {
	if ex, ok := c.in.(monad.Extractor); ok {
		if _, just := ex.Extract(c.m); just {
			return c
		}
	}
	return alt
}

// Finally collapses the chain: onValue receives the payload when the value
// is in the success shape, onEmpty runs otherwise. The chain's instance
// must implement monad.Extractor; chains over other instances collapse via
// onEmpty.
func (c Chain) Finally(onValue func(v any) any, onEmpty func() any) any {
	if ex, ok := c.in.(monad.Extractor); ok {
		if v, just := ex.Extract(c.m); just {
			return onValue(v)
		}
	}
	return onEmpty()
}
