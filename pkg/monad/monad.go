package monad

// Instance is the dynamic monad contract. A value implementing Instance
// stands for one concrete monad (optional value, error result, list, ...)
// and sequences computations over that monad's opaque values.
//
// Implementations must satisfy the monad laws, with equality taken over
// the instance's own value representation:
//
//	Bind(Return(x), f) == f(x)                                // left identity
//	Bind(m, Return) == m                                      // right identity
//	Bind(Bind(m, f), g) == Bind(m, func(x) Bind(f(x), g))     // associativity
//
// Bind must short-circuit: when m is in the instance's failure shape, f is
// never invoked and the failure shape propagates unchanged.
type Instance interface {
	// Bind applies f to the payload of m if m is in the success shape,
	// otherwise propagates m's failure shape without invoking f.
	Bind(m any, f func(any) any) any
	// Return wraps x in the instance's success shape.
	Return(x any) any
}

// FailInstance extends Instance with a canonical failure constructor.
// Instances with no informative failure payload ignore msg.
type FailInstance interface {
	Instance
	// Fail produces the instance's canonical failure shape.
	Fail(msg any) any
}

// Extractor is the try-extract predicate: it reports whether a monadic
// value is in the success shape and, if so, yields its payload. Instances
// whose payloads are observable implement it alongside Instance; the
// generic filtering combinators and destructuring patterns rely on it.
type Extractor interface {
	// Extract returns the payload of m and true when m is in the success
	// shape, or the zero value and false otherwise.
	Extract(m any) (any, bool)
}
