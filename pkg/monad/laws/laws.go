package laws

import (
	"github.com/ib-77/mdo/pkg/monad"
)

// Eq compares two monadic values of the same instance.
type Eq func(a, b any) bool

// LeftIdentity reports whether Bind(Return(x), f) == f(x).
func LeftIdentity(in monad.Instance, eq Eq, x any, f func(any) any) bool {
	return eq(in.Bind(in.Return(x), f), f(x))
}

// RightIdentity reports whether Bind(m, Return) == m.
func RightIdentity(in monad.Instance, eq Eq, m any) bool {
	return eq(in.Bind(m, in.Return), m)
}

// Associativity reports whether Bind(Bind(m, f), g) equals
// Bind(m, func(x) Bind(f(x), g)).
func Associativity(in monad.Instance, eq Eq, m any, f, g func(any) any) bool {
	left := in.Bind(in.Bind(m, f), g)
	right := in.Bind(m, func(x any) any {
		return in.Bind(f(x), g)
	})
	return eq(left, right)
}
