// Package do desugars a list of binding statements into a chain of Bind
// calls against a chosen monad instance, so a caller can write
// straight-line optional or failing code instead of nesting continuations
// by hand.
//
// A Block holds an ordered statement list built from four statement kinds:
//
//	Bound{Pat, Expr}   pat <- expr   bind the payload of a monadic expr
//	Plain{Expr}        expr          run a monadic expr, discard its payload
//	Return{Expr}       return expr   wrap a pure expr via the instance
//	Let{Pat, Expr}     pat = expr    pure local binding, no bind generated
//
// Desugar turns a Block into an expression tree; it is purely structural
// and evaluates nothing. Eval interprets that tree against a
// monad.Instance, left to right, short-circuiting through the instance's
// Bind. Run combines the two.
//
// Example, over the maybe instance:
//
//	b := do.NewBlock(
//		do.Bound{Pat: do.Var("x"), Expr: do.Const(maybe.Just(1))},
//		do.Bound{Pat: do.Var("y"), Expr: do.Const(maybe.Just(2))},
//		do.Return{Expr: func(s do.Scope) any {
//			return s["x"].(int) + s["y"].(int)
//		}},
//	)
//	v, err := do.Run(b, maybe.Instance()) // Just(3)
package do

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdo.do'.
func tracer() tracing.Trace {
	return tracing.Select("mdo.do")
}
