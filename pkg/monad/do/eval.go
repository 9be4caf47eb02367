package do

import (
	"fmt"

	"github.com/ib-77/mdo/pkg/monad"
)

// Eval interprets a desugared expression tree against in, evaluating the
// generated Bind calls left to right and short-circuiting through the
// instance's failure shape.
//
// When the payload of a Bound statement does not match its pattern, the
// behavior depends on the instance: a monad.FailInstance turns the failed
// match into the instance's canonical failure, so non-matching payloads
// are filtered out of the chain; any other instance panics, since it has
// no failure shape to absorb the mismatch. A failed Let match always
// panics: there is no monadic context around a pure binding.
func Eval(n Node, in monad.Instance, s Scope) any {
	switch node := n.(type) {
	case ReturnNode:
		return in.Return(node.Expr(s))
	case ExprNode:
		return node.Expr(s)
	case LetNode:
		next, ok := node.Pat.Match(node.Expr(s), s)
		if !ok {
			panic(fmt.Sprintf("do: Let pattern %s did not match", node.Pat))
		}
		return Eval(node.Body, in, next)
	case BindNode:
		return in.Bind(node.Source(s), func(v any) any {
			next, ok := node.Pat.Match(v, s)
			if !ok {
				return matchFailure(in, node.Pat, v)
			}
			return Eval(node.Cont, in, next)
		})
	default:
		panic(fmt.Sprintf("do: unknown node kind %T", n))
	}
}

func matchFailure(in monad.Instance, p Pattern, v any) any {
	fi, ok := in.(monad.FailInstance)
	if !ok {
		panic(fmt.Sprintf("do: pattern %s did not match %v and instance cannot fail", p, v))
	}
	tracer().Debugf("pattern %s did not match %v, failing", p, v)
	return fi.Fail(fmt.Sprintf("pattern %s did not match %v", p, v))
}

// Run desugars b and evaluates it against in with an empty scope.
func Run(b Block, in monad.Instance) (any, error) {
	return RunWith(b, in, Scope{})
}

// RunWith desugars b and evaluates it against in with the given initial
// scope.
func RunWith(b Block, in monad.Instance, s Scope) (any, error) {
	n, err := Desugar(b)
	if err != nil {
		return nil, err
	}
	return Eval(n, in, s), nil
}
