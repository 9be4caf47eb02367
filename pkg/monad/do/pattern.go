package do

import (
	"fmt"
	"reflect"

	"github.com/ib-77/mdo/pkg/monad"
)

// Scope maps bound names to values. Scopes are treated as immutable:
// matching a pattern extends a scope by copying, so continuations captured
// earlier in a chain never observe later bindings.
type Scope map[string]any

func (s Scope) extend(name string, v any) Scope {
	next := make(Scope, len(s)+1)
	for k, val := range s {
		next[k] = val
	}
	next[name] = v
	return next
}

// Expr is the host-expression primitive: a function from the current scope
// to a value. Whether the value must be monadic depends on the statement
// kind that carries the expression.
type Expr func(s Scope) any

// Const returns an Expr that ignores the scope and produces v.
func Const(v any) Expr {
	return func(Scope) any {
		return v
	}
}

// Pattern matches a value and binds names into a scope. Match returns the
// extended scope and whether the value matched.
type Pattern interface {
	Match(v any, s Scope) (Scope, bool)
	String() string
}

type varPattern string

// Var returns a pattern that matches any value and binds it to name.
func Var(name string) Pattern {
	return varPattern(name)
}

func (p varPattern) Match(v any, s Scope) (Scope, bool) {
	return s.extend(string(p), v), true
}

func (p varPattern) String() string {
	return string(p)
}

type wildcardPattern struct{}

// Wildcard returns a pattern that matches any value and binds nothing.
func Wildcard() Pattern {
	return wildcardPattern{}
}

func (wildcardPattern) Match(_ any, s Scope) (Scope, bool) {
	return s, true
}

func (wildcardPattern) String() string {
	return "_"
}

type litPattern struct {
	want any
}

// Lit returns a pattern that matches only values deep-equal to want and
// binds nothing. Inside a Bound statement it acts as a filter on the
// payload.
func Lit(want any) Pattern {
	return litPattern{want: want}
}

func (p litPattern) Match(v any, s Scope) (Scope, bool) {
	if !reflect.DeepEqual(p.want, v) {
		return s, false
	}
	return s, true
}

func (p litPattern) String() string {
	return fmt.Sprintf("%v", p.want)
}

type tuplePattern []Pattern

// Tuple returns a pattern that destructures a []any of the same length,
// matching every element pattern in order.
func Tuple(ps ...Pattern) Pattern {
	return tuplePattern(ps)
}

func (p tuplePattern) Match(v any, s Scope) (Scope, bool) {
	elems, ok := v.([]any)
	if !ok || len(elems) != len(p) {
		return s, false
	}
	for i, sub := range p {
		s, ok = sub.Match(elems[i], s)
		if !ok {
			return s, false
		}
	}
	return s, true
}

func (p tuplePattern) String() string {
	out := "("
	for i, sub := range p {
		if i > 0 {
			out += ", "
		}
		out += sub.String()
	}
	return out + ")"
}

type extractPattern struct {
	ex  monad.Extractor
	sub Pattern
}

// Extract returns a pattern that matches a monadic value in the success
// shape of ex and applies sub to its payload. Failure-shaped values do not
// match.
func Extract(ex monad.Extractor, sub Pattern) Pattern {
	return extractPattern{ex: ex, sub: sub}
}

func (p extractPattern) Match(v any, s Scope) (Scope, bool) {
	payload, ok := p.ex.Extract(v)
	if !ok {
		return s, false
	}
	return p.sub.Match(payload, s)
}

func (p extractPattern) String() string {
	return fmt.Sprintf("extract %s", p.sub)
}
