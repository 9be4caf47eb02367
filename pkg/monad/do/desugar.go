package do

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBlock is returned for a block with no statements.
	ErrEmptyBlock = errors.New("do: block has no statements")
	// ErrLetLast is returned when a block ends in a Let statement, which
	// would leave the chain without a monadic result.
	ErrLetLast = errors.New("do: last statement must be Bound, Plain or Return")
	// ErrEarlyReturn is returned when a Return statement appears before the
	// end of the block.
	ErrEarlyReturn = errors.New("do: Return is only valid as the last statement")
)

// Node is one node of a desugared expression tree. The set of node kinds is
// closed: BindNode, LetNode, ReturnNode and ExprNode.
type Node interface {
	isNode()
}

// BindNode is one generated Bind call: Source is evaluated, its payload is
// matched against Pat, and Cont is the continuation. Exactly one BindNode
// is produced per non-terminal Bound or Plain statement.
type BindNode struct {
	Pat    Pattern
	Source Expr
	Cont   Node
}

// LetNode evaluates Body with Pat bound to the value of Expr. No Bind call
// is involved.
type LetNode struct {
	Pat  Pattern
	Expr Expr
	Body Node
}

// ReturnNode wraps the value of Expr via the instance's Return.
type ReturnNode struct {
	Expr Expr
}

// ExprNode is a terminal monadic expression used as-is, without wrapping.
type ExprNode struct {
	Expr Expr
}

func (BindNode) isNode()   {}
func (LetNode) isNode()    {}
func (ReturnNode) isNode() {}
func (ExprNode) isNode()   {}

// Desugar rewrites a block into an expression tree, folding right to left:
// the last statement becomes the base node, and every earlier statement
// wraps the accumulated continuation. Desugaring is purely structural; no
// expression is evaluated and no instance is consulted.
func Desugar(b Block) (Node, error) {
	stmts := b.stmts
	if len(stmts) == 0 {
		return nil, ErrEmptyBlock
	}

	var acc Node
	switch last := stmts[len(stmts)-1].(type) {
	case Return:
		acc = ReturnNode{Expr: last.Expr}
	case Bound:
		// A trailing binding has nothing left to bind into; the expression
		// itself is the chain's result.
		acc = ExprNode{Expr: last.Expr}
	case Plain:
		acc = ExprNode{Expr: last.Expr}
	case Let:
		return nil, ErrLetLast
	default:
		return nil, fmt.Errorf("do: unknown statement kind %T", last)
	}

	for i := len(stmts) - 2; i >= 0; i-- {
		switch s := stmts[i].(type) {
		case Bound:
			acc = BindNode{Pat: s.Pat, Source: s.Expr, Cont: acc}
		case Plain:
			acc = BindNode{Pat: Wildcard(), Source: s.Expr, Cont: acc}
		case Let:
			acc = LetNode{Pat: s.Pat, Expr: s.Expr, Body: acc}
		case Return:
			return nil, ErrEarlyReturn
		default:
			return nil, fmt.Errorf("do: unknown statement kind %T", s)
		}
	}

	tracer().Debugf("desugared block %s: %d statements", b.id, len(stmts))
	return acc, nil
}
