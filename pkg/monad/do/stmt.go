package do

import (
	"time"

	"github.com/google/uuid"
)

// Stmt is one statement of a block. The set of statement kinds is closed:
// Bound, Plain, Return and Let.
type Stmt interface {
	isStmt()
}

// Bound is `pat <- expr`: Expr must produce a monadic value; its payload is
// matched against Pat and the bindings flow into the rest of the block.
type Bound struct {
	Pat  Pattern
	Expr Expr
}

// Plain is a bare monadic expression; its payload is discarded but its
// failure shape still short-circuits the chain.
type Plain struct {
	Expr Expr
}

// Return is `return expr`: Expr produces a plain value which is wrapped via
// the instance's Return. Only valid as the last statement.
type Return struct {
	Expr Expr
}

// Let is `pat = expr`: a pure local binding. Expr produces a plain value;
// no bind is generated.
type Let struct {
	Pat  Pattern
	Expr Expr
}

func (Bound) isStmt()  {}
func (Plain) isStmt()  {}
func (Return) isStmt() {}
func (Let) isStmt()    {}

// Block is an ordered, immutable statement list ready for desugaring.
type Block struct {
	id        uuid.UUID
	createdAt time.Time
	stmts     []Stmt
}

// NewBlock builds a Block from the given statements.
func NewBlock(stmts ...Stmt) Block {
	copied := make([]Stmt, len(stmts))
	copy(copied, stmts)
	return Block{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		stmts:     copied,
	}
}

// Id identifies the block.
func (b Block) Id() uuid.UUID {
	return b.id
}

// CreatedAt is the block's creation time (UTC).
func (b Block) CreatedAt() time.Time {
	return b.createdAt
}

// Stmts returns the block's statements.
func (b Block) Stmts() []Stmt {
	out := make([]Stmt, len(b.stmts))
	copy(out, b.stmts)
	return out
}

// Len returns the number of statements.
func (b Block) Len() int {
	return len(b.stmts)
}
