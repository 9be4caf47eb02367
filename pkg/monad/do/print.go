package do

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Sprint renders a desugared expression tree for debugging. Expressions are
// opaque functions, so only the node structure and patterns are shown.
func Sprint(n Node) string {
	p := tp.New()
	ppn(p, n)
	return p.String()
}

func ppn(p tp.Tree, n Node) {
	switch node := n.(type) {
	case ReturnNode:
		p.AddNode("return ·")
	case ExprNode:
		p.AddNode("·")
	case LetNode:
		branch := p.AddBranch(fmt.Sprintf("let %s = ·", node.Pat))
		ppn(branch, node.Body)
	case BindNode:
		branch := p.AddBranch(fmt.Sprintf("bind %s <- ·", node.Pat))
		ppn(branch, node.Cont)
	}
}
