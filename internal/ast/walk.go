package ast

// Inspect traverses the tree rooted at n in depth-first order. It calls f(n)
// and descends into n's children when f returns true.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch n := n.(type) {
	case *Module:
		for _, st := range n.Stmts {
			Inspect(st, f)
		}
	case Param:
		inspectType(n.Type, f)
	case *FuncDef:
		for _, p := range n.Params {
			Inspect(p, f)
		}
		inspectType(n.Ret, f)
		Inspect(n.Body, f)
	case *ExternFunc:
		for _, p := range n.Params {
			Inspect(p, f)
		}
		inspectType(n.Ret, f)
	case *LetStmt:
		inspectType(n.Type, f)
		Inspect(n.Init, f)
	case *ReturnStmt:
		if n.Expr != nil {
			Inspect(n.Expr, f)
		}
	case *PointerType:
		inspectType(n.Elem, f)
	case *ArrayType:
		inspectType(n.Elem, f)
		Inspect(n.Size, f)
	case *FuncType:
		for _, p := range n.Params {
			inspectType(p, f)
		}
		inspectType(n.Ret, f)
	case *BlockExpr:
		for _, st := range n.Stmts {
			Inspect(st, f)
		}
		if n.Tail != nil {
			Inspect(n.Tail, f)
		}
	case *UnaryExpr:
		Inspect(n.X, f)
	case *BinaryExpr:
		Inspect(n.X, f)
		Inspect(n.Y, f)
	case *IfExpr:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		if n.Else != nil {
			Inspect(n.Else, f)
		}
	case *CallExpr:
		Inspect(n.Callee, f)
		for _, a := range n.Args {
			Inspect(a, f)
		}
	case *AccessExpr:
		Inspect(n.Base, f)
		Inspect(n.Index, f)
	case *ArrayLit:
		for _, e := range n.Elems {
			Inspect(e, f)
		}
	}
}

// Typed nil interfaces must not reach Inspect.
func inspectType(t TypeExpr, f func(Node) bool) {
	if t != nil {
		Inspect(t, f)
	}
}
