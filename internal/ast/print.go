package ast

import (
	"fmt"
	"io"
	"strings"

	"toylang/internal/source"
)

// Fprint writes an indented outline of the tree rooted at n. Names and
// literals are sliced from f.
func Fprint(w io.Writer, f *source.File, n Node) {
	p := &printer{w: w, f: f}
	p.node(n, 0)
}

type printer struct {
	w io.Writer
	f *source.File
}

func (p *printer) line(depth int, format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (p *printer) text(s source.Span) string { return p.f.Text(s) }

func (p *printer) node(n Node, depth int) {
	switch n := n.(type) {
	case *Module:
		p.line(depth, "Module")
		for _, st := range n.Stmts {
			p.node(st, depth+1)
		}
	case *FuncDef:
		p.line(depth, "FuncDef %s%s", p.text(n.Name.S), p.sig(n.Params, n.Ret))
		p.node(n.Body, depth+1)
	case *ExternFunc:
		p.line(depth, "ExternFunc %s%s", p.text(n.Name.S), p.sig(n.Params, n.Ret))
	case *LetStmt:
		p.line(depth, "LetStmt %s: %s", p.text(n.Name.S), p.text(n.Type.Span()))
		p.node(n.Init, depth+1)
	case *ReturnStmt:
		p.line(depth, "ReturnStmt")
		if n.Expr != nil {
			p.node(n.Expr, depth+1)
		}
	case *BlockExpr:
		p.line(depth, "BlockExpr")
		for _, st := range n.Stmts {
			p.node(st, depth+1)
		}
		if n.Tail != nil {
			p.node(n.Tail, depth+1)
		}
	case *UnaryExpr:
		p.line(depth, "UnaryExpr %s", n.Op)
		p.node(n.X, depth+1)
	case *BinaryExpr:
		p.line(depth, "BinaryExpr %s", n.Op)
		p.node(n.X, depth+1)
		p.node(n.Y, depth+1)
	case *IfExpr:
		p.line(depth, "IfExpr")
		p.node(n.Cond, depth+1)
		p.node(n.Then, depth+1)
		if n.Else != nil {
			p.node(n.Else, depth+1)
		}
	case *CallExpr:
		p.line(depth, "CallExpr")
		p.node(n.Callee, depth+1)
		for _, a := range n.Args {
			p.node(a, depth+1)
		}
	case *AccessExpr:
		p.line(depth, "AccessExpr")
		p.node(n.Base, depth+1)
		p.node(n.Index, depth+1)
	case *ArrayLit:
		p.line(depth, "ArrayLit")
		for _, e := range n.Elems {
			p.node(e, depth+1)
		}
	case *IntLit:
		p.line(depth, "IntLit %s", p.text(n.S))
	case *BoolLit:
		p.line(depth, "BoolLit %t", n.Value)
	case *IdentExpr:
		p.line(depth, "IdentExpr %s", p.text(n.Name.S))
	default:
		p.line(depth, "%T", n)
	}
}

func (p *printer) sig(params []Param, ret TypeExpr) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, prm := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.text(prm.Name.S))
		if prm.Type != nil {
			b.WriteString(": ")
			b.WriteString(p.text(prm.Type.Span()))
		}
	}
	b.WriteByte(')')
	if ret != nil {
		b.WriteString(": ")
		b.WriteString(p.text(ret.Span()))
	}
	return b.String()
}
