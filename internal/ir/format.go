package ir

import (
	"fmt"
	"strings"

	"toylang/internal/ast"
	"toylang/internal/source"
)

// Format renders m as text, one top-level statement per line. Every
// expression is printed with its type after a colon.
func Format(m *Module) string {
	var sb strings.Builder
	sb.WriteString("ir v0\n")
	if m == nil {
		return sb.String()
	}
	p := printer{f: m.File}
	for _, st := range m.Stmts {
		sb.WriteString(p.stmt(st))
		sb.WriteByte('\n')
	}
	return sb.String()
}

type printer struct {
	f *source.File
}

func (p printer) name(s source.Span) string { return p.f.Text(s) }

func (p printer) params(ps []Param) string {
	parts := make([]string, 0, len(ps))
	for _, prm := range ps {
		parts = append(parts, p.name(prm.Name)+": "+prm.Ty.String())
	}
	return strings.Join(parts, ", ")
}

func (p printer) stmt(st Stmt) string {
	switch st := st.(type) {
	case *Function:
		return fmt.Sprintf("fn %s(%s): %s = %s", p.name(st.Name), p.params(st.Params), st.Ret, p.expr(st.Body))
	case *Extern:
		return fmt.Sprintf("extern fn %s(%s): %s", p.name(st.Name), p.params(st.Params), st.Ret)
	case *Let:
		return fmt.Sprintf("let %s: %s = %s", p.name(st.Name), st.Ty, p.expr(st.Init))
	case *Return:
		if st.Value == nil {
			return "return"
		}
		return "return " + p.expr(st.Value)
	}
	return fmt.Sprintf("<%T>", st)
}

func (p printer) list(es []Expr) string {
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, p.expr(e))
	}
	return strings.Join(parts, " ")
}

func (p printer) expr(e Expr) string {
	var s string
	switch e := e.(type) {
	case *Block:
		parts := make([]string, 0, len(e.Stmts)+1)
		for _, st := range e.Stmts {
			parts = append(parts, p.stmt(st))
		}
		if e.Tail != nil {
			parts = append(parts, p.expr(e.Tail))
		}
		s = "{" + strings.Join(parts, "; ") + "}"
	case *Unary:
		s = fmt.Sprintf("(%s %s)", unaryName(e.Op), p.expr(e.X))
	case *Binary:
		s = fmt.Sprintf("(%s %s %s)", e.Op, p.expr(e.X), p.expr(e.Y))
	case *If:
		s = fmt.Sprintf("(if %s %s", p.expr(e.Cond), p.expr(e.Then))
		if e.Else != nil {
			s += " " + p.expr(e.Else)
		}
		s += ")"
	case *Call:
		s = fmt.Sprintf("(call %s", p.expr(e.Callee))
		if len(e.Args) > 0 {
			s += " " + p.list(e.Args)
		}
		s += ")"
	case *Access:
		s = fmt.Sprintf("(index %s %s)", p.expr(e.Base), p.expr(e.Index))
	case *Array:
		s = "[" + p.list(e.Elems) + "]"
	case *Int:
		s = fmt.Sprint(e.Value)
	case *Bool:
		s = fmt.Sprint(e.Value)
	case *Ident:
		s = p.name(e.Name)
	default:
		return fmt.Sprintf("<%T>", e)
	}
	return s + ":" + e.Type().String()
}

func unaryName(op ast.UnaryOp) string {
	switch op {
	case ast.Neg:
		return "neg"
	case ast.Not:
		return "not"
	case ast.Deref:
		return "deref"
	}
	return "?"
}
