// Package parser turns a source file into an ast.Module. The grammar lives
// in package grammar; this package lowers its concrete syntax tree.
package parser

import (
	"toylang/internal/ast"
	"toylang/internal/grammar"
	"toylang/internal/lexer"
	"toylang/internal/source"
)

// Parse parses a whole compilation unit. The returned error, if any, is a
// *diag.Error with one of the parse codes.
func Parse(file *source.File) (*ast.Module, error) {
	cst, err := grammar.Parse(file.Name, file.Input)
	if err != nil {
		return nil, err
	}
	l := &lowerer{file: file}
	return l.module(cst), nil
}

type lowerer struct {
	file *source.File
}

func (l *lowerer) module(m *grammar.Module) *ast.Module {
	out := &ast.Module{S: source.Span{Offset: 0, Len: len(l.file.Input)}}
	for _, st := range m.Stmts {
		out.Stmts = append(out.Stmts, l.stmt(st))
	}
	return out
}

func (l *lowerer) stmt(st *grammar.Stmt) ast.Stmt {
	switch {
	case st.Func != nil:
		fn := st.Func
		out := &ast.FuncDef{
			Name:   ident(fn.Name),
			Params: l.params(fn.Params),
			Body:   l.expr(fn.Body),
			S:      fn.Span(),
		}
		if fn.Ret != nil {
			out.Ret = l.typ(fn.Ret)
		}
		return out
	case st.Extern != nil:
		ex := st.Extern
		out := &ast.ExternFunc{Name: ident(ex.Name), Params: l.params(ex.Params), S: ex.Span()}
		if ex.Ret != nil {
			out.Ret = l.typ(ex.Ret)
		}
		return out
	case st.Let != nil:
		let := st.Let
		return &ast.LetStmt{Name: ident(let.Name), Type: l.typ(let.Type), Init: l.expr(let.Init), S: let.Span()}
	default:
		ret := st.Return
		out := &ast.ReturnStmt{S: ret.Span()}
		if ret.Value != nil {
			out.Expr = l.expr(ret.Value)
		}
		return out
	}
}

func (l *lowerer) params(ps []*grammar.Param) []ast.Param {
	var out []ast.Param
	for _, p := range ps {
		prm := ast.Param{Name: ident(p.Name), S: p.Span()}
		if p.Type != nil {
			prm.Type = l.typ(p.Type)
		}
		out = append(out, prm)
	}
	return out
}

func (l *lowerer) typ(t *grammar.Type) ast.TypeExpr {
	switch {
	case t.Pointer != nil:
		return &ast.PointerType{Elem: l.typ(t.Pointer), S: t.Span()}
	case t.Array != nil:
		return &ast.ArrayType{Elem: l.typ(t.Array.Elem), Size: l.expr(t.Array.Size), S: t.Span()}
	case t.Func != nil:
		ft := &ast.FuncType{S: t.Span()}
		for _, p := range t.Func.Params {
			ft.Params = append(ft.Params, l.typ(p))
		}
		if t.Func.Ret != nil {
			ft.Ret = l.typ(t.Func.Ret)
		}
		return ft
	default:
		return &ast.NamedType{Name: ident(t.Named), S: t.Span()}
	}
}

func ident(id *grammar.Ident) ast.Ident { return ast.Ident{S: id.Span()} }

// Binary levels fold left: a - b - c is (a - b) - c.

func (l *lowerer) expr(e *grammar.Expr) ast.Expr {
	x, span := l.and(e.Left), e.Left.Span()
	for _, t := range e.Rest {
		span = source.Join(span, t.Right.Span())
		x = &ast.BinaryExpr{Op: ast.Or, X: x, Y: l.and(t.Right), S: span}
	}
	return x
}

func (l *lowerer) and(e *grammar.AndExpr) ast.Expr {
	x, span := l.cmp(e.Left), e.Left.Span()
	for _, t := range e.Rest {
		span = source.Join(span, t.Right.Span())
		x = &ast.BinaryExpr{Op: ast.And, X: x, Y: l.cmp(t.Right), S: span}
	}
	return x
}

var cmpOps = map[string]ast.BinaryOp{
	"==": ast.Eq, "!=": ast.Ne, "<": ast.Lt, "<=": ast.Le, ">": ast.Gt, ">=": ast.Ge,
}

func (l *lowerer) cmp(e *grammar.CmpExpr) ast.Expr {
	x, span := l.add(e.Left), e.Left.Span()
	for _, t := range e.Rest {
		span = source.Join(span, t.Right.Span())
		x = &ast.BinaryExpr{Op: cmpOps[t.Op], X: x, Y: l.add(t.Right), S: span}
	}
	return x
}

func (l *lowerer) add(e *grammar.AddExpr) ast.Expr {
	x, span := l.mul(e.Left), e.Left.Span()
	for _, t := range e.Rest {
		op := ast.Add
		if t.Op == "-" {
			op = ast.Sub
		}
		span = source.Join(span, t.Right.Span())
		x = &ast.BinaryExpr{Op: op, X: x, Y: l.mul(t.Right), S: span}
	}
	return x
}

var mulOps = map[string]ast.BinaryOp{"*": ast.Mul, "/": ast.Div, "%": ast.Rem}

func (l *lowerer) mul(e *grammar.MulExpr) ast.Expr {
	x, span := l.unary(e.Left), e.Left.Span()
	for _, t := range e.Rest {
		span = source.Join(span, t.Right.Span())
		x = &ast.BinaryExpr{Op: mulOps[t.Op], X: x, Y: l.unary(t.Right), S: span}
	}
	return x
}

var unaryOps = map[string]ast.UnaryOp{"-": ast.Neg, "!": ast.Not, "not": ast.Not, "*": ast.Deref}

func (l *lowerer) unary(u *grammar.Unary) ast.Expr {
	if p := u.Prefix; p != nil {
		return &ast.UnaryExpr{Op: unaryOps[p.Op], X: l.unary(p.Operand), S: p.Span()}
	}
	pf := u.Postfix
	x, span := l.primary(pf.Primary), pf.Primary.Span()
	for _, op := range pf.Ops {
		span = source.Join(span, op.Span())
		if op.Call != nil {
			call := &ast.CallExpr{Callee: x, S: span}
			for _, a := range op.Call.Args {
				call.Args = append(call.Args, l.expr(a))
			}
			x = call
			continue
		}
		x = &ast.AccessExpr{Base: x, Index: l.expr(op.Index), S: span}
	}
	return x
}

func (l *lowerer) primary(p *grammar.Primary) ast.Expr {
	switch {
	case p.Block != nil:
		return l.block(p.Block)
	case p.If != nil:
		return l.ifExpr(p.If)
	case p.Array != nil:
		arr := &ast.ArrayLit{S: p.Span()}
		for _, e := range p.Array.Elems {
			arr.Elems = append(arr.Elems, l.expr(e))
		}
		return arr
	case p.Paren != nil:
		return l.expr(p.Paren)
	case p.Bool != "":
		return &ast.BoolLit{Value: p.Bool == "true", S: p.Span()}
	case p.Int != "":
		tok, _, _ := lexer.Next(p.Int)
		return &ast.IntLit{Suffix: tok.Suffix, S: p.Span()}
	default:
		return &ast.IdentExpr{Name: ast.Ident{S: p.Span()}}
	}
}

func (l *lowerer) block(b *grammar.Block) *ast.BlockExpr {
	out := &ast.BlockExpr{S: b.Span()}
	for _, st := range b.Stmts {
		out.Stmts = append(out.Stmts, l.stmt(st))
	}
	if b.Tail != nil {
		out.Tail = l.expr(b.Tail)
	}
	return out
}

func (l *lowerer) ifExpr(i *grammar.If) *ast.IfExpr {
	out := &ast.IfExpr{Cond: l.expr(i.Cond), Then: l.block(i.Then), S: i.Span()}
	switch {
	case i.Else == nil:
	case i.Else.If != nil:
		out.Else = l.ifExpr(i.Else.If)
	default:
		out.Else = l.block(i.Else.Block)
	}
	return out
}
