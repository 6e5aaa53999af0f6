// Package ir is the typed output of checking: a tree shaped like the checked
// AST in which every expression carries its resolved type. Names are spans
// into Module.File.
package ir

import (
	"toylang/internal/ast"
	"toylang/internal/source"
	"toylang/internal/types"
)

type Module struct {
	File  *source.File
	Stmts []Stmt
}

// Functions returns the checked function definitions in source order.
func (m *Module) Functions() []*Function {
	var out []*Function
	for _, st := range m.Stmts {
		if fn, ok := st.(*Function); ok {
			out = append(out, fn)
		}
	}
	return out
}

// Name slices a name span out of the module's source.
func (m *Module) Name(s source.Span) string { return m.File.Text(s) }

type Param struct {
	Name source.Span
	Ty   types.Type
}

// Stmt
type Stmt interface {
	stmtNode()
	Span() source.Span
}

type Function struct {
	Name   source.Span
	Params []Param
	Ret    types.Type
	Body   Expr
	S      source.Span
}

func (*Function) stmtNode()           {}
func (s *Function) Span() source.Span { return s.S }

// Signature is the function's type.
func (s *Function) Signature() types.Type { return types.FuncOf(paramTypes(s.Params), s.Ret) }

type Extern struct {
	Name   source.Span
	Params []Param
	Ret    types.Type
	S      source.Span
}

func (*Extern) stmtNode()           {}
func (s *Extern) Span() source.Span { return s.S }

func (s *Extern) Signature() types.Type { return types.FuncOf(paramTypes(s.Params), s.Ret) }

type Let struct {
	Name source.Span
	Ty   types.Type
	Init Expr
	S    source.Span
}

func (*Let) stmtNode()           {}
func (s *Let) Span() source.Span { return s.S }

type Return struct {
	Value Expr // optional
	S     source.Span
}

func (*Return) stmtNode()           {}
func (s *Return) Span() source.Span { return s.S }

// Expr
type Expr interface {
	exprNode()
	Span() source.Span
	Type() types.Type
}

type Block struct {
	Stmts []Stmt
	Tail  Expr // optional
	Ty    types.Type
	S     source.Span
}

func (*Block) exprNode()           {}
func (e *Block) Span() source.Span { return e.S }
func (e *Block) Type() types.Type  { return e.Ty }

type Unary struct {
	Op ast.UnaryOp
	X  Expr
	Ty types.Type
	S  source.Span
}

func (*Unary) exprNode()           {}
func (e *Unary) Span() source.Span { return e.S }
func (e *Unary) Type() types.Type  { return e.Ty }

// Binary carries both the common operand type and its own result type;
// they differ for comparisons.
type Binary struct {
	Op      ast.BinaryOp
	X, Y    Expr
	Operand types.Type
	Ty      types.Type
	S       source.Span
}

func (*Binary) exprNode()           {}
func (e *Binary) Span() source.Span { return e.S }
func (e *Binary) Type() types.Type  { return e.Ty }

type If struct {
	Cond Expr
	Then *Block
	Else Expr // nil, *Block or *If
	Ty   types.Type
	S    source.Span
}

func (*If) exprNode()           {}
func (e *If) Span() source.Span { return e.S }
func (e *If) Type() types.Type  { return e.Ty }

type Call struct {
	Callee Expr
	Args   []Expr
	Ty     types.Type
	S      source.Span
}

func (*Call) exprNode()           {}
func (e *Call) Span() source.Span { return e.S }
func (e *Call) Type() types.Type  { return e.Ty }

type Access struct {
	Base  Expr
	Index Expr
	Ty    types.Type
	S     source.Span
}

func (*Access) exprNode()           {}
func (e *Access) Span() source.Span { return e.S }
func (e *Access) Type() types.Type  { return e.Ty }

type Array struct {
	Elems []Expr
	Ty    types.Type
	S     source.Span
}

func (*Array) exprNode()           {}
func (e *Array) Span() source.Span { return e.S }
func (e *Array) Type() types.Type  { return e.Ty }

// Int holds the literal's magnitude; a negative literal is a Unary negation
// of an Int.
type Int struct {
	Value uint64
	Ty    types.Type
	S     source.Span
}

func (*Int) exprNode()           {}
func (e *Int) Span() source.Span { return e.S }
func (e *Int) Type() types.Type  { return e.Ty }

type Bool struct {
	Value bool
	S     source.Span
}

func (*Bool) exprNode()           {}
func (e *Bool) Span() source.Span { return e.S }
func (e *Bool) Type() types.Type  { return types.Prim(types.TyBool) }

type Ident struct {
	Name source.Span
	Ty   types.Type
}

func (*Ident) exprNode()           {}
func (e *Ident) Span() source.Span { return e.Name }
func (e *Ident) Type() types.Type  { return e.Ty }

func paramTypes(ps []Param) []types.Type {
	out := make([]types.Type, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Ty)
	}
	return out
}
