// Package ast is the toy language's syntax tree. Nodes hold spans into the
// source buffer instead of copied text; names are recovered with
// source.File.Text.
package ast

import "toylang/internal/source"

// Node is implemented by every syntax tree node.
type Node interface {
	Span() source.Span
}

type Module struct {
	Stmts []Stmt
	S     source.Span
}

func (m *Module) Span() source.Span { return m.S }

// Functions returns the module's function definitions in source order.
func (m *Module) Functions() []*FuncDef {
	var out []*FuncDef
	for _, st := range m.Stmts {
		if fn, ok := st.(*FuncDef); ok {
			out = append(out, fn)
		}
	}
	return out
}

// Ident is a name occurrence.
type Ident struct {
	S source.Span
}

func (id Ident) Span() source.Span { return id.S }

type Param struct {
	Name Ident
	Type TypeExpr // nil when omitted
	S    source.Span
}

// Stmt
type Stmt interface {
	stmtNode()
	Span() source.Span
}

type FuncDef struct {
	Name   Ident
	Params []Param
	Ret    TypeExpr // nil when omitted
	Body   Expr
	S      source.Span
}

func (*FuncDef) stmtNode()           {}
func (s *FuncDef) Span() source.Span { return s.S }

type ExternFunc struct {
	Name   Ident
	Params []Param
	Ret    TypeExpr // nil when omitted
	S      source.Span
}

func (*ExternFunc) stmtNode()           {}
func (s *ExternFunc) Span() source.Span { return s.S }

type LetStmt struct {
	Name Ident
	Type TypeExpr
	Init Expr
	S    source.Span
}

func (*LetStmt) stmtNode()           {}
func (s *LetStmt) Span() source.Span { return s.S }

type ReturnStmt struct {
	Expr Expr // optional
	S    source.Span
}

func (*ReturnStmt) stmtNode()           {}
func (s *ReturnStmt) Span() source.Span { return s.S }

// TypeExpr is a syntactic type annotation.
type TypeExpr interface {
	typeNode()
	Span() source.Span
}

type NamedType struct {
	Name Ident
	S    source.Span
}

func (*NamedType) typeNode()           {}
func (t *NamedType) Span() source.Span { return t.S }

type PointerType struct {
	Elem TypeExpr
	S    source.Span
}

func (*PointerType) typeNode()           {}
func (t *PointerType) Span() source.Span { return t.S }

type ArrayType struct {
	Elem TypeExpr
	Size Expr
	S    source.Span
}

func (*ArrayType) typeNode()           {}
func (t *ArrayType) Span() source.Span { return t.S }

type FuncType struct {
	Params []TypeExpr
	Ret    TypeExpr // nil when omitted
	S      source.Span
}

func (*FuncType) typeNode()           {}
func (t *FuncType) Span() source.Span { return t.S }

// Expr
type Expr interface {
	exprNode()
	Span() source.Span
}

type BlockExpr struct {
	Stmts []Stmt
	Tail  Expr // optional
	S     source.Span
}

func (*BlockExpr) exprNode()           {}
func (e *BlockExpr) Span() source.Span { return e.S }

type UnaryOp int

const (
	Neg UnaryOp = iota
	Not
	Deref
)

func (op UnaryOp) String() string {
	switch op {
	case Neg:
		return "-"
	case Not:
		return "!"
	case Deref:
		return "*"
	}
	return "?"
}

type UnaryExpr struct {
	Op UnaryOp
	X  Expr
	S  source.Span
}

func (*UnaryExpr) exprNode()           {}
func (e *UnaryExpr) Span() source.Span { return e.S }

type BinaryOp int

const (
	Or BinaryOp = iota
	And
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	Add
	Sub
	Mul
	Div
	Rem
)

var binaryOpText = [...]string{
	Or: "||", And: "&&",
	Eq: "==", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
	Add: "+", Sub: "-", Mul: "*", Div: "/", Rem: "%",
}

func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binaryOpText) {
		return "?"
	}
	return binaryOpText[op]
}

// IsComparison reports whether op yields a boolean from two equal operands.
func (op BinaryOp) IsComparison() bool { return op >= Eq && op <= Ge }

type BinaryExpr struct {
	Op BinaryOp
	X  Expr
	Y  Expr
	S  source.Span
}

func (*BinaryExpr) exprNode()           {}
func (e *BinaryExpr) Span() source.Span { return e.S }

type IfExpr struct {
	Cond Expr
	Then *BlockExpr
	Else Expr // nil, *BlockExpr or *IfExpr
	S    source.Span
}

func (*IfExpr) exprNode()           {}
func (e *IfExpr) Span() source.Span { return e.S }

type CallExpr struct {
	Callee Expr
	Args   []Expr
	S      source.Span
}

func (*CallExpr) exprNode()           {}
func (e *CallExpr) Span() source.Span { return e.S }

// AccessExpr is an index expression base[index].
type AccessExpr struct {
	Base  Expr
	Index Expr
	S     source.Span
}

func (*AccessExpr) exprNode()           {}
func (e *AccessExpr) Span() source.Span { return e.S }

type ArrayLit struct {
	Elems []Expr
	S     source.Span
}

func (*ArrayLit) exprNode()           {}
func (e *ArrayLit) Span() source.Span { return e.S }

// IntLit is an integer literal. Suffix is the byte offset of its type
// suffix inside the literal, or -1.
type IntLit struct {
	Suffix int
	S      source.Span
}

func (*IntLit) exprNode()           {}
func (e *IntLit) Span() source.Span { return e.S }

func (e *IntLit) HasSuffix() bool { return e.Suffix >= 0 }

// DigitSpan covers the digit run, underscores included.
func (e *IntLit) DigitSpan() source.Span {
	if !e.HasSuffix() {
		return e.S
	}
	return source.Span{Offset: e.S.Offset, Len: e.Suffix}
}

// SuffixSpan covers the type suffix. It is empty when there is none.
func (e *IntLit) SuffixSpan() source.Span {
	if !e.HasSuffix() {
		return source.Span{Offset: e.S.End()}
	}
	return source.Span{Offset: e.S.Offset + e.Suffix, Len: e.S.Len - e.Suffix}
}

type BoolLit struct {
	Value bool
	S     source.Span
}

func (*BoolLit) exprNode()           {}
func (e *BoolLit) Span() source.Span { return e.S }

type IdentExpr struct {
	Name Ident
}

func (*IdentExpr) exprNode()           {}
func (e *IdentExpr) Span() source.Span { return e.Name.S }

func (p Param) Span() source.Span { return p.S }
