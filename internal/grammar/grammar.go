// Package grammar holds the concrete syntax tree of the toy language as a
// participle grammar. The parser package lowers it into the AST.
package grammar

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"toylang/internal/source"
)

// Node records the token range a grammar production matched. participle
// fills Pos with the first token and EndPos with the raw token that follows
// the last one, so EndPos.Offset is the exclusive end of the match.
type Node struct {
	Pos    lexer.Position
	EndPos lexer.Position
}

func (n Node) Span() source.Span {
	return source.Span{Offset: n.Pos.Offset, Len: n.EndPos.Offset - n.Pos.Offset}
}

type Module struct {
	Node
	Stmts []*Stmt `@@*`
}

type Stmt struct {
	Node
	Func   *FuncDef `  @@`
	Extern *Extern  `| @@`
	Let    *Let     `| @@`
	Return *Return  `| @@`
}

type FuncDef struct {
	Node
	Name   *Ident   `"fn" @@`
	Params []*Param `"(" ( @@ ( "," @@ )* )? ")"`
	Ret    *Type    `( ":" @@ )?`
	Body   *Expr    `"=>" @@`
	Semi   bool     `@";"?`
}

type Extern struct {
	Node
	Name   *Ident   `"extern" "fn" @@`
	Params []*Param `"(" ( @@ ( "," @@ )* )? ")"`
	Ret    *Type    `( ":" @@ )? ";"`
}

type Param struct {
	Node
	Name *Ident `@@`
	Type *Type  `( ":" @@ )?`
}

type Let struct {
	Node
	Name *Ident `"let" @@`
	Type *Type  `":" @@`
	Init *Expr  `"=" @@ ";"`
}

type Return struct {
	Node
	Keyword string `@"return"`
	Value   *Expr  `@@? ";"`
}

type Ident struct {
	Node
	Name string `@Ident`
}

type Type struct {
	Node
	Pointer *Type      `  "*" @@`
	Array   *ArrayType `| @@`
	Func    *FuncType  `| @@`
	Named   *Ident     `| @@`
}

type ArrayType struct {
	Node
	Elem *Type `"[" @@`
	Size *Expr `";" @@ "]"`
}

type FuncType struct {
	Node
	Params []*Type `"fn" "(" ( @@ ( "," @@ )* )? ")"`
	Ret    *Type   `( ":" @@ )?`
}

// Expr is the loosest binary level. Each level is a head operand followed
// by left-associative tails.
type Expr struct {
	Node
	Left *AndExpr  `@@`
	Rest []*OrTail `@@*`
}

type OrTail struct {
	Node
	Op    string   `@( "||" | "or" )`
	Right *AndExpr `@@`
}

type AndExpr struct {
	Node
	Left *CmpExpr   `@@`
	Rest []*AndTail `@@*`
}

type AndTail struct {
	Node
	Op    string   `@( "&&" | "and" )`
	Right *CmpExpr `@@`
}

type CmpExpr struct {
	Node
	Left *AddExpr   `@@`
	Rest []*CmpTail `@@*`
}

type CmpTail struct {
	Node
	Op    string   `@( "==" | "!=" | "<=" | ">=" | "<" | ">" )`
	Right *AddExpr `@@`
}

type AddExpr struct {
	Node
	Left *MulExpr   `@@`
	Rest []*AddTail `@@*`
}

type AddTail struct {
	Node
	Op    string   `@( "+" | "-" )`
	Right *MulExpr `@@`
}

type MulExpr struct {
	Node
	Left *Unary     `@@`
	Rest []*MulTail `@@*`
}

type MulTail struct {
	Node
	Op    string `@( "*" | "/" | "%" )`
	Right *Unary `@@`
}

type Unary struct {
	Node
	Prefix  *Prefix  `  @@`
	Postfix *Postfix `| @@`
}

type Prefix struct {
	Node
	Op      string `@( "-" | "!" | "not" | "*" )`
	Operand *Unary `@@`
}

type Postfix struct {
	Node
	Primary *Primary     `@@`
	Ops     []*PostfixOp `@@*`
}

type PostfixOp struct {
	Node
	Call  *CallArgs `  @@`
	Index *Expr     `| "[" @@ "]"`
}

type CallArgs struct {
	Node
	Args []*Expr `"(" ( @@ ( "," @@ )* )? ")"`
}

type Primary struct {
	Node
	Block *Block    `  @@`
	If    *If       `| @@`
	Array *ArrayLit `| @@`
	Paren *Expr     `| "(" @@ ")"`
	Bool  string    `| @( "true" | "false" )`
	Int   string    `| @Int`
	Ident string    `| @Ident`
}

type Block struct {
	Node
	Stmts []*Stmt `"{" @@*`
	Tail  *Expr   `@@? "}"`
}

type If struct {
	Node
	Cond *Expr  `"if" @@`
	Then *Block `@@`
	Else *Else  `( "else" @@ )?`
}

type Else struct {
	Node
	If    *If    `  @@`
	Block *Block `| @@`
}

type ArrayLit struct {
	Node
	Elems []*Expr `"[" ( @@ ( "," @@ )* )? "]"`
}

var parser = participle.MustBuild[Module](
	participle.Lexer(definition{symbols: symbols}),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// EBNF renders the grammar.
func EBNF() string { return parser.String() }

// Parse parses input into a concrete syntax tree. Errors are *diag.Error.
func Parse(filename string, input string) (*Module, error) {
	m, err := parser.ParseString(filename, input)
	if err != nil {
		return nil, mapError(err)
	}
	return m, nil
}
