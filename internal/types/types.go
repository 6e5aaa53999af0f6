// Package types is the closed type algebra of the toy language.
package types

import (
	"strings"

	"toylang/internal/ast"
)

type Kind int

const (
	TyNone Kind = iota
	TyBool
	TyI8
	TyU8
	TyI16
	TyU16
	TyI32
	TyU32
	TyI64
	TyU64
	TyISize
	TyUSize
	TyIntLit
	TyVoid
	TyPointer
	TyArray
	TyFunc
)

var primNames = map[Kind]string{
	TyNone:   "none",
	TyBool:   "bool",
	TyI8:     "i8",
	TyU8:     "u8",
	TyI16:    "i16",
	TyU16:    "u16",
	TyI32:    "i32",
	TyU32:    "u32",
	TyI64:    "i64",
	TyU64:    "u64",
	TyISize:  "isize",
	TyUSize:  "usize",
	TyIntLit: "{integer}",
	TyVoid:   "void",
}

// Type is a value; composite types share nothing mutable. Size is the
// array length expression as written and does not take part in equality.
type Type struct {
	K      Kind
	Elem   *Type    // TyPointer, TyArray
	Size   ast.Expr // TyArray
	Params []Type
	Ret    *Type // TyFunc
}

func Prim(k Kind) Type { return Type{K: k} }

func PointerTo(elem Type) Type { return Type{K: TyPointer, Elem: &elem} }

func ArrayOf(elem Type, size ast.Expr) Type { return Type{K: TyArray, Elem: &elem, Size: size} }

func FuncOf(params []Type, ret Type) Type {
	return Type{K: TyFunc, Params: append([]Type(nil), params...), Ret: &ret}
}

// Equal is structural. Integer kinds compare by width and signedness, so
// i32 and i64 differ.
func Equal(a, b Type) bool {
	if a.K != b.K {
		return false
	}
	switch a.K {
	case TyPointer, TyArray:
		return a.Elem != nil && b.Elem != nil && Equal(*a.Elem, *b.Elem)
	case TyFunc:
		if len(a.Params) != len(b.Params) || a.Ret == nil || b.Ret == nil {
			return false
		}
		for i := range a.Params {
			if !Equal(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return Equal(*a.Ret, *b.Ret)
	}
	return true
}

func (t Type) String() string {
	switch t.K {
	case TyPointer:
		return "*" + t.elem().String()
	case TyArray:
		return "[" + t.elem().String() + "]"
	case TyFunc:
		var b strings.Builder
		b.WriteString("fn(")
		for i, p := range t.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
		b.WriteString(")")
		if t.Ret != nil {
			b.WriteString(": ")
			b.WriteString(t.Ret.String())
		}
		return b.String()
	}
	if n, ok := primNames[t.K]; ok {
		return n
	}
	return "<bad>"
}

func (t Type) elem() Type {
	if t.Elem == nil {
		return Prim(TyNone)
	}
	return *t.Elem
}

// ElemType returns the pointee or element type, or none.
func (t Type) ElemType() Type { return t.elem() }

// IsInteger reports whether t is a concrete integer type.
func (t Type) IsInteger() bool { return t.K >= TyI8 && t.K <= TyUSize }

// IsIntegral also admits unsettled integer literals.
func (t Type) IsIntegral() bool { return t.IsInteger() || t.K == TyIntLit }

func (t Type) IsSigned() bool {
	switch t.K {
	case TyI8, TyI16, TyI32, TyI64, TyISize:
		return true
	}
	return false
}

var intNames = map[string]Kind{
	"i8":    TyI8,
	"u8":    TyU8,
	"i16":   TyI16,
	"u16":   TyU16,
	"i32":   TyI32,
	"u32":   TyU32,
	"i64":   TyI64,
	"u64":   TyU64,
	"isize": TyISize,
	"usize": TyUSize,
}

// Suffix resolves an integer literal suffix. Only integer type names are
// valid suffixes.
func Suffix(name string) (Type, bool) {
	k, ok := intNames[name]
	if !ok {
		return Type{}, false
	}
	return Prim(k), true
}

// Named resolves a type name written in an annotation.
func Named(name string) (Type, bool) {
	switch name {
	case "bool":
		return Prim(TyBool), true
	case "void":
		return Prim(TyVoid), true
	}
	return Suffix(name)
}
