package types

import (
	"testing"

	"toylang/internal/ast"
	"toylang/internal/diag"
	"toylang/internal/source"
)

func TestEqual(t *testing.T) {
	i32 := Prim(TyI32)
	i64 := Prim(TyI64)
	b := Prim(TyBool)
	cases := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same_prim", i32, Prim(TyI32), true},
		{"width_matters", i32, i64, false},
		{"sign_matters", i32, Prim(TyU32), false},
		{"literal_is_distinct", Prim(TyIntLit), i32, false},
		{"pointer", PointerTo(i32), PointerTo(i32), true},
		{"pointer_elem", PointerTo(i32), PointerTo(i64), false},
		{"array_size_ignored", ArrayOf(i32, &ast.IntLit{Suffix: -1}), ArrayOf(i32, nil), true},
		{"array_vs_pointer", ArrayOf(i32, nil), PointerTo(i32), false},
		{"func", FuncOf([]Type{i32, b}, b), FuncOf([]Type{i32, b}, b), true},
		{"func_arity", FuncOf([]Type{i32}, b), FuncOf([]Type{i32, i32}, b), false},
		{"func_ret", FuncOf(nil, b), FuncOf(nil, i32), false},
		{"nested", PointerTo(ArrayOf(FuncOf(nil, i32), nil)), PointerTo(ArrayOf(FuncOf(nil, i32), nil)), true},
		{"none", Prim(TyNone), Prim(TyNone), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Equal(c.a, c.b); got != c.want {
				t.Fatalf("Equal(%s, %s) = %v, want %v", c.a, c.b, got, c.want)
			}
			if got := Equal(c.b, c.a); got != c.want {
				t.Fatalf("Equal not symmetric for %s, %s", c.a, c.b)
			}
		})
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		v    Type
		want string
	}{
		{Prim(TyBool), "bool"},
		{Prim(TyUSize), "usize"},
		{Prim(TyIntLit), "{integer}"},
		{PointerTo(Prim(TyU8)), "*u8"},
		{ArrayOf(Prim(TyNone), nil), "[none]"},
		{FuncOf([]Type{Prim(TyI32), Prim(TyI64)}, Prim(TyVoid)), "fn(i32, i64): void"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
}

func TestSuffixAndNamed(t *testing.T) {
	for _, name := range []string{"i8", "u8", "i16", "u16", "i32", "u32", "i64", "u64", "isize", "usize"} {
		ty, ok := Suffix(name)
		if !ok || !ty.IsInteger() || ty.String() != name {
			t.Fatalf("suffix %q: got %v %v", name, ty, ok)
		}
	}
	for _, bad := range []string{"bool", "void", "i128", "AnI_d42_f", ""} {
		if _, ok := Suffix(bad); ok {
			t.Fatalf("expected %q to be an invalid suffix", bad)
		}
	}
	if ty, ok := Named("bool"); !ok || ty.K != TyBool {
		t.Fatalf("expected bool")
	}
	if ty, ok := Named("void"); !ok || ty.K != TyVoid {
		t.Fatalf("expected void")
	}
}

func TestFits(t *testing.T) {
	cases := []struct {
		t    Type
		mag  uint64
		neg  bool
		want bool
	}{
		{Prim(TyI8), 127, false, true},
		{Prim(TyI8), 128, false, false},
		{Prim(TyI8), 128, true, true},
		{Prim(TyI8), 129, true, false},
		{Prim(TyU8), 255, false, true},
		{Prim(TyU8), 256, false, false},
		{Prim(TyU8), 1, true, false},
		{Prim(TyU8), 0, true, true},
		{Prim(TyI32), 2147483648, true, true},
		{Prim(TyI32), 2147483648, false, false},
		{Prim(TyU64), 18446744073709551615, false, true},
		{Prim(TyI64), 9223372036854775808, true, true},
		{Prim(TyI64), 9223372036854775808, false, false},
		{Prim(TyIntLit), 18446744073709551615, false, true},
		{Prim(TyBool), 0, false, false},
	}
	for _, c := range cases {
		if got := Fits(c.t, c.mag, c.neg); got != c.want {
			t.Fatalf("Fits(%s, %d, %v) = %v, want %v", c.t, c.mag, c.neg, got, c.want)
		}
	}
}

func TestParseDigits(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"5_000_", 5000, true},
		{"0______1_2_3_4_5_6_7_8_9_____", 123456789, true},
		{"18446744073709551616", 0, false},
		{"___", 0, false},
	}
	for _, c := range cases {
		v, ok := ParseDigits(c.in)
		if v != c.want || ok != c.ok {
			t.Fatalf("ParseDigits(%q) = (%d, %v), want (%d, %v)", c.in, v, ok, c.want, c.ok)
		}
	}
}

func TestResolve(t *testing.T) {
	f := source.NewFile("t.toy", "fn(*u8, [i32; 4]): bool")
	u8 := &ast.NamedType{Name: ast.Ident{S: source.Span{Offset: 4, Len: 2}}, S: source.Span{Offset: 4, Len: 2}}
	i32 := &ast.NamedType{Name: ast.Ident{S: source.Span{Offset: 9, Len: 3}}, S: source.Span{Offset: 9, Len: 3}}
	boolT := &ast.NamedType{Name: ast.Ident{S: source.Span{Offset: 19, Len: 4}}, S: source.Span{Offset: 19, Len: 4}}
	te := &ast.FuncType{
		Params: []ast.TypeExpr{
			&ast.PointerType{Elem: u8, S: source.Span{Offset: 3, Len: 3}},
			&ast.ArrayType{Elem: i32, Size: &ast.IntLit{Suffix: -1, S: source.Span{Offset: 14, Len: 1}}, S: source.Span{Offset: 8, Len: 8}},
		},
		Ret: boolT,
		S:   source.Span{Offset: 0, Len: 23},
	}
	got, err := Resolve(f, te)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "fn(*u8, [i32]): bool" {
		t.Fatalf("expected fn(*u8, [i32]): bool, got %s", got)
	}

	bad := source.NewFile("t.toy", "str")
	_, err = Resolve(bad, &ast.NamedType{Name: ast.Ident{S: source.Span{Len: 3}}, S: source.Span{Len: 3}})
	if !diag.Is(err, diag.UnknownType) {
		t.Fatalf("expected unknown type, got %v", err)
	}
}
