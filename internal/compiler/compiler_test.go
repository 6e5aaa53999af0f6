package compiler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"toylang/internal/diag"
	"toylang/internal/lexer"
	"toylang/internal/source"
	"toylang/internal/types"
)

func TestTokenizeKeepsWhitespace(t *testing.T) {
	toks := Tokenize("fn main")
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(toks))
	}
	if toks[1].Kind != lexer.TokenWhitespace {
		t.Fatalf("expected whitespace, got %s", toks[1].Kind)
	}
}

func TestCompile(t *testing.T) {
	f := source.NewFile("main.toy", "fn sum(lhs: i32, rhs: i32): i32 => lhs + rhs;\nfn main(): i32 => sum(1, 2);\n")
	u, err := Compile(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fns := u.IR.Functions()
	if len(fns) != 2 || u.IR.Name(fns[1].Name) != "main" {
		t.Fatalf("expected functions sum and main")
	}
	if !types.Equal(fns[1].Body.Type(), types.Prim(types.TyI32)) {
		t.Fatalf("expected i32 body, got %s", fns[1].Body.Type())
	}
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		src    string
		code   diag.Code
		hasAST bool
	}{
		{"fn main( => 1", diag.UnexpectedToken, false},
		{"fn main(): i32 => true;", diag.ReturnTypeMismatch, true},
	}
	for _, tc := range cases {
		u, err := Compile(source.NewFile("bad.toy", tc.src))
		if !diag.Is(err, tc.code) {
			t.Fatalf("expected %s, got %v", tc.code, err)
		}
		if (u.Module != nil) != tc.hasAST {
			t.Fatalf("expected AST present=%v for %q", tc.hasAST, tc.src)
		}
		if u.IR != nil {
			t.Fatalf("expected no IR for %q", tc.src)
		}
	}
}

func TestCompileAll(t *testing.T) {
	var files []*source.File
	for i := 0; i < 8; i++ {
		src := fmt.Sprintf("fn f%d(): i32 => %d;", i, i)
		if i == 5 {
			src = "fn f5(): i32 => nope;"
		}
		files = append(files, source.NewFile(fmt.Sprintf("u%d.toy", i), src))
	}
	units, errs := CompileAll(context.Background(), files, 3)
	for i := range files {
		if units[i] == nil || units[i].File != files[i] {
			t.Fatalf("unit %d does not belong to its file", i)
		}
		if i == 5 {
			if !diag.Is(errs[i], diag.UnboundIdentifier) {
				t.Fatalf("expected %s for unit 5, got %v", diag.UnboundIdentifier, errs[i])
			}
			continue
		}
		if errs[i] != nil {
			t.Fatalf("unexpected error for unit %d: %v", i, errs[i])
		}
	}
}

func TestCompileAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	files := []*source.File{source.NewFile("a.toy", "fn a() => { };")}
	units, errs := CompileAll(ctx, files, 1)
	if !errors.Is(errs[0], context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", errs[0])
	}
	if units[0].File != files[0] {
		t.Fatalf("expected unit to keep its file")
	}
}
