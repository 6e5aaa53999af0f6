// Package compiler is the front end's public surface: it runs the lexer,
// parser and type checker over one compilation unit and hands back the
// typed IR for the backend.
package compiler

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"toylang/internal/ast"
	"toylang/internal/ir"
	"toylang/internal/lexer"
	"toylang/internal/parser"
	"toylang/internal/source"
	"toylang/internal/typecheck"
)

// Unit is one compiled source file.
type Unit struct {
	File   *source.File
	Module *ast.Module
	IR     *ir.Module
}

// Tokenize returns every token of src, whitespace included.
func Tokenize(src string) []lexer.Spanned { return lexer.Tokenize(src) }

func Parse(f *source.File) (*ast.Module, error) { return parser.Parse(f) }

func Typecheck(f *source.File, m *ast.Module) (*ir.Module, error) { return typecheck.Check(f, m) }

// Compile parses and checks f. On a type error the returned unit still
// carries the AST.
func Compile(f *source.File) (*Unit, error) {
	u := &Unit{File: f}
	m, err := Parse(f)
	if err != nil {
		return u, err
	}
	u.Module = m
	out, err := Typecheck(f, m)
	if err != nil {
		return u, err
	}
	u.IR = out
	return u, nil
}

// CompileAll compiles independent units in parallel, at most jobs at a
// time (GOMAXPROCS when jobs <= 0). units[i] and errs[i] belong to files[i].
// Units not started before ctx is done report ctx.Err().
func CompileAll(ctx context.Context, files []*source.File, jobs int) ([]*Unit, []error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	units := make([]*Unit, len(files))
	errs := make([]error, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				units[i], errs[i] = &Unit{File: f}, err
				return nil
			}
			units[i], errs[i] = Compile(f)
			return nil
		})
	}
	_ = g.Wait()
	return units, errs
}
