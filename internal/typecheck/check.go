// Package typecheck verifies a parsed module against the type algebra and
// produces the typed IR. Checking stops at the first error.
package typecheck

import (
	"fmt"

	"toylang/internal/ast"
	"toylang/internal/diag"
	"toylang/internal/env"
	"toylang/internal/ir"
	"toylang/internal/source"
	"toylang/internal/types"
)

type checker struct {
	file  *source.File
	arena *env.Arena
	b     *env.Builder
}

// none is the absent expectation: nothing in context constrains the type.
var none types.Type

// Check type-checks m, whose spans refer to f.
func Check(f *source.File, m *ast.Module) (*ir.Module, error) {
	arena := env.NewArena()
	c := &checker{file: f, arena: arena, b: env.NewBuilder(f, arena)}
	scope, err := c.b.Build(m, env.NoScope)
	if err != nil {
		return nil, err
	}
	out := &ir.Module{File: f}
	out.Stmts, _, err = c.stmts(scope, m.Stmts, false)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checker) name(s source.Span) string { return c.file.Text(s) }

// stmts checks list in order. Each statement sees the bindings of the ones
// before it; the returned scope is the one in effect after the last.
func (c *checker) stmts(scope env.ScopeID, list []ast.Stmt, inBlock bool) ([]ir.Stmt, env.ScopeID, error) {
	out := make([]ir.Stmt, 0, len(list))
	for _, st := range list {
		next, err := c.b.Extend(scope, st, inBlock)
		if err != nil {
			return nil, env.NoScope, err
		}
		s, err := c.stmt(scope, st)
		if err != nil {
			return nil, env.NoScope, err
		}
		out = append(out, s)
		scope = next
	}
	return out, scope, nil
}

func (c *checker) stmt(scope env.ScopeID, st ast.Stmt) (ir.Stmt, error) {
	switch st := st.(type) {
	case *ast.FuncDef:
		return c.function(scope, st)
	case *ast.ExternFunc:
		params, err := c.params(st.Params)
		if err != nil {
			return nil, err
		}
		ret, err := c.b.ReturnType(st.Ret)
		if err != nil {
			return nil, err
		}
		return &ir.Extern{Name: st.Name.S, Params: params, Ret: ret, S: st.S}, nil
	case *ast.LetStmt:
		want, err := types.Resolve(c.file, st.Type)
		if err != nil {
			return nil, err
		}
		init, err := c.expr(scope, st.Init, want)
		if err != nil {
			return nil, err
		}
		if !types.Equal(init.Type(), want) {
			return nil, diag.Errorf(diag.InitializerTypeMismatch, st.Init.Span(),
				"cannot initialize %q of type %s with a value of type %s", c.name(st.Name.S), want, init.Type())
		}
		return &ir.Let{Name: st.Name.S, Ty: want, Init: init, S: st.S}, nil
	case *ast.ReturnStmt:
		ret, ok := c.arena.Lookup(scope, env.ReturnKey)
		if !ok {
			return nil, diag.Errorf(diag.ReturnOutsideFunction, st.S, "return outside of a function")
		}
		if st.Expr == nil {
			if ret.K != types.TyVoid {
				return nil, diag.Errorf(diag.ReturnTypeMismatch, st.S, "missing return value of type %s", ret)
			}
			return &ir.Return{S: st.S}, nil
		}
		v, err := c.expr(scope, st.Expr, ret)
		if err != nil {
			return nil, err
		}
		if !types.Equal(v.Type(), ret) {
			return nil, diag.Errorf(diag.ReturnTypeMismatch, st.Expr.Span(), "cannot return %s from a function returning %s", v.Type(), ret)
		}
		return &ir.Return{Value: v, S: st.S}, nil
	}
	panic(fmt.Sprintf("typecheck: unexpected statement %T", st))
}

func (c *checker) params(ps []ast.Param) ([]ir.Param, error) {
	out := make([]ir.Param, 0, len(ps))
	for _, p := range ps {
		t, err := c.b.ParamType(p)
		if err != nil {
			return nil, err
		}
		out = append(out, ir.Param{Name: p.Name.S, Ty: t})
	}
	return out, nil
}

func (c *checker) function(scope env.ScopeID, fn *ast.FuncDef) (*ir.Function, error) {
	fscope, err := c.b.Function(scope, fn)
	if err != nil {
		return nil, err
	}
	params, err := c.params(fn.Params)
	if err != nil {
		return nil, err
	}
	ret, _ := c.arena.LookupLocal(fscope, env.ReturnKey)
	body, err := c.expr(fscope, fn.Body, ret)
	if err != nil {
		return nil, err
	}
	if !types.Equal(body.Type(), ret) {
		return nil, diag.Errorf(diag.ReturnTypeMismatch, fn.Body.Span(),
			"function %q returns %s, expected %s", c.name(fn.Name.S), body.Type(), ret)
	}
	return &ir.Function{Name: fn.Name.S, Params: params, Ret: ret, Body: body, S: fn.S}, nil
}
