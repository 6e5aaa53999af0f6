package env

import (
	"toylang/internal/ast"
	"toylang/internal/diag"
	"toylang/internal/source"
	"toylang/internal/types"
)

// Builder creates the scopes of one compilation unit.
//
// Functions are registered for a whole scope level before any body is
// checked, which is what makes forward references and mutual recursion
// legal. Variables become visible one statement at a time.
type Builder struct {
	File  *source.File
	Arena *Arena
}

func NewBuilder(f *source.File, a *Arena) *Builder {
	return &Builder{File: f, Arena: a}
}

// Build opens the module scope under parent and binds the signature of every
// function and extern function declared in m.
func (b *Builder) Build(m *ast.Module, parent ScopeID) (ScopeID, error) {
	id := b.Arena.New(parent)
	for _, st := range m.Stmts {
		var name ast.Ident
		var sig types.Type
		var err error
		switch st := st.(type) {
		case *ast.FuncDef:
			name = st.Name
			sig, err = b.Signature(st.Params, st.Ret)
		case *ast.ExternFunc:
			name = st.Name
			sig, err = b.Signature(st.Params, st.Ret)
		default:
			continue
		}
		if err != nil {
			return NoScope, err
		}
		text := b.File.Text(name.S)
		if _, dup := b.Arena.LookupLocal(id, text); dup {
			return NoScope, diag.Errorf(diag.DuplicateDefinition, name.S, "function %q is defined more than once", text)
		}
		b.Arena.Bind(id, text, sig)
	}
	return id, nil
}

// Signature resolves a function type. Untyped parameters are i32 and an
// omitted return type is void.
func (b *Builder) Signature(params []ast.Param, ret ast.TypeExpr) (types.Type, error) {
	pts := make([]types.Type, 0, len(params))
	for _, p := range params {
		pt, err := b.ParamType(p)
		if err != nil {
			return types.Type{}, err
		}
		pts = append(pts, pt)
	}
	rt, err := b.ReturnType(ret)
	if err != nil {
		return types.Type{}, err
	}
	return types.FuncOf(pts, rt), nil
}

func (b *Builder) ParamType(p ast.Param) (types.Type, error) {
	if p.Type == nil {
		return types.Prim(types.TyI32), nil
	}
	return types.Resolve(b.File, p.Type)
}

func (b *Builder) ReturnType(ret ast.TypeExpr) (types.Type, error) {
	if ret == nil {
		return types.Prim(types.TyVoid), nil
	}
	return types.Resolve(b.File, ret)
}

// Function opens the parameter scope of fn under scope. The declared return
// type is bound under ReturnKey.
func (b *Builder) Function(scope ScopeID, fn *ast.FuncDef) (ScopeID, error) {
	id := b.Arena.New(scope)
	for _, p := range fn.Params {
		pt, err := b.ParamType(p)
		if err != nil {
			return NoScope, err
		}
		name := b.File.Text(p.Name.S)
		if _, dup := b.Arena.LookupLocal(id, name); dup {
			return NoScope, diag.Errorf(diag.DuplicateDefinition, p.Name.S, "parameter %q is declared more than once", name)
		}
		b.Arena.Bind(id, name, pt)
	}
	rt, err := b.ReturnType(fn.Ret)
	if err != nil {
		return NoScope, err
	}
	b.Arena.Bind(id, ReturnKey, rt)
	return id, nil
}

// Extend returns the scope in effect after st. A let opens a child scope
// holding the new binding; other statements leave scope unchanged. Inside a
// block, function declarations are rejected.
func (b *Builder) Extend(scope ScopeID, st ast.Stmt, inBlock bool) (ScopeID, error) {
	switch st := st.(type) {
	case *ast.LetStmt:
		t, err := types.Resolve(b.File, st.Type)
		if err != nil {
			return NoScope, err
		}
		id := b.Arena.New(scope)
		b.Arena.Bind(id, b.File.Text(st.Name.S), t)
		return id, nil
	case *ast.FuncDef:
		if inBlock {
			return NoScope, diag.Errorf(diag.FunctionDefinitionInsideBlock, st.S, "function definition inside block is not allowed")
		}
	case *ast.ExternFunc:
		if inBlock {
			return NoScope, diag.Errorf(diag.FunctionDefinitionInsideBlock, st.S, "extern function declaration inside block is not allowed")
		}
	}
	return scope, nil
}

// Block opens the scope of a block body under scope.
func (b *Builder) Block(scope ScopeID) ScopeID { return b.Arena.New(scope) }
