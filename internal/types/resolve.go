package types

import (
	"toylang/internal/ast"
	"toylang/internal/diag"
	"toylang/internal/source"
)

// Resolve turns a syntactic type annotation into a Type. An omitted
// function-type return resolves to void.
func Resolve(f *source.File, te ast.TypeExpr) (Type, error) {
	switch te := te.(type) {
	case *ast.NamedType:
		name := f.Text(te.Name.S)
		t, ok := Named(name)
		if !ok {
			return Type{}, diag.Errorf(diag.UnknownType, te.S, "unknown type %q", name)
		}
		return t, nil
	case *ast.PointerType:
		elem, err := Resolve(f, te.Elem)
		if err != nil {
			return Type{}, err
		}
		return PointerTo(elem), nil
	case *ast.ArrayType:
		elem, err := Resolve(f, te.Elem)
		if err != nil {
			return Type{}, err
		}
		return ArrayOf(elem, te.Size), nil
	case *ast.FuncType:
		params := make([]Type, 0, len(te.Params))
		for _, p := range te.Params {
			pt, err := Resolve(f, p)
			if err != nil {
				return Type{}, err
			}
			params = append(params, pt)
		}
		ret := Prim(TyVoid)
		if te.Ret != nil {
			r, err := Resolve(f, te.Ret)
			if err != nil {
				return Type{}, err
			}
			ret = r
		}
		return FuncOf(params, ret), nil
	}
	return Type{}, diag.Errorf(diag.UnknownType, te.Span(), "unsupported type expression")
}
