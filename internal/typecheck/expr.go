package typecheck

import (
	"fmt"

	"toylang/internal/ast"
	"toylang/internal/diag"
	"toylang/internal/env"
	"toylang/internal/ir"
	"toylang/internal/types"
)

// expr checks e under scope. want is the type the context expects, or none;
// an unsettled literal result is settled into it when possible.
func (c *checker) expr(scope env.ScopeID, e ast.Expr, want types.Type) (ir.Expr, error) {
	x, err := c.exprKind(scope, e, want)
	if err != nil {
		return nil, err
	}
	if err := c.settle(x, want); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *checker) exprKind(scope env.ScopeID, e ast.Expr, want types.Type) (ir.Expr, error) {
	switch e := e.(type) {
	case *ast.BlockExpr:
		return c.block(scope, e, want)
	case *ast.UnaryExpr:
		return c.unary(scope, e, want)
	case *ast.BinaryExpr:
		return c.binary(scope, e, want)
	case *ast.IfExpr:
		return c.ifExpr(scope, e, want)
	case *ast.CallExpr:
		return c.call(scope, e)
	case *ast.AccessExpr:
		return c.access(scope, e)
	case *ast.ArrayLit:
		return c.array(scope, e, want)
	case *ast.IntLit:
		return c.intLit(e, false)
	case *ast.BoolLit:
		return &ir.Bool{Value: e.Value, S: e.S}, nil
	case *ast.IdentExpr:
		name := c.name(e.Name.S)
		t, ok := c.arena.Lookup(scope, name)
		if !ok {
			return nil, diag.Errorf(diag.UnboundIdentifier, e.Name.S, "unbound identifier %q", name)
		}
		return &ir.Ident{Name: e.Name.S, Ty: t}, nil
	}
	panic(fmt.Sprintf("typecheck: unexpected expression %T", e))
}

// block checks b in a fresh child scope. The block's type is its tail's, or
// void without one.
func (c *checker) block(scope env.ScopeID, b *ast.BlockExpr, want types.Type) (*ir.Block, error) {
	stmts, inner, err := c.stmts(c.b.Block(scope), b.Stmts, true)
	if err != nil {
		return nil, err
	}
	out := &ir.Block{Stmts: stmts, Ty: types.Prim(types.TyVoid), S: b.S}
	if b.Tail != nil {
		tail, err := c.expr(inner, b.Tail, want)
		if err != nil {
			return nil, err
		}
		out.Tail = tail
		out.Ty = tail.Type()
	}
	return out, nil
}

func (c *checker) unary(scope env.ScopeID, e *ast.UnaryExpr, want types.Type) (ir.Expr, error) {
	var x ir.Expr
	var err error
	if lit, ok := e.X.(*ast.IntLit); ok && e.Op == ast.Neg {
		x, err = c.intLit(lit, true)
	} else {
		x, err = c.expr(scope, e.X, want)
	}
	if err != nil {
		return nil, err
	}
	return &ir.Unary{Op: e.Op, X: x, Ty: x.Type(), S: e.S}, nil
}

func (c *checker) binary(scope env.ScopeID, e *ast.BinaryExpr, want types.Type) (ir.Expr, error) {
	if e.Op.IsComparison() {
		want = none
	}
	x, err := c.expr(scope, e.X, want)
	if err != nil {
		return nil, err
	}
	if x.Type().K != types.TyIntLit {
		want = x.Type()
	}
	y, err := c.expr(scope, e.Y, want)
	if err != nil {
		return nil, err
	}
	if err := c.unify(x, y); err != nil {
		return nil, err
	}
	if !types.Equal(x.Type(), y.Type()) {
		return nil, diag.Errorf(diag.OperandTypeMismatch, e.S,
			"mismatched operand types for %s: lhs is %s, rhs is %s", e.Op, x.Type(), y.Type())
	}
	out := &ir.Binary{Op: e.Op, X: x, Y: y, Operand: x.Type(), Ty: x.Type(), S: e.S}
	if e.Op.IsComparison() {
		out.Ty = types.Prim(types.TyBool)
	}
	return out, nil
}

// ifExpr requires a boolean condition and equal branch types. A missing
// else branch is void.
func (c *checker) ifExpr(scope env.ScopeID, e *ast.IfExpr, want types.Type) (*ir.If, error) {
	cond, err := c.expr(scope, e.Cond, types.Prim(types.TyBool))
	if err != nil {
		return nil, err
	}
	if cond.Type().K != types.TyBool {
		return nil, diag.Errorf(diag.NonBooleanCondition, e.Cond.Span(), "condition must be bool, found %s", cond.Type())
	}
	then, err := c.block(scope, e.Then, want)
	if err != nil {
		return nil, err
	}
	out := &ir.If{Cond: cond, Then: then, S: e.S}
	if e.Else == nil {
		if then.Ty.K != types.TyVoid {
			return nil, diag.Errorf(diag.BranchTypeMismatch, e.Then.S,
				"if without else must be void, then branch is %s", then.Ty)
		}
		out.Ty = then.Ty
		return out, nil
	}
	if then.Ty.K != types.TyIntLit {
		want = then.Ty
	}
	els, err := c.expr(scope, e.Else, want)
	if err != nil {
		return nil, err
	}
	if err := c.unify(then, els); err != nil {
		return nil, err
	}
	if !types.Equal(then.Ty, els.Type()) {
		return nil, diag.Errorf(diag.BranchTypeMismatch, e.Else.Span(),
			"if branches differ: then is %s, else is %s", then.Ty, els.Type())
	}
	out.Else = els
	out.Ty = then.Ty
	return out, nil
}

func (c *checker) call(scope env.ScopeID, e *ast.CallExpr) (*ir.Call, error) {
	callee, err := c.expr(scope, e.Callee, none)
	if err != nil {
		return nil, err
	}
	ft := callee.Type()
	if ft.K != types.TyFunc {
		return nil, diag.Errorf(diag.NotCallable, e.Callee.Span(), "cannot call a value of type %s", ft)
	}
	if len(e.Args) != len(ft.Params) {
		return nil, diag.Errorf(diag.ArgumentCountMismatch, e.S,
			"expected %d arguments, found %d", len(ft.Params), len(e.Args))
	}
	args := make([]ir.Expr, 0, len(e.Args))
	for i, a := range e.Args {
		arg, err := c.expr(scope, a, ft.Params[i])
		if err != nil {
			return nil, err
		}
		if !types.Equal(arg.Type(), ft.Params[i]) {
			return nil, diag.Errorf(diag.ArgumentTypeMismatch, a.Span(),
				"argument %d is %s, expected %s", i+1, arg.Type(), ft.Params[i])
		}
		args = append(args, arg)
	}
	return &ir.Call{Callee: callee, Args: args, Ty: *ft.Ret, S: e.S}, nil
}

// access indexes an array. Unsettled index literals become usize.
func (c *checker) access(scope env.ScopeID, e *ast.AccessExpr) (*ir.Access, error) {
	base, err := c.expr(scope, e.Base, none)
	if err != nil {
		return nil, err
	}
	if base.Type().K != types.TyArray {
		return nil, diag.Errorf(diag.NotIndexable, e.Base.Span(), "cannot index a value of type %s", base.Type())
	}
	idx, err := c.expr(scope, e.Index, types.Prim(types.TyUSize))
	if err != nil {
		return nil, err
	}
	if !idx.Type().IsIntegral() {
		return nil, diag.Errorf(diag.NonIntegerIndex, e.Index.Span(), "array index must be an integer, found %s", idx.Type())
	}
	return &ir.Access{Base: base, Index: idx, Ty: base.Type().ElemType(), S: e.S}, nil
}

// array requires every element to share one type. The empty array is an
// array of none until context gives it a type.
func (c *checker) array(scope env.ScopeID, e *ast.ArrayLit, want types.Type) (*ir.Array, error) {
	elemWant := none
	if want.K == types.TyArray {
		elemWant = want.ElemType()
	}
	elems := make([]ir.Expr, 0, len(e.Elems))
	for _, el := range e.Elems {
		x, err := c.expr(scope, el, elemWant)
		if err != nil {
			return nil, err
		}
		elems = append(elems, x)
	}
	if len(elems) == 0 {
		return &ir.Array{Ty: types.ArrayOf(types.Prim(types.TyNone), nil), S: e.S}, nil
	}
	elemTy := elems[0].Type()
	for _, x := range elems[1:] {
		if settleable(elemTy, x.Type()) {
			elemTy = x.Type()
		}
	}
	for _, x := range elems {
		if err := c.settle(x, elemTy); err != nil {
			return nil, err
		}
		if !types.Equal(x.Type(), elemTy) {
			return nil, diag.Errorf(diag.HeterogeneousArrayElements, x.Span(),
				"array element is %s, expected %s", x.Type(), elemTy)
		}
	}
	return &ir.Array{Elems: elems, Ty: types.ArrayOf(elemTy, nil), S: e.S}, nil
}

// intLit types a literal from its suffix, or leaves it unsettled. neg marks
// a literal that is the operand of a negation, for the range check.
func (c *checker) intLit(e *ast.IntLit, neg bool) (*ir.Int, error) {
	digits := c.file.Text(e.DigitSpan())
	v, ok := types.ParseDigits(digits)
	if !ok {
		return nil, diag.Errorf(diag.LiteralOutOfRange, e.S, "integer literal %s is too large", digits)
	}
	out := &ir.Int{Value: v, Ty: types.Prim(types.TyIntLit), S: e.S}
	if !e.HasSuffix() {
		return out, nil
	}
	suffix := c.file.Text(e.SuffixSpan())
	t, ok := types.Suffix(suffix)
	if !ok {
		return nil, diag.Errorf(diag.InvalidTypeSuffix, e.SuffixSpan(), "invalid integer suffix %q", suffix)
	}
	if !types.Fits(t, v, neg) {
		return nil, outOfRange(out, t, neg)
	}
	out.Ty = t
	return out, nil
}
