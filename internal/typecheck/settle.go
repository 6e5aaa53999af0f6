package typecheck

import (
	"toylang/internal/ast"
	"toylang/internal/diag"
	"toylang/internal/ir"
	"toylang/internal/types"
)

// settleable reports whether a value of type have still holds unsettled
// literals that can take on want.
func settleable(have, want types.Type) bool {
	switch {
	case have.K == types.TyIntLit:
		return want.IsInteger()
	case have.K == types.TyArray && want.K == types.TyArray:
		if have.ElemType().K == types.TyNone {
			return true
		}
		return settleable(have.ElemType(), want.ElemType())
	}
	return false
}

// settle gives the unsettled literals of x the type want, rewriting the
// types of the nodes between them and x. Each literal is range-checked.
func (c *checker) settle(x ir.Expr, want types.Type) error {
	if !settleable(x.Type(), want) {
		return nil
	}
	switch x := x.(type) {
	case *ir.Int:
		if !types.Fits(want, x.Value, false) {
			return outOfRange(x, want, false)
		}
		x.Ty = want
	case *ir.Unary:
		if lit, ok := x.X.(*ir.Int); ok && x.Op == ast.Neg {
			if !types.Fits(want, lit.Value, true) {
				return outOfRange(lit, want, true)
			}
			lit.Ty = want
		} else if err := c.settle(x.X, want); err != nil {
			return err
		}
		x.Ty = want
	case *ir.Binary:
		if err := c.settle(x.X, want); err != nil {
			return err
		}
		if err := c.settle(x.Y, want); err != nil {
			return err
		}
		x.Operand = want
		x.Ty = want
	case *ir.If:
		if err := c.settle(x.Then, want); err != nil {
			return err
		}
		if x.Else != nil {
			if err := c.settle(x.Else, want); err != nil {
				return err
			}
		}
		x.Ty = want
	case *ir.Block:
		if x.Tail != nil {
			if err := c.settle(x.Tail, want); err != nil {
				return err
			}
		}
		x.Ty = want
	case *ir.Array:
		for _, el := range x.Elems {
			if err := c.settle(el, want.ElemType()); err != nil {
				return err
			}
		}
		x.Ty = want
	case *ir.Access:
		if err := c.settle(x.Base, types.ArrayOf(want, nil)); err != nil {
			return err
		}
		x.Ty = want
	}
	return nil
}

// unify settles whichever side of a pair is unsettled into the other's type.
func (c *checker) unify(a, b ir.Expr) error {
	switch {
	case settleable(a.Type(), b.Type()):
		return c.settle(a, b.Type())
	case settleable(b.Type(), a.Type()):
		return c.settle(b, a.Type())
	}
	return nil
}

func outOfRange(lit *ir.Int, t types.Type, neg bool) error {
	sign := ""
	if neg {
		sign = "-"
	}
	return diag.Errorf(diag.LiteralOutOfRange, lit.S, "integer literal %s%d does not fit in %s", sign, lit.Value, t)
}
