// SPDX-License-Identifier: MIT
package sym

import "strconv"

// Expr is an immutable symbolic expression tree. Implementations are sealed
// inside this package; values are created through Const, Var, Add and Mul.
type Expr interface {
	// String renders the expression deterministically, fully
	// parenthesized.
	String() string

	// Equal reports structural equality: same node kinds, same leaves,
	// same operand order.
	Equal(o Expr) bool

	isExpr()
}

type constant struct{ v float64 }

type variable struct{ name string }

type sum struct{ x, y Expr }

type product struct{ x, y Expr }

// Const returns a constant expression.
func Const(v float64) Expr { return constant{v: v} }

// Var returns a named symbolic primitive. Two variables are equal exactly
// when their names match.
func Var(name string) Expr { return variable{name: name} }

// Add returns x + y. Constants fold and additive identities collapse:
// Add(Const(0), e) and Add(e, Const(0)) return e unchanged.
// Operands must be non-nil.
func Add(x, y Expr) Expr {
	xc, xConst := x.(constant)
	yc, yConst := y.(constant)
	switch {
	case xConst && yConst:
		return constant{v: xc.v + yc.v}
	case xConst && xc.v == 0:
		return y
	case yConst && yc.v == 0:
		return x
	}
	return sum{x: x, y: y}
}

// Mul returns x * y. Constants fold and multiplicative identities collapse:
// a zero factor yields Const(0), a unit factor yields the other operand.
// Operands must be non-nil.
func Mul(x, y Expr) Expr {
	xc, xConst := x.(constant)
	yc, yConst := y.(constant)
	switch {
	case xConst && yConst:
		return constant{v: xc.v * yc.v}
	case xConst && xc.v == 0, yConst && yc.v == 0:
		return constant{}
	case xConst && xc.v == 1:
		return y
	case yConst && yc.v == 1:
		return x
	}
	return product{x: x, y: y}
}

func (constant) isExpr() {}
func (variable) isExpr() {}
func (sum) isExpr()      {}
func (product) isExpr()  {}

func (c constant) String() string { return strconv.FormatFloat(c.v, 'g', -1, 64) }
func (v variable) String() string { return v.name }
func (s sum) String() string      { return "(" + s.x.String() + "+" + s.y.String() + ")" }
func (p product) String() string  { return "(" + p.x.String() + "*" + p.y.String() + ")" }

func (c constant) Equal(o Expr) bool {
	oc, ok := o.(constant)
	return ok && oc.v == c.v
}

func (v variable) Equal(o Expr) bool {
	ov, ok := o.(variable)
	return ok && ov.name == v.name
}

func (s sum) Equal(o Expr) bool {
	os, ok := o.(sum)
	return ok && s.x.Equal(os.x) && s.y.Equal(os.y)
}

func (p product) Equal(o Expr) bool {
	op, ok := o.(product)
	return ok && p.x.Equal(op.x) && p.y.Equal(op.y)
}
