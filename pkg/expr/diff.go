package expr

import "fmt"

// Diff returns the derivative of node with respect to the variable x.
//
// The result is not simplified. Rules are tried in this order and the first
// match wins:
//
//	a * k   ->  k * a'            (constant on the right)
//	k * b   ->  k * b'            (constant on the left)
//	a * b   ->  (a * b') + (a' * b)
//	a + b   ->  a' + b'
//	a^e     ->  e * (a^(e-1) * a')
//	-a      ->  -(a')
//	k       ->  0
//	v       ->  1 if v == x, else 0
//
// A product of two constants therefore takes the first rule.
func Diff(node Node, x string) Node {
	switch n := node.(type) {
	case *MulNode:
		if k, ok := n.Right.(*ConstNode); ok {
			return Mul(k, Diff(n.Left, x))
		}
		if k, ok := n.Left.(*ConstNode); ok {
			return Mul(k, Diff(n.Right, x))
		}
		return Add(
			Mul(n.Left, Diff(n.Right, x)),
			Mul(Diff(n.Left, x), n.Right),
		)

	case *AddNode:
		return Add(Diff(n.Left, x), Diff(n.Right, x))

	case *ExpNode:
		// Exp-1 wraps at math.MinInt32 like any int32 arithmetic.
		return Mul(
			Constant(float64(n.Exp)),
			Mul(Power(n.Base, n.Exp-1), Diff(n.Base, x)),
		)

	case *NegNode:
		return Negate(Diff(n.Child, x))

	case *ConstNode:
		return Constant(0)

	case *VarNode:
		if n.Name == x {
			return Constant(1)
		}
		return Constant(0)

	default:
		panic(fmt.Sprintf("expr: unhandled node %T", node))
	}
}

// DiffN applies Diff order times. An order of zero or less returns node.
func DiffN(node Node, x string, order int) Node {
	for i := 0; i < order; i++ {
		node = Diff(node, x)
	}
	return node
}
