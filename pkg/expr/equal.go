package expr

import "math"

// Equal reports whether a and b have the same shape and fields. Constants
// compare by bit pattern, so NaN equals NaN and 0.0 differs from -0.0.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *ConstNode:
		y, ok := b.(*ConstNode)
		return ok && math.Float64bits(x.Val) == math.Float64bits(y.Val)
	case *VarNode:
		y, ok := b.(*VarNode)
		return ok && x.Name == y.Name
	case *NegNode:
		y, ok := b.(*NegNode)
		return ok && Equal(x.Child, y.Child)
	case *AddNode:
		y, ok := b.(*AddNode)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *MulNode:
		y, ok := b.(*MulNode)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *ExpNode:
		y, ok := b.(*ExpNode)
		return ok && x.Exp == y.Exp && Equal(x.Base, y.Base)
	default:
		return false
	}
}
