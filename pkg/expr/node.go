package expr

// Node is the interface for all expression tree nodes.
//
// The set of implementations is closed: ConstNode, VarNode, NegNode, AddNode,
// MulNode and ExpNode. Every whole-tree pass (Eval, Format, LaTeX, Diff,
// Equal) switches over exactly these six shapes, so a new operator has to be
// added to all of them together.
type Node interface {
	String() string
	LaTeX() string
	NodeCount() int
	Depth() int

	node()
}

// ConstNode represents a literal float64 value.
type ConstNode struct {
	Val float64
}

// VarNode represents a free variable reference.
type VarNode struct {
	Name string
}

// NegNode negates its child.
type NegNode struct {
	Child Node
}

// AddNode is the sum of two child expressions.
type AddNode struct {
	Left, Right Node
}

// MulNode is the product of two child expressions.
type MulNode struct {
	Left, Right Node
}

// ExpNode raises Base to an integer power.
type ExpNode struct {
	Base Node
	Exp  int32
}

func (*ConstNode) node() {}
func (*VarNode) node()   {}
func (*NegNode) node()   {}
func (*AddNode) node()   {}
func (*MulNode) node()   {}
func (*ExpNode) node()   {}

// Constant returns a literal node.
func Constant(v float64) *ConstNode {
	return &ConstNode{Val: v}
}

// Variable returns a reference to the named variable.
func Variable(name string) *VarNode {
	return &VarNode{Name: name}
}

// Negate returns -n.
func Negate(n Node) *NegNode {
	mustChild("Negate", n)
	return &NegNode{Child: n}
}

// Add returns l + r.
func Add(l, r Node) *AddNode {
	mustChild("Add", l)
	mustChild("Add", r)
	return &AddNode{Left: l, Right: r}
}

// Mul returns l * r.
func Mul(l, r Node) *MulNode {
	mustChild("Mul", l)
	mustChild("Mul", r)
	return &MulNode{Left: l, Right: r}
}

// Power returns base^exp.
func Power(base Node, exp int32) *ExpNode {
	mustChild("Power", base)
	return &ExpNode{Base: base, Exp: exp}
}

// mustChild rejects nil children, including typed nil pointers.
func mustChild(ctor string, n Node) {
	isNil := n == nil
	if !isNil {
		switch c := n.(type) {
		case *ConstNode:
			isNil = c == nil
		case *VarNode:
			isNil = c == nil
		case *NegNode:
			isNil = c == nil
		case *AddNode:
			isNil = c == nil
		case *MulNode:
			isNil = c == nil
		case *ExpNode:
			isNil = c == nil
		}
	}
	if isNil {
		panic("expr: nil child passed to " + ctor)
	}
}
