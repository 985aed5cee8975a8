package expr

import "sort"

func (c *ConstNode) NodeCount() int { return 1 }
func (v *VarNode) NodeCount() int   { return 1 }
func (u *NegNode) NodeCount() int   { return 1 + u.Child.NodeCount() }
func (b *AddNode) NodeCount() int   { return 1 + b.Left.NodeCount() + b.Right.NodeCount() }
func (b *MulNode) NodeCount() int   { return 1 + b.Left.NodeCount() + b.Right.NodeCount() }
func (p *ExpNode) NodeCount() int   { return 1 + p.Base.NodeCount() }

func (c *ConstNode) Depth() int { return 1 }
func (v *VarNode) Depth() int   { return 1 }
func (u *NegNode) Depth() int   { return 1 + u.Child.Depth() }
func (b *AddNode) Depth() int   { return 1 + maxDepth(b.Left, b.Right) }
func (b *MulNode) Depth() int   { return 1 + maxDepth(b.Left, b.Right) }
func (p *ExpNode) Depth() int   { return 1 + p.Base.Depth() }

func maxDepth(l, r Node) int {
	ld := l.Depth()
	rd := r.Depth()
	if ld > rd {
		return ld
	}
	return rd
}

// Variables returns the distinct free variable names in the tree, sorted.
func Variables(node Node) []string {
	seen := map[string]struct{}{}
	collectVars(node, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectVars(node Node, seen map[string]struct{}) {
	switch n := node.(type) {
	case *VarNode:
		seen[n.Name] = struct{}{}
	case *NegNode:
		collectVars(n.Child, seen)
	case *AddNode:
		collectVars(n.Left, seen)
		collectVars(n.Right, seen)
	case *MulNode:
		collectVars(n.Left, seen)
		collectVars(n.Right, seen)
	case *ExpNode:
		collectVars(n.Base, seen)
	}
}

// ContainsVar reports whether the named variable occurs in the tree.
func ContainsVar(node Node, name string) bool {
	switch n := node.(type) {
	case *VarNode:
		return n.Name == name
	case *NegNode:
		return ContainsVar(n.Child, name)
	case *AddNode:
		return ContainsVar(n.Left, name) || ContainsVar(n.Right, name)
	case *MulNode:
		return ContainsVar(n.Left, name) || ContainsVar(n.Right, name)
	case *ExpNode:
		return ContainsVar(n.Base, name)
	default:
		return false
	}
}
