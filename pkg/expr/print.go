package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders the tree in its canonical display form. Sums and products
// are always parenthesised; negations and power bases never are, so
// Negate(Add(a, b)) prints as "-(a + b)" only because the sum carries its
// own parentheses.
func Format(node Node) string {
	var sb strings.Builder
	writeNode(&sb, node)
	return sb.String()
}

func writeNode(sb *strings.Builder, node Node) {
	switch n := node.(type) {
	case *ConstNode:
		sb.WriteString(formatConst(n.Val))
	case *VarNode:
		sb.WriteString(n.Name)
	case *NegNode:
		sb.WriteByte('-')
		writeNode(sb, n.Child)
	case *AddNode:
		sb.WriteByte('(')
		writeNode(sb, n.Left)
		sb.WriteString(" + ")
		writeNode(sb, n.Right)
		sb.WriteByte(')')
	case *MulNode:
		sb.WriteByte('(')
		writeNode(sb, n.Left)
		sb.WriteString(" * ")
		writeNode(sb, n.Right)
		sb.WriteByte(')')
	case *ExpNode:
		writeNode(sb, n.Base)
		sb.WriteByte('^')
		sb.WriteString(strconv.FormatInt(int64(n.Exp), 10))
	default:
		panic(fmt.Sprintf("expr: unhandled node %T", node))
	}
}

// formatConst renders v with at least one fractional digit: plain decimal
// for 1e-3 <= |v| < 1e7, scientific ("1.0E7", "2.5E-4") outside that range.
func formatConst(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'E', -1, 64)
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.ContainsRune(mant, '.') {
		mant += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(e)
}

// String methods

func (c *ConstNode) String() string { return Format(c) }
func (v *VarNode) String() string   { return Format(v) }
func (u *NegNode) String() string   { return Format(u) }
func (b *AddNode) String() string   { return Format(b) }
func (b *MulNode) String() string   { return Format(b) }
func (p *ExpNode) String() string   { return Format(p) }

// LaTeX methods

// LaTeX renders the tree as a LaTeX math fragment. Unlike Format it only
// parenthesises where precedence requires it.
func LaTeX(node Node) string {
	switch n := node.(type) {
	case *ConstNode:
		return formatConst(n.Val)
	case *VarNode:
		return n.Name
	case *NegNode:
		return fmt.Sprintf("-{%s}", latexOperand(n.Child, false))
	case *AddNode:
		return fmt.Sprintf("{%s} + {%s}", LaTeX(n.Left), LaTeX(n.Right))
	case *MulNode:
		return fmt.Sprintf("{%s} \\cdot {%s}", latexOperand(n.Left, false), latexOperand(n.Right, false))
	case *ExpNode:
		return fmt.Sprintf("{%s}^{%d}", latexOperand(n.Base, true), n.Exp)
	default:
		panic(fmt.Sprintf("expr: unhandled node %T", node))
	}
}

// latexOperand wraps sums, and for power bases anything but an atom, in
// \left( \right).
func latexOperand(node Node, base bool) string {
	s := LaTeX(node)
	switch n := node.(type) {
	case *AddNode:
		return "\\left(" + s + "\\right)"
	case *VarNode:
		return s
	case *ConstNode:
		if base && math.Signbit(n.Val) {
			return "\\left(" + s + "\\right)"
		}
		return s
	default:
		if base {
			return "\\left(" + s + "\\right)"
		}
		return s
	}
}

func (c *ConstNode) LaTeX() string { return LaTeX(c) }
func (v *VarNode) LaTeX() string   { return LaTeX(v) }
func (u *NegNode) LaTeX() string   { return LaTeX(u) }
func (b *AddNode) LaTeX() string   { return LaTeX(b) }
func (b *MulNode) LaTeX() string   { return LaTeX(b) }
func (p *ExpNode) LaTeX() string   { return LaTeX(p) }
