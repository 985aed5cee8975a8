package engine

import (
	"math"

	"github.com/wildfunctions/symdiff/pkg/expr"
)

// Case is the outcome of checking one tree at one point.
type Case struct {
	Index      int                `json:"index"`
	Tree       string             `json:"tree"`
	Derivative string             `json:"derivative"`
	Point      map[string]float64 `json:"point"`
	Symbolic   float64            `json:"symbolic"`
	Numeric    float64            `json:"numeric"`
	Allowed    float64            `json:"allowed"`
	OK         bool               `json:"ok"`
	Error      string             `json:"error,omitempty"`
}

// Check compares Diff(f, x) evaluated at point against the central finite
// difference (f(x+h) - f(x-h)) / 2h with h = step*max(1, |x|).
//
// The allowed error is tol*max(1, |d|) plus a rounding term of 8*eps*|f|/h,
// where |d| and |f| are the derivative and f evaluated with every constant,
// binding and intermediate result replaced by its absolute value.
func Check(f expr.Node, x string, point map[string]float64, step, tol float64) Case {
	c := Case{Point: point}
	d := expr.Diff(f, x)
	c.Derivative = d.String()

	env := expr.Vars(point)
	sym, err := expr.Eval(d, env)
	if err != nil {
		c.Error = err.Error()
		return c
	}
	c.Symbolic = sym

	h := step * math.Max(1, math.Abs(point[x]))
	plus, minus := shift(point, x, h), shift(point, x, -h)
	fp, err := expr.Eval(f, expr.Vars(plus))
	if err != nil {
		c.Error = err.Error()
		return c
	}
	fm, err := expr.Eval(f, expr.Vars(minus))
	if err != nil {
		c.Error = err.Error()
		return c
	}
	c.Numeric = (fp - fm) / (2 * h)

	magF := math.Max(magnitude(f, plus), magnitude(f, minus))
	c.Allowed = tol*math.Max(1, magnitude(d, point)) + 8*epsilon*magF/h

	c.OK = math.Abs(c.Symbolic-c.Numeric) <= c.Allowed
	return c
}

const epsilon = 0x1p-52

func shift(point map[string]float64, x string, dx float64) map[string]float64 {
	out := make(map[string]float64, len(point)+1)
	for k, v := range point {
		out[k] = v
	}
	out[x] += dx
	return out
}

// magnitude evaluates the tree with absolute values throughout. It bounds
// the size of every intermediate result Eval sees.
func magnitude(node expr.Node, point map[string]float64) float64 {
	switch n := node.(type) {
	case *expr.ConstNode:
		return math.Abs(n.Val)
	case *expr.VarNode:
		return math.Abs(point[n.Name])
	case *expr.NegNode:
		return magnitude(n.Child, point)
	case *expr.AddNode:
		return magnitude(n.Left, point) + magnitude(n.Right, point)
	case *expr.MulNode:
		return magnitude(n.Left, point) * magnitude(n.Right, point)
	case *expr.ExpNode:
		return math.Pow(magnitude(n.Base, point), float64(n.Exp))
	default:
		return 0
	}
}
