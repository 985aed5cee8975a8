package expr

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnboundVariable is matched by every error Eval returns for a variable
// that the environment cannot resolve.
var ErrUnboundVariable = errors.New("unbound variable")

// UnboundVariableError reports the variable name Eval failed to resolve.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Name)
}

// Is lets errors.Is(err, ErrUnboundVariable) match.
func (e *UnboundVariableError) Is(target error) bool {
	return target == ErrUnboundVariable
}

// Env resolves a variable name to its value. A nil Env binds nothing.
type Env func(name string) (float64, bool)

// Vars returns an Env backed by a map.
func Vars(m map[string]float64) Env {
	return func(name string) (float64, bool) {
		v, ok := m[name]
		return v, ok
	}
}

func (env Env) lookup(name string) (float64, error) {
	if env != nil {
		if v, ok := env(name); ok {
			return v, nil
		}
	}
	return 0, &UnboundVariableError{Name: name}
}

// Eval computes the value of the tree under env. Evaluation is depth-first,
// left to right, and stops at the first unbound variable. NaN and infinities
// propagate without being reported.
func Eval(node Node, env Env) (float64, error) {
	switch n := node.(type) {
	case *ConstNode:
		return n.Val, nil

	case *VarNode:
		return env.lookup(n.Name)

	case *NegNode:
		v, err := Eval(n.Child, env)
		if err != nil {
			return 0, err
		}
		return -v, nil

	case *AddNode:
		l, err := Eval(n.Left, env)
		if err != nil {
			return 0, err
		}
		r, err := Eval(n.Right, env)
		if err != nil {
			return 0, err
		}
		return l + r, nil

	case *MulNode:
		l, err := Eval(n.Left, env)
		if err != nil {
			return 0, err
		}
		r, err := Eval(n.Right, env)
		if err != nil {
			return 0, err
		}
		return l * r, nil

	case *ExpNode:
		b, err := Eval(n.Base, env)
		if err != nil {
			return 0, err
		}
		return math.Pow(b, float64(n.Exp)), nil

	default:
		panic(fmt.Sprintf("expr: unhandled node %T", node))
	}
}
