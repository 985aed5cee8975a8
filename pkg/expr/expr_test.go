package expr

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertEval(t *testing.T, node Node, env Env, expected float64) {
	t.Helper()
	got, err := Eval(node, env)
	require.NoError(t, err, "Eval(%s)", node)
	assert.Equal(t, expected, got, "Eval(%s)", node)
}

func TestEvalConstants(t *testing.T) {
	assertEval(t, Add(Constant(20), Constant(22)), nil, 42.0)
	assertEval(t, Mul(Constant(2), Constant(21)), nil, 42.0)
	assertEval(t, Power(Constant(2), 6), nil, 64.0)
	assertEval(t, Negate(Constant(42)), nil, -42.0)
}

func TestEvalVariables(t *testing.T) {
	a := Variable("a")
	b := Variable("b")
	env := Vars(map[string]float64{"a": 2.0, "b": 5.0})

	assertEval(t, Add(a, b), env, 7.0)
	assertEval(t, Mul(a, b), env, 10.0)
	assertEval(t, Power(a, 3), env, 8.0)
	assertEval(t, Power(b, 2), env, 25.0)
	assertEval(t, Negate(a), env, -2.0)
	assertEval(t, Negate(b), env, -5.0)
}

func TestEvalCompound(t *testing.T) {
	env := Vars(map[string]float64{"a": 2.0, "b": 5.0})
	node := Add(
		Mul(Variable("a"), Variable("b")),
		Mul(Negate(Constant(3)), Constant(6)),
	)
	assertEval(t, node, env, -8.0)
}

func TestEvalPowerEdgeCases(t *testing.T) {
	assertEval(t, Power(Constant(0), 0), nil, 1.0)
	assertEval(t, Power(Constant(7), 0), nil, 1.0)
	assertEval(t, Power(Constant(2), -1), nil, 0.5)
	assertEval(t, Power(Constant(-2), 3), nil, -8.0)

	got, err := Eval(Power(Constant(0), -1), nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1), "0^-1 = %v, want +Inf", got)

	got, err = Eval(Mul(Constant(math.Inf(1)), Constant(0)), nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got), "Inf*0 = %v, want NaN", got)
}

func TestEvalUnboundVariable(t *testing.T) {
	_, err := Eval(Variable("a"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnboundVariable))

	_, err = Eval(Variable("c"), Vars(map[string]float64{"a": 2.0}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnboundVariable))

	var unbound *UnboundVariableError
	require.True(t, errors.As(err, &unbound))
	assert.Equal(t, "c", unbound.Name)
	assert.Equal(t, `unbound variable "c"`, err.Error())
}

func TestEvalStopsAtFirstUnbound(t *testing.T) {
	var looked []string
	env := func(name string) (float64, bool) {
		looked = append(looked, name)
		return 0, false
	}

	_, err := Eval(Add(Variable("p"), Variable("q")), env)
	require.Error(t, err)
	assert.Equal(t, []string{"p"}, looked)
}

func TestEvalSharedSubtree(t *testing.T) {
	calls := 0
	env := func(name string) (float64, bool) {
		calls++
		return 3, true
	}
	x := Variable("x")
	sq := Mul(x, x)

	assertEval(t, Add(sq, sq), env, 18)
	assert.Equal(t, 4, calls)
}

func TestFormat(t *testing.T) {
	a := Variable("a")
	b := Variable("b")

	tests := []struct {
		node Node
		want string
	}{
		{Add(Constant(20), Constant(22)), "(20.0 + 22.0)"},
		{Mul(Constant(2), Constant(21)), "(2.0 * 21.0)"},
		{Power(Constant(2), 6), "2.0^6"},
		{Negate(Constant(42)), "-42.0"},
		{Add(a, b), "(a + b)"},
		{Mul(a, b), "(a * b)"},
		{Power(a, 3), "a^3"},
		{Power(b, 2), "b^2"},
		{Negate(a), "-a"},
		{Negate(b), "-b"},
		{Add(Mul(a, b), Mul(Negate(Constant(3)), Constant(6))), "((a * b) + (-3.0 * 6.0))"},
		{Negate(Add(a, b)), "-(a + b)"},
		{Negate(Negate(a)), "--a"},
		{Power(Add(a, b), 2), "(a + b)^2"},
		{Power(Power(a, 2), 3), "a^2^3"},
		{Power(a, -2), "a^-2"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.node))
			assert.Equal(t, tc.want, tc.node.String())
		})
	}
}

func TestFormatConst(t *testing.T) {
	tests := []struct {
		val  float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{-3, "-3.0"},
		{0.5, "0.5"},
		{3.14159, "3.14159"},
		{0.001, "0.001"},
		{1234567, "1234567.0"},
		{1e7, "1.0E7"},
		{1.5e10, "1.5E10"},
		{1e-4, "1.0E-4"},
		{-2.5e-7, "-2.5E-7"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, formatConst(tc.val), "formatConst(%v)", tc.val)
	}
}

func TestLaTeX(t *testing.T) {
	x := Variable("x")
	y := Variable("y")

	tests := []struct {
		node Node
		want string
	}{
		{Add(x, y), "{x} + {y}"},
		{Mul(Constant(3), x), "{3.0} \\cdot {x}"},
		{Mul(Add(x, y), x), "{\\left({x} + {y}\\right)} \\cdot {x}"},
		{Power(x, 2), "{x}^{2}"},
		{Power(Mul(x, y), 2), "{\\left({x} \\cdot {y}\\right)}^{2}"},
		{Power(Constant(-2), 2), "{\\left(-2.0\\right)}^{2}"},
		{Negate(x), "-{x}"},
		{Negate(Add(x, y)), "-{\\left({x} + {y}\\right)}"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.node.LaTeX(), "LaTeX(%s)", tc.node)
	}
}

func TestNodeCountAndDepth(t *testing.T) {
	x := Variable("x")
	node := Add(Mul(Constant(3), Power(x, 2)), Negate(x))

	assert.Equal(t, 7, node.NodeCount())
	assert.Equal(t, 4, node.Depth())
	assert.Equal(t, 1, x.NodeCount())
	assert.Equal(t, 1, x.Depth())
}

func TestVariables(t *testing.T) {
	node := Add(Mul(Variable("z"), Variable("a")), Power(Negate(Variable("z")), 2))

	assert.Equal(t, []string{"a", "z"}, Variables(node))
	assert.Empty(t, Variables(Constant(1)))
	assert.True(t, ContainsVar(node, "a"))
	assert.False(t, ContainsVar(node, "b"))
}

func TestEqual(t *testing.T) {
	x := Variable("x")

	assert.True(t, Equal(Add(x, Constant(1)), Add(Variable("x"), Constant(1))))
	assert.True(t, Equal(Constant(math.NaN()), Constant(math.NaN())))
	assert.False(t, Equal(Constant(0), Constant(math.Copysign(0, -1))))
	assert.False(t, Equal(Add(x, x), Mul(x, x)))
	assert.False(t, Equal(Power(x, 2), Power(x, 3)))
	assert.False(t, Equal(Variable("x"), Variable("y")))
	assert.False(t, Equal(Negate(x), x))
}

func TestConstructorsRejectNil(t *testing.T) {
	var missing *VarNode

	assert.Panics(t, func() { Negate(nil) })
	assert.Panics(t, func() { Add(Constant(1), nil) })
	assert.Panics(t, func() { Mul(nil, Constant(1)) })
	assert.Panics(t, func() { Power(missing, 2) })
	assert.NotPanics(t, func() { Add(Constant(1), Constant(2)) })
}
