package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	x := Variable("x")
	y := Variable("y")
	z := Variable("z")

	tests := []struct {
		name string
		node Node
		wrt  string
		want string
	}{
		{"constant", Constant(42.0), "x", "0.0"},
		{"same variable", x, "x", "1.0"},
		{"other variable", y, "x", "0.0"},
		{"constant times variable", Mul(Constant(5.0), y), "y", "(5.0 * 1.0)"},
		{"variable times constant", Mul(y, Constant(5.0)), "y", "(5.0 * 1.0)"},
		{"constant times power", Mul(Constant(3.0), Power(z, 2)), "z", "(3.0 * (2.0 * (z^1 * 1.0)))"},
		{"product rule", Mul(x, y), "x", "((x * 0.0) + (1.0 * y))"},
		{"product of squares", Mul(x, Power(x, 2)), "x", "((x * (2.0 * (x^1 * 1.0))) + (1.0 * x^2))"},
		{"sum", Add(x, Constant(7)), "x", "(1.0 + 0.0)"},
		{"negation", Negate(x), "x", "-1.0"},
		{"negated sum", Negate(Add(x, y)), "y", "-(0.0 + 1.0)"},
		{"chain through compound base", Power(Add(x, Constant(1)), 3), "x", "(3.0 * ((x + 1.0)^2 * (1.0 + 0.0)))"},
		{"zero exponent", Power(x, 0), "x", "(0.0 * (x^-1 * 1.0))"},
		{"negative exponent", Power(x, -2), "x", "(-2.0 * (x^-3 * 1.0))"},
		{"nested product constant left", Mul(Constant(2), Mul(x, y)), "y", "(2.0 * ((x * 1.0) + (0.0 * y)))"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(Diff(tc.node, tc.wrt)))
		})
	}
}

// Both special cases match a product of two constants; the constant-on-right
// rule is checked first.
func TestDiffProductOfConstants(t *testing.T) {
	got := Diff(Mul(Constant(2), Constant(3)), "x")

	assert.Equal(t, "(3.0 * 0.0)", Format(got))
	assert.True(t, Equal(Mul(Constant(3), Constant(0)), got))
}

func TestDiffStructure(t *testing.T) {
	z := Variable("z")
	got := Diff(Mul(Constant(3), Power(z, 3)), "z")

	want := Mul(Constant(3), Mul(Constant(3), Mul(Power(z, 2), Constant(1))))
	assert.True(t, Equal(want, got), "Diff = %s, want %s", got, want)
}

func TestDiffDoesNotMutate(t *testing.T) {
	x := Variable("x")
	node := Add(Mul(x, x), Power(Negate(x), 2))
	before := Format(node)

	Diff(node, "x")
	Diff(node, "y")

	assert.Equal(t, before, Format(node))
}

func TestDiffN(t *testing.T) {
	x := Variable("x")
	node := Power(x, 3)

	assert.Same(t, node, DiffN(node, "x", 0))
	assert.Equal(t, Format(Diff(node, "x")), Format(DiffN(node, "x", 1)))

	second := DiffN(node, "x", 2)
	assertEval(t, second, Vars(map[string]float64{"x": 2}), 12)

	third := DiffN(node, "x", 3)
	assertEval(t, third, Vars(map[string]float64{"x": 5}), 6)
}
