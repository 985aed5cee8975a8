package pool

import (
	"math/rand"

	"github.com/wildfunctions/symdiff/pkg/expr"
)

func init() {
	Register("polynomial", func() Pool { return &PolynomialPool{} })
}

var polynomialVars = []string{"x", "y"}

// PolynomialPool builds polynomial-shaped trees: x, y, small integer
// constants, sums, products and powers with exponents 1 to 3.
type PolynomialPool struct{}

func (p *PolynomialPool) Name() string { return "polynomial" }

func (p *PolynomialPool) Variables() []string { return polynomialVars }

func (p *PolynomialPool) RandomLeaf(rng *rand.Rand) expr.Node {
	if rng.Float64() < 0.5 {
		return expr.Variable(pick(rng, polynomialVars))
	}
	return smallInt(rng)
}

func (p *PolynomialPool) RandomUnary(rng *rand.Rand, child expr.Node) expr.Node {
	return expr.Power(child, int32(rng.Intn(3)+1))
}

func (p *PolynomialPool) RandomBinary(rng *rand.Rand, left, right expr.Node) expr.Node {
	if rng.Float64() < 0.5 {
		return expr.Add(left, right)
	}
	return expr.Mul(left, right)
}

func (p *PolynomialPool) RandomTree(rng *rand.Rand, maxDepth int) expr.Node {
	return randomTree(p, rng, maxDepth)
}
