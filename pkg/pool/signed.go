package pool

import (
	"math"
	"math/rand"

	"github.com/wildfunctions/symdiff/pkg/expr"
)

func init() {
	Register("signed", func() Pool { return &SignedPool{} })
}

var signedVars = []string{"x", "y", "z"}

// SignedPool extends polynomial with negation, a third variable and
// quarter-step fractional constants.
type SignedPool struct{}

func (p *SignedPool) Name() string { return "signed" }

func (p *SignedPool) Variables() []string { return signedVars }

func (p *SignedPool) RandomLeaf(rng *rand.Rand) expr.Node {
	r := rng.Float64()
	switch {
	case r < 0.45:
		return expr.Variable(pick(rng, signedVars))
	case r < 0.8:
		return smallInt(rng)
	default:
		// multiples of 0.25 in [-2, 2]
		return expr.Constant(math.Round((rng.Float64()*4-2)*4) / 4)
	}
}

func (p *SignedPool) RandomUnary(rng *rand.Rand, child expr.Node) expr.Node {
	if rng.Float64() < 0.5 {
		return expr.Negate(child)
	}
	return expr.Power(child, int32(rng.Intn(3)+1))
}

func (p *SignedPool) RandomBinary(rng *rand.Rand, left, right expr.Node) expr.Node {
	if rng.Float64() < 0.5 {
		return expr.Add(left, right)
	}
	return expr.Mul(left, right)
}

func (p *SignedPool) RandomTree(rng *rand.Rand, maxDepth int) expr.Node {
	return randomTree(p, rng, maxDepth)
}
