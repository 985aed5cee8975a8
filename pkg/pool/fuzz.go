package pool

import (
	fuzz "github.com/google/gofuzz"

	"github.com/wildfunctions/symdiff/pkg/expr"
)

// PointRange bounds the float64 values NewFuzzer produces.
const PointRange = 1.5

// NewFuzzer returns a seeded fuzzer that fills expr.Node values with trees
// from p and float64 values with points in [-PointRange, PointRange].
func NewFuzzer(p Pool, seed int64, maxDepth int) *fuzz.Fuzzer {
	return fuzz.NewWithSeed(seed).NilChance(0).Funcs(
		func(n *expr.Node, c fuzz.Continue) {
			*n = p.RandomTree(c.Rand, maxDepth)
		},
		func(v *float64, c fuzz.Continue) {
			*v = (c.Float64()*2 - 1) * PointRange
		},
	)
}
