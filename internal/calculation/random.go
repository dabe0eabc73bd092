package calculation

import (
	"math"
	"math/rand"

	"github.com/rpgo/enoughcalc/internal/domain"
)

// Uniform supplies uniform samples in [0,1). *rand.Rand satisfies it.
type Uniform interface {
	Float64() float64
}

// DrawParams describes the joint return/inflation distribution for one year.
type DrawParams struct {
	MeanReturn     float64
	StdevReturn    float64
	MeanInflation  float64
	StdevInflation float64
	Correlation    float64
}

// DrawParamsFrom extracts the market assumptions from an input record.
func DrawParamsFrom(in domain.RetirementInputs) DrawParams {
	return DrawParams{
		MeanReturn:     in.MeanReturn,
		StdevReturn:    in.StdevReturn,
		MeanInflation:  in.MeanInflation,
		StdevInflation: in.StdevInflation,
		Correlation:    in.CorrReturnInflation,
	}
}

// Draw produces one correlated (return, inflation) pair. Values are not clamped;
// negative returns and deflation are expected outcomes.
func Draw(u Uniform, p DrawParams) (returnRate, inflationRate float64) {
	z1 := standardNormal(u)
	z2 := standardNormal(u)

	// Two-variable Cholesky factor
	r := z1
	i := p.Correlation*z1 + math.Sqrt(math.Max(0, 1-p.Correlation*p.Correlation))*z2

	return p.MeanReturn + p.StdevReturn*r, p.MeanInflation + p.StdevInflation*i
}

// standardNormal applies the Box-Muller transform to two uniform samples.
func standardNormal(u Uniform) float64 {
	u1 := u.Float64()
	for u1 == 0 {
		u1 = u.Float64()
	}
	u2 := u.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// NewPathSource returns the random stream for one Monte Carlo path. Streams for
// different path indexes are decorrelated by a splitmix64 step over (seed, path).
func NewPathSource(seed int64, path int) *rand.Rand {
	return rand.New(rand.NewSource(int64(splitmix64(uint64(seed) + uint64(path)*0x9E3779B97F4A7C15))))
}

func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}
