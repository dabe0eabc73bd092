package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw_ZeroVolatilityReturnsMeans(t *testing.T) {
	src := NewPathSource(7, 0)
	p := DrawParams{MeanReturn: 0.065, MeanInflation: 0.025, Correlation: -0.2}
	for i := 0; i < 50; i++ {
		r, infl := Draw(src, p)
		assert.Equal(t, 0.065, r)
		assert.Equal(t, 0.025, infl)
	}
}

func TestDraw_PerfectCorrelation(t *testing.T) {
	p := DrawParams{StdevReturn: 1, StdevInflation: 1}

	t.Run("positive", func(t *testing.T) {
		p.Correlation = 1
		src := NewPathSource(11, 3)
		for i := 0; i < 20; i++ {
			r, infl := Draw(src, p)
			assert.InDelta(t, r, infl, 1e-12)
		}
	})

	t.Run("negative", func(t *testing.T) {
		p.Correlation = -1
		src := NewPathSource(11, 3)
		for i := 0; i < 20; i++ {
			r, infl := Draw(src, p)
			assert.InDelta(t, -r, infl, 1e-12)
		}
	})
}

func TestDraw_SampleMoments(t *testing.T) {
	const n = 20000
	p := DrawParams{MeanReturn: 0.06, StdevReturn: 0.1, MeanInflation: 0.02, StdevInflation: 0.01, Correlation: 0.5}
	src := NewPathSource(2024, 0)

	rs := make([]float64, n)
	is := make([]float64, n)
	for k := range rs {
		rs[k], is[k] = Draw(src, p)
	}

	meanR, sdR := moments(rs)
	meanI, sdI := moments(is)
	assert.InDelta(t, 0.06, meanR, 0.003)
	assert.InDelta(t, 0.1, sdR, 0.003)
	assert.InDelta(t, 0.02, meanI, 0.0003)
	assert.InDelta(t, 0.01, sdI, 0.0003)

	var cov float64
	for k := range rs {
		cov += (rs[k] - meanR) * (is[k] - meanI)
	}
	corr := cov / float64(n) / (sdR * sdI)
	assert.InDelta(t, 0.5, corr, 0.03)
}

func moments(xs []float64) (mean, sd float64) {
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	for _, x := range xs {
		sd += (x - mean) * (x - mean)
	}
	return mean, math.Sqrt(sd / float64(len(xs)))
}

func TestNewPathSource_Reproducible(t *testing.T) {
	a := NewPathSource(42, 5)
	b := NewPathSource(42, 5)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}

	c := NewPathSource(42, 6)
	d := NewPathSource(43, 5)
	first := NewPathSource(42, 5).Float64()
	assert.NotEqual(t, first, c.Float64())
	assert.NotEqual(t, first, d.Float64())
}

type fixedUniform []float64

func (f *fixedUniform) Float64() float64 {
	v := (*f)[0]
	*f = (*f)[1:]
	return v
}

func TestStandardNormal_SkipsZero(t *testing.T) {
	u := &fixedUniform{0, 0, math.Exp(-0.5), 0}
	// u1 = e^-0.5 gives sqrt(-2 ln u1) = 1 and cos(0) = 1
	assert.InDelta(t, 1.0, standardNormal(u), 1e-12)
	assert.Empty(t, *u)
}
