package series

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// GenerateRange returns every integer from start to end inclusive as x values
func GenerateRange(start, end int) []float64 {
	if end < start {
		return nil
	}
	x := make([]float64, 0, end-start+1)
	for i := start; i <= end; i++ {
		x = append(x, float64(i))
	}
	return x
}

// NewRand returns a PCG backed random source. A seed of 0 draws a random seed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Values is a generated run of y values, one per x
type Values []float64

// Add adds src element-wise into v and returns v
func (v Values) Add(src Values) Values {
	floats.Add(v, src)
	return v
}

// GenerateConst returns n copies of val
func GenerateConst(n int, val float64) Values {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Values(y)
}

// GenerateLinspace returns n evenly spaced values from start to stop inclusive
func GenerateLinspace(n int, start, stop float64) Values {
	if n <= 0 {
		return Values{}
	}
	y := make([]float64, n)
	if n == 1 {
		y[0] = start
		return Values(y)
	}
	return Values(floats.Span(y, start, stop))
}

// GenerateNoise draws n samples from a normal distribution with the given mean and stddev
func GenerateNoise(rng *rand.Rand, n int, mean, stddev float64) Values {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, mean+rng.NormFloat64()*stddev)
	}
	return Values(y)
}
