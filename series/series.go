// Package series holds ordered observation series of (x, y) pairs along with the
// generators used to synthesize them.
package series

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrNoObservations = errors.New("no observations")
	ErrLenMismatch    = errors.New("x has a different length than observations")
	ErrNonMonotonic   = errors.New("x is not strictly increasing")
)

// Series represents an observation series storing x values and their observed y values.
// Both must be of the same length and x must be strictly increasing.
type Series struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// NewSeries returns an instance of a Series given an x and value slice. Both slices are copied.
func NewSeries(x, y []float64) (*Series, error) {
	if len(y) == 0 {
		return nil, ErrNoObservations
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf(
			"x has length of %d, but values has a length of %d, %w",
			len(x), len(y), ErrLenMismatch,
		)
	}

	lastX := math.Inf(-1)
	for i := 0; i < len(x); i++ {
		if math.IsNaN(x[i]) || x[i] <= lastX {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMonotonic)
		}
		lastX = x[i]
	}

	xSeries := make([]float64, len(x))
	ySeries := make([]float64, len(y))
	copy(xSeries, x)
	copy(ySeries, y)
	return &Series{
		X: xSeries,
		Y: ySeries,
	}, nil
}

// Copy returns a deep copy of the series
func (s *Series) Copy() *Series {
	xSeries := make([]float64, len(s.X))
	ySeries := make([]float64, len(s.Y))
	copy(xSeries, s.X)
	copy(ySeries, s.Y)
	return &Series{
		X: xSeries,
		Y: ySeries,
	}
}

// Len returns the number of observations
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.X)
}

// MaxX returns the largest x. Series literals are not required to be ordered so every
// observation is scanned. Returns NaN on an empty series.
func (s *Series) MaxX() float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	return floats.Max(s.X)
}
