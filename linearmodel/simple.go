// Package linearmodel contains the closed form degree-1 least squares fit used to
// extract a trend line from an observation series.
package linearmodel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// DefaultMinDistinctX is the fewest distinct x values that determine a line
const DefaultMinDistinctX = 2

// SimpleRegressionOptions represents input options to run a simple linear regression
type SimpleRegressionOptions struct {
	// MinDistinctX is the number of distinct x values required before fitting. Anything
	// below 2 leaves the line underdetermined.
	MinDistinctX int `json:"min_distinct_x"`
}

// NewDefaultSimpleRegressionOptions returns a default set of simple regression options
func NewDefaultSimpleRegressionOptions() *SimpleRegressionOptions {
	return &SimpleRegressionOptions{
		MinDistinctX: DefaultMinDistinctX,
	}
}

// Validate runs basic validation on simple regression options
func (o *SimpleRegressionOptions) Validate() (*SimpleRegressionOptions, error) {
	if o == nil {
		return NewDefaultSimpleRegressionOptions(), nil
	}
	if o.MinDistinctX < DefaultMinDistinctX {
		return nil, fmt.Errorf("got %d, %w", o.MinDistinctX, ErrInvalidMinDistinctX)
	}
	return o, nil
}

// SimpleRegression fits y ~ intercept + slope*x by ordinary least squares using the
// normal equations, slope = cov(x,y)/var(x) and intercept = mean(y) - slope*mean(x).
type SimpleRegression struct {
	opt       *SimpleRegressionOptions
	slope     float64
	intercept float64
	trained   bool
}

// NewSimpleRegression initializes a simple regression model ready for fitting
func NewSimpleRegression(opt *SimpleRegressionOptions) (*SimpleRegression, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &SimpleRegression{
		opt: opt,
	}, nil
}

// Fit the model according to the given training data
func (s *SimpleRegression) Fit(x, y []float64) error {
	if s.opt == nil {
		return ErrNoOptions
	}
	if len(x) == 0 {
		return ErrNoTrainingData
	}
	if len(x) != len(y) {
		return fmt.Errorf("training data has %d points and target has %d points, %w", len(x), len(y), ErrTargetLenMismatch)
	}

	for i := 0; i < len(x); i++ {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			return fmt.Errorf("at %d got x=%v y=%v, %w", i, x[i], y[i], ErrNonFinite)
		}
	}

	distinct := CountDistinct(x)
	if distinct < s.opt.MinDistinctX {
		return fmt.Errorf("got %d distinct x values, need %d, %w", distinct, s.opt.MinDistinctX, ErrInsufficientData)
	}

	meanX := stat.Mean(x, nil)
	meanY := stat.Mean(y, nil)
	varX := stat.Variance(x, nil)
	if varX == 0 || math.IsNaN(varX) {
		return fmt.Errorf("zero variance in training data, %w", ErrInsufficientData)
	}
	covXY := stat.Covariance(x, y, nil)

	s.slope = covXY / varX
	s.intercept = meanY - s.slope*meanX
	s.trained = true
	return nil
}

// Predict evaluates the fitted line at every input x in the order given
func (s *SimpleRegression) Predict(x []float64) ([]float64, error) {
	if !s.trained {
		return nil, ErrUntrained
	}
	res := make([]float64, len(x))
	for i, v := range x {
		res[i] = s.slope*v + s.intercept
	}
	return res, nil
}

// Slope returns the fitted slope. Defaults to 0.0 if not trained.
func (s *SimpleRegression) Slope() float64 {
	return s.slope
}

// Intercept returns the fitted intercept. Defaults to 0.0 if not trained.
func (s *SimpleRegression) Intercept() float64 {
	return s.intercept
}

// Trained reports whether Fit completed successfully
func (s *SimpleRegression) Trained() bool {
	return s.trained
}

// CountDistinct returns the number of distinct values in x. NaNs are never counted.
func CountDistinct(x []float64) int {
	seen := make(map[float64]struct{}, len(x))
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
