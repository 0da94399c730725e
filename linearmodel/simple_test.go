package linearmodel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleRegressionOptionsValidate(t *testing.T) {
	testData := map[string]struct {
		opt      *SimpleRegressionOptions
		err      error
		expected *SimpleRegressionOptions
	}{
		"nil": {nil, nil, NewDefaultSimpleRegressionOptions()},
		"valid": {
			&SimpleRegressionOptions{MinDistinctX: 3}, nil,
			&SimpleRegressionOptions{MinDistinctX: 3},
		},
		"underdetermined": {
			&SimpleRegressionOptions{MinDistinctX: 1}, ErrInvalidMinDistinctX, nil,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			opt, err := td.opt.Validate()
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, opt)
		})
	}
}

func TestSimpleRegression(t *testing.T) {
	tol := 1e-9
	testData := map[string]struct {
		x         []float64
		y         []float64
		slope     float64
		intercept float64
	}{
		"exact line": {
			x:         []float64{0, 1, 2},
			y:         []float64{1, 3, 5},
			slope:     2.0,
			intercept: 1.0,
		},
		"negative slope": {
			x:         []float64{-3, 0, 4, 10},
			y:         []float64{7.5, 6, 4, 1},
			slope:     -0.5,
			intercept: 6.0,
		},
		"noisy": {
			x:         []float64{1, 2, 3, 4},
			y:         []float64{2, 4, 5, 4},
			slope:     0.7,
			intercept: 2.0,
		},
		"flat": {
			x:         []float64{1900, 1950, 2000},
			y:         []float64{3.5, 3.5, 3.5},
			slope:     0.0,
			intercept: 3.5,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			model, err := NewSimpleRegression(nil)
			require.Nil(t, err)

			require.Nil(t, model.Fit(td.x, td.y))
			assert.True(t, model.Trained())
			assert.InDelta(t, td.slope, model.Slope(), tol, "slope")
			assert.InDelta(t, td.intercept, model.Intercept(), tol, "intercept")
		})
	}
}

func TestSimpleRegressionTwoPoints(t *testing.T) {
	x := []float64{1900, 2023}
	y := []float64{8.0, 10.5}

	model, err := NewSimpleRegression(nil)
	require.Nil(t, err)
	require.Nil(t, model.Fit(x, y))

	res, err := model.Predict(x)
	require.Nil(t, err)
	assert.InDeltaSlice(t, y, res, 1e-9)
}

func TestSimpleRegressionFitErrors(t *testing.T) {
	testData := map[string]struct {
		x   []float64
		y   []float64
		opt *SimpleRegressionOptions
		err error
	}{
		"empty":         {nil, nil, nil, ErrNoTrainingData},
		"len mismatch":  {[]float64{1, 2}, []float64{1}, nil, ErrTargetLenMismatch},
		"single point":  {[]float64{2023}, []float64{9.1}, nil, ErrInsufficientData},
		"duplicate x":   {[]float64{1, 1, 1}, []float64{1, 2, 3}, nil, ErrInsufficientData},
		"below minimum": {[]float64{1, 2}, []float64{1, 2}, &SimpleRegressionOptions{MinDistinctX: 3}, ErrInsufficientData},
		"uninitialized": {[]float64{1, 2}, []float64{1, 2}, nil, ErrNoOptions},
		"nan y":         {[]float64{1, 2, 3}, []float64{1, math.NaN(), 5}, nil, ErrNonFinite},
		"inf y":         {[]float64{1, 2, 3}, []float64{1, math.Inf(1), 5}, nil, ErrNonFinite},
		"nan x":         {[]float64{1, math.NaN(), 3}, []float64{1, 3, 5}, nil, ErrNonFinite},
		"inf x":         {[]float64{1, 2, math.Inf(-1)}, []float64{1, 3, 5}, nil, ErrNonFinite},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			model := &SimpleRegression{}
			if name != "uninitialized" {
				var err error
				model, err = NewSimpleRegression(td.opt)
				require.Nil(t, err)
			}
			err := model.Fit(td.x, td.y)
			assert.ErrorIs(t, err, td.err)
			assert.False(t, model.Trained())
		})
	}
}

func TestSimpleRegressionUntrained(t *testing.T) {
	model, err := NewSimpleRegression(nil)
	require.Nil(t, err)

	_, err = model.Predict([]float64{1})
	assert.ErrorIs(t, err, ErrUntrained)
}

func TestCountDistinct(t *testing.T) {
	assert.Equal(t, 0, CountDistinct(nil))
	assert.Equal(t, 3, CountDistinct([]float64{1, 2, 2, 3, 1}))
}

func BenchmarkSimpleRegression(b *testing.B) {
	n := 10000
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range n {
		x[i] = float64(i)
		y[i] = 0.01*float64(i) + 8.0
	}

	for b.Loop() {
		model, err := NewSimpleRegression(nil)
		if err != nil {
			b.Error(err)
			continue
		}
		if err := model.Fit(x, y); err != nil {
			b.Error(err)
			continue
		}
	}
}
