// Package trendline fits a degree-1 least squares trend line to an observation series
// and extrapolates it over a set of forward horizons.
package trendline

import (
	"errors"
	"fmt"
	"math"

	"github.com/aouyang1/go-trendline/linearmodel"
	"github.com/aouyang1/go-trendline/series"
)

var (
	ErrNoObservations   = errors.New("no observation series")
	ErrInsufficientData = errors.New("need at least 2 distinct x values to fit a trend line")
	ErrEmptyHorizon     = errors.New("empty horizon set")
	ErrNegativeHorizon  = errors.New("horizon must not be negative")
	ErrNaNHorizon       = errors.New("horizon must be a number")
)

// Extrapolator fits a trend line to an observation series and evaluates it past the last
// observed x. It holds no state between calls and is safe for concurrent use.
type Extrapolator struct {
	opt *Options
}

// New creates a new Extrapolator using the provided options. If no options are provided
// a default is used. The options are copied so later changes by the caller have no effect.
func New(opt *Options) (*Extrapolator, error) {
	opt, err := opt.Copy().Validate()
	if err != nil {
		return nil, fmt.Errorf("unable to validate options, %w", err)
	}
	return &Extrapolator{opt: opt}, nil
}

// FitAndExtrapolate uses default options to fit s and predict at max(x)+h for every horizon
func FitAndExtrapolate(s *series.Series, horizons []float64) (*Results, error) {
	e, err := New(nil)
	if err != nil {
		return nil, err
	}
	return e.FitAndExtrapolate(s, horizons)
}

// Options returns a copy of the options the Extrapolator was initialized with
func (e *Extrapolator) Options() *Options {
	return e.opt.Copy()
}

// FitAndExtrapolate fits y ~ slope*x + intercept over the series and evaluates the line at
// max(x)+h for each horizon, preserving the order of horizons in the results.
func (e *Extrapolator) FitAndExtrapolate(s *series.Series, horizons []float64) (*Results, error) {
	if s.Len() == 0 {
		return nil, ErrNoObservations
	}
	if err := e.validateHorizons(horizons); err != nil {
		return nil, err
	}

	model, err := linearmodel.NewSimpleRegression(e.opt.RegressionOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize regression, %w", err)
	}
	if err := model.Fit(s.X, s.Y); err != nil {
		if errors.Is(err, linearmodel.ErrInsufficientData) {
			return nil, fmt.Errorf("%w, %w", ErrInsufficientData, err)
		}
		return nil, fmt.Errorf("unable to fit trend line, %w", err)
	}

	lastX := s.MaxX()
	futureX := make([]float64, len(horizons))
	for i, h := range horizons {
		futureX[i] = lastX + h
	}
	predicted, err := model.Predict(futureX)
	if err != nil {
		return nil, fmt.Errorf("unable to predict horizons, %w", err)
	}

	preds := make([]Prediction, len(horizons))
	for i, h := range horizons {
		preds[i] = Prediction{
			Horizon: h,
			X:       futureX[i],
			Y:       predicted[i],
		}
	}

	return &Results{
		Predictions: preds,
		Slope:       model.Slope(),
		Intercept:   model.Intercept(),
		LastX:       lastX,
	}, nil
}

func (e *Extrapolator) validateHorizons(horizons []float64) error {
	if len(horizons) == 0 && !e.opt.AllowEmptyHorizons {
		return ErrEmptyHorizon
	}
	for i, h := range horizons {
		if math.IsNaN(h) {
			return fmt.Errorf("horizon at %d, %w", i, ErrNaNHorizon)
		}
		if h < 0 {
			return fmt.Errorf("horizon %v at %d, %w", h, i, ErrNegativeHorizon)
		}
	}
	return nil
}
