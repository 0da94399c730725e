package trendline

import "github.com/aouyang1/go-trendline/linearmodel"

// Options configures how an Extrapolator validates its inputs and fits the trend line
type Options struct {
	// AllowEmptyHorizons returns an empty prediction set for an empty horizon set
	// instead of failing with ErrEmptyHorizon.
	AllowEmptyHorizons bool `json:"allow_empty_horizons"`

	RegressionOptions *linearmodel.SimpleRegressionOptions `json:"regression_options"`
}

// NewDefaultOptions returns a default set of options which allow empty horizons
func NewDefaultOptions() *Options {
	return &Options{
		AllowEmptyHorizons: true,
		RegressionOptions:  linearmodel.NewDefaultSimpleRegressionOptions(),
	}
}

// Validate fills in defaults for a nil Options or nil regression options
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	regOpt, err := o.RegressionOptions.Validate()
	if err != nil {
		return nil, err
	}
	o.RegressionOptions = regOpt
	return o, nil
}

// Copy returns a deep copy of the options. A nil Options copies to nil.
func (o *Options) Copy() *Options {
	if o == nil {
		return nil
	}
	c := *o
	if o.RegressionOptions != nil {
		regOpt := *o.RegressionOptions
		c.RegressionOptions = &regOpt
	}
	return &c
}
