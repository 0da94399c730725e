package climate

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-trendline/series"
)

var (
	ErrUnknownVariable   = errors.New("unknown climate variable")
	ErrDuplicateVariable = errors.New("duplicate climate variable")
	ErrNoVariables       = errors.New("no climate variables")
	ErrInvalidYearRange  = errors.New("start year must be before end year")
	ErrNoGenerator       = errors.New("climate variable has no generator")
)

func unknownVariable(name string) error {
	return fmt.Errorf("%s, %w", name, ErrUnknownVariable)
}

const (
	DefaultLocation  = "Brno"
	DefaultStartYear = 1900
	DefaultEndYear   = 2023
)

// GenerateOptions configures the synthetic dataset. A zero Seed draws a random seed so
// every run differs; set it for reproducible series.
type GenerateOptions struct {
	Location  string `json:"location" yaml:"location"`
	StartYear int    `json:"start_year" yaml:"start_year"`
	EndYear   int    `json:"end_year" yaml:"end_year"`
	Seed      uint64 `json:"seed" yaml:"seed"`
}

// NewDefaultGenerateOptions returns yearly series for Brno from 1900 through 2023
func NewDefaultGenerateOptions() *GenerateOptions {
	return &GenerateOptions{
		Location:  DefaultLocation,
		StartYear: DefaultStartYear,
		EndYear:   DefaultEndYear,
	}
}

// Validate checks the year range and fills defaults for a nil GenerateOptions
func (o *GenerateOptions) Validate() (*GenerateOptions, error) {
	if o == nil {
		return NewDefaultGenerateOptions(), nil
	}
	if o.StartYear >= o.EndYear {
		return nil, fmt.Errorf("got %d to %d, %w", o.StartYear, o.EndYear, ErrInvalidYearRange)
	}
	if o.Location == "" {
		o.Location = DefaultLocation
	}
	return o, nil
}

// Dataset is a generated set of yearly series, one per climate variable, sharing the same years.
// It is created once and passed to everything that needs it.
type Dataset struct {
	Location  string
	Years     []float64
	variables []Variable
	series    map[string]*series.Series
}

// Generate synthesizes one series per variable using a single seeded random source
func Generate(opt *GenerateOptions, vars []Variable) (*Dataset, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	if len(vars) == 0 {
		return nil, ErrNoVariables
	}

	rng := series.NewRand(opt.Seed)
	years := series.GenerateRange(opt.StartYear, opt.EndYear)

	ds := &Dataset{
		Location:  opt.Location,
		Years:     years,
		variables: make([]Variable, 0, len(vars)),
		series:    make(map[string]*series.Series, len(vars)),
	}
	for _, v := range vars {
		if _, exists := ds.series[v.Name]; exists {
			return nil, fmt.Errorf("%s, %w", v.Name, ErrDuplicateVariable)
		}
		if v.Gen == nil {
			return nil, fmt.Errorf("%s, %w", v.Name, ErrNoGenerator)
		}
		s, err := series.NewSeries(years, v.Gen(rng, years))
		if err != nil {
			return nil, fmt.Errorf("unable to generate %s series, %w", v.Name, err)
		}
		ds.series[v.Name] = s
		ds.variables = append(ds.variables, v)
	}
	return ds, nil
}

// Variables returns the dataset variables in generation order
func (d *Dataset) Variables() []Variable {
	vars := make([]Variable, len(d.variables))
	copy(vars, d.variables)
	return vars
}

// Series returns a copy of the named variable's series so the dataset stays unchanged
// however callers use it.
func (d *Dataset) Series(name string) (*series.Series, error) {
	s, exists := d.series[name]
	if !exists {
		return nil, unknownVariable(name)
	}
	return s.Copy(), nil
}
