// Package climate generates synthetic yearly climate series for a location and forecasts
// each variable's linear trend independently.
package climate

import (
	"math/rand/v2"

	"github.com/aouyang1/go-trendline/series"
)

const (
	LabelTemperature   = "temperature"
	LabelPrecipitation = "precipitation"
	LabelWindSpeed     = "wind_speed"
)

// Generator synthesizes one value per year
type Generator func(rng *rand.Rand, years []float64) series.Values

// Variable describes a climate quantity, how it is displayed and how it is synthesized
type Variable struct {
	Name  string    `json:"name"`
	Title string    `json:"title"`
	Unit  string    `json:"unit"`
	Color string    `json:"color"`
	Gen   Generator `json:"-"`
}

// TrendWithNoise ramps linearly from start to stop across the years with gaussian noise on top
func TrendWithNoise(start, stop, stddev float64) Generator {
	return func(rng *rand.Rand, years []float64) series.Values {
		n := len(years)
		return series.GenerateLinspace(n, start, stop).
			Add(series.GenerateNoise(rng, n, 0.0, stddev))
	}
}

// Noise draws every year independently around mean
func Noise(mean, stddev float64) Generator {
	return func(rng *rand.Rand, years []float64) series.Values {
		return series.GenerateNoise(rng, len(years), mean, stddev)
	}
}

// DefaultVariables returns yearly temperature, precipitation and wind speed
func DefaultVariables() []Variable {
	return []Variable{
		{
			Name:  LabelTemperature,
			Title: "Temperature",
			Unit:  "°C",
			Color: "blue",
			Gen:   TrendWithNoise(8.0, 10.5, 0.2),
		},
		{
			Name:  LabelPrecipitation,
			Title: "Precipitation",
			Unit:  "mm",
			Color: "green",
			Gen:   Noise(600.0, 100.0),
		},
		{
			Name:  LabelWindSpeed,
			Title: "Wind Speed",
			Unit:  "m/s",
			Color: "orange",
			Gen:   Noise(3.5, 0.5),
		},
	}
}

// SelectVariables keeps the named variables from vars in the order of names. An empty
// names slice keeps everything.
func SelectVariables(vars []Variable, names []string) ([]Variable, error) {
	if len(names) == 0 {
		return vars, nil
	}
	byName := make(map[string]Variable, len(vars))
	for _, v := range vars {
		byName[v.Name] = v
	}
	selected := make([]Variable, 0, len(names))
	for _, name := range names {
		v, exists := byName[name]
		if !exists {
			return nil, unknownVariable(name)
		}
		selected = append(selected, v)
	}
	return selected, nil
}
