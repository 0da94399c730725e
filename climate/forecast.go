package climate

import (
	"context"
	"fmt"
	"sync"

	trendline "github.com/aouyang1/go-trendline"
)

// DefaultHorizons are the forward offsets, in years, past the last observed year
var DefaultHorizons = []float64{10, 100, 1000}

// VariableForecast pairs a variable with its fitted trend and predictions
type VariableForecast struct {
	Variable Variable
	Results  *trendline.Results
}

// Model returns the serializeable form of the forecast
func (v VariableForecast) Model(e *trendline.Extrapolator) trendline.Model {
	return trendline.NewModel(v.Variable.Name, v.Variable.Unit, e, v.Results)
}

// Forecast fits every variable in the dataset independently and concurrently, returning the
// forecasts in dataset variable order.
func Forecast(ctx context.Context, ds *Dataset, e *trendline.Extrapolator, horizons []float64) ([]VariableForecast, error) {
	vars := ds.Variables()
	out := make([]VariableForecast, len(vars))
	errs := make([]error, len(vars))

	var wg sync.WaitGroup
	for i, v := range vars {
		s, err := ds.Series(v.Name)
		if err != nil {
			return nil, err
		}

		wg.Add(1)
		go func(i int, v Variable) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			res, err := e.FitAndExtrapolate(s, horizons)
			if err != nil {
				errs[i] = fmt.Errorf("unable to forecast %s, %w", v.Name, err)
				return
			}
			out[i] = VariableForecast{Variable: v, Results: res}
		}(i, v)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
