package climate

import (
	"fmt"
	"io"
	"strings"

	trendline "github.com/aouyang1/go-trendline"
	"github.com/go-echarts/go-echarts/v2/components"
)

const longHorizonCaveat = "Predictions over 1000 years are highly uncertain and illustrate the trend rather than forecast it."

// Report writes the per variable predictions along with the fitted trend equation. Values are
// rounded for display only.
func Report(w io.Writer, location string, forecasts []VariableForecast) error {
	for i, f := range forecasts {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := reportVariable(w, location, f); err != nil {
			return err
		}
	}
	return nil
}

func reportVariable(w io.Writer, location string, f VariableForecast) error {
	v := f.Variable
	r := f.Results
	name := strings.ToLower(v.Title)

	lines := []string{
		fmt.Sprintf("%s Prediction, %s", v.Title, location),
	}
	for _, p := range r.Predictions {
		lines = append(lines, fmt.Sprintf("  Year %.0f: %.2f %s", p.X, p.Y, v.Unit))
	}
	lines = append(lines,
		fmt.Sprintf("  The model assumes a linear trend in %s:", name),
		fmt.Sprintf("    y = %.4f · year + %.2f", r.Slope, r.Intercept),
		fmt.Sprintf("  On average %s changes by %.2f %s per year.", name, r.Slope, v.Unit),
		"  "+longHorizonCaveat,
	)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// PlotReport renders the history of every variable followed by each variable's prediction chart
func PlotReport(w io.Writer, ds *Dataset, forecasts []VariableForecast) error {
	charters := make([]components.Charter, 0, 2*len(forecasts))
	for _, v := range ds.Variables() {
		s, err := ds.Series(v.Name)
		if err != nil {
			return err
		}
		charters = append(charters, trendline.LineHistory(
			trendline.ChartOpts{
				Title:  "Annual " + v.Title,
				XLabel: "Year",
				YLabel: v.Unit,
				Color:  v.Color,
			},
			s,
		))
	}
	for _, f := range forecasts {
		s, err := ds.Series(f.Variable.Name)
		if err != nil {
			return err
		}
		charters = append(charters, trendline.LinePrediction(
			trendline.ChartOpts{
				Title:  fmt.Sprintf("%s Prediction in %s", f.Variable.Title, ds.Location),
				XLabel: "Year",
				YLabel: f.Variable.Unit,
				Color:  f.Variable.Color,
			},
			s,
			f.Results,
		))
	}
	return trendline.PlotPage(w, fmt.Sprintf("Climate Trends, %s", ds.Location), charters...)
}
