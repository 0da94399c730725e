package trendline

import (
	"io"
	"math"

	"github.com/aouyang1/go-trendline/series"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ChartOpts names and colors a series when plotted
type ChartOpts struct {
	Title  string
	XLabel string
	YLabel string
	Color  string
}

func newValueLine(opt ChartOpts) *charts.Line {
	line := charts.NewLine()
	globalOpts := []charts.GlobalOpts{
		charts.WithTitleOpts(
			opts.Title{
				Title: opt.Title,
			},
		),
		charts.WithXAxisOpts(
			opts.XAxis{
				Name: opt.XLabel,
				Type: "value",
				Min:  "dataMin",
				Max:  "dataMax",
			},
		),
		charts.WithYAxisOpts(
			opts.YAxis{
				Name: opt.YLabel,
			},
		),
		charts.WithTooltipOpts(
			opts.Tooltip{
				Trigger: "axis",
			},
		),
	}
	if opt.Color != "" {
		globalOpts = append(globalOpts, charts.WithColorsOpts(opts.Colors{opt.Color, "red"}))
	}
	line.SetGlobalOptions(globalOpts...)
	return line
}

func seriesLineData(s *series.Series) []opts.LineData {
	lineData := make([]opts.LineData, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		if math.IsNaN(s.Y[i]) {
			continue
		}
		lineData = append(lineData, opts.LineData{Value: []float64{s.X[i], s.Y[i]}})
	}
	return lineData
}

// LineHistory generates an echart line chart of an observation series plotted against x.
func LineHistory(opt ChartOpts, s *series.Series) *charts.Line {
	line := newValueLine(opt)
	line.AddSeries("History", seriesLineData(s))
	return line
}

// LinePrediction generates an echart line chart of the observation series with the
// extrapolated predictions overlaid as points.
func LinePrediction(opt ChartOpts, s *series.Series, res *Results) *charts.Line {
	line := newValueLine(opt)
	line.AddSeries("History", seriesLineData(s))

	scatterData := make([]opts.ScatterData, 0, len(res.Predictions))
	for _, p := range res.Predictions {
		scatterData = append(scatterData, opts.ScatterData{Value: []float64{p.X, p.Y}})
	}
	scatter := charts.NewScatter()
	scatter.AddSeries("Prediction", scatterData)
	line.Overlap(scatter)
	return line
}

// PlotPage renders all charts into a single html page written to w
func PlotPage(w io.Writer, title string, c ...components.Charter) error {
	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(c...)
	return page.Render(w)
}
