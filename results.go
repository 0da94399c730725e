package trendline

// Prediction is the fitted trend line evaluated at a future x
type Prediction struct {
	Horizon float64 `json:"horizon"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// Results holds the prediction set, in horizon input order, along with the fitted line
// y = Slope*x + Intercept.
type Results struct {
	Predictions []Prediction `json:"predictions"`
	Slope       float64      `json:"slope"`
	Intercept   float64      `json:"intercept"`
	LastX       float64      `json:"last_x"`
}

// At evaluates the fitted line at x
func (r *Results) At(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// PredictedX returns the future x values of each prediction
func (r *Results) PredictedX() []float64 {
	x := make([]float64, len(r.Predictions))
	for i, p := range r.Predictions {
		x[i] = p.X
	}
	return x
}

// PredictedY returns the predicted values of each prediction
func (r *Results) PredictedY() []float64 {
	y := make([]float64, len(r.Predictions))
	for i, p := range r.Predictions {
		y[i] = p.Y
	}
	return y
}
