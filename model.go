package trendline

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// Model represents a serializeable format of a fitted trend line storing the options it was
// fit with and its extrapolated results.
type Model struct {
	Name    string   `json:"name"`
	Unit    string   `json:"unit,omitempty"`
	Options *Options `json:"options"`
	Results *Results `json:"results"`
}

// NewModel bundles a fit result with the extrapolator options that produced it
func NewModel(name, unit string, e *Extrapolator, res *Results) Model {
	return Model{
		Name:    name,
		Unit:    unit,
		Options: e.Options(),
		Results: res,
	}
}

// TablePrint writes a human readable summary of the model to w
func (m Model) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%s:\n", prefix, m.Name); err != nil {
		return err
	}
	if m.Results == nil {
		_, err := fmt.Fprintf(w, "%s%sNot fit\n", prefix, indent)
		return err
	}
	r := m.Results
	if _, err := fmt.Fprintf(w, "%s%sTrend: y = %.4f*x %+.2f\n", prefix, indent, r.Slope, r.Intercept); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sLast Observed: %.0f\n", prefix, indent, r.LastX); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sPredictions:\n", prefix, indent); err != nil {
		return err
	}
	inner := strings.Repeat(indent, 2)
	for _, p := range r.Predictions {
		if _, err := fmt.Fprintf(w, "%s%s+%g (%.0f): %.2f %s\n", prefix, inner, p.Horizon, p.X, p.Y, m.Unit); err != nil {
			return err
		}
	}
	return nil
}

// WriteModels encodes the models as indented json
func WriteModels(w io.Writer, models []Model) error {
	bytes, err := json.MarshalIndent(models, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal models, %w", err)
	}
	if _, err := w.Write(bytes); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// ReadModels decodes models previously written by WriteModels
func ReadModels(r io.Reader) ([]Model, error) {
	var models []Model
	if err := json.NewDecoder(r).Decode(&models); err != nil {
		return nil, fmt.Errorf("unable to unmarshal models, %w", err)
	}
	return models, nil
}
