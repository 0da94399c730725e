package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	trendline "github.com/aouyang1/go-trendline"
	"github.com/aouyang1/go-trendline/climate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmdDefault(t *testing.T) {
	out, _, err := execute(t, "--seed", "42")
	require.Nil(t, err)

	assert.Contains(t, out, "Temperature Prediction, Brno")
	assert.Contains(t, out, "Precipitation Prediction, Brno")
	assert.Contains(t, out, "Wind Speed Prediction, Brno")
	for _, year := range []string{"Year 2033:", "Year 2123:", "Year 3023:"} {
		assert.Equal(t, 3, strings.Count(out, year), year)
	}
}

func TestRootCmdTemperatureOnly(t *testing.T) {
	dir := t.TempDir()
	plotPath := filepath.Join(dir, "climate.html")
	modelPath := filepath.Join(dir, "model.json")

	out, errOut, err := execute(t,
		"--seed", "42",
		"--variables", "temperature",
		"--horizons", "0,10",
		"--plot", plotPath,
		"--model", modelPath,
		"--log-level", "debug",
	)
	require.Nil(t, err)

	assert.Contains(t, out, "Temperature Prediction, Brno")
	assert.NotContains(t, out, "Precipitation")
	assert.Contains(t, out, "Year 2023:")
	assert.Contains(t, out, "Year 2033:")
	assert.Contains(t, errOut, "fit trend line")
	assert.Contains(t, errOut, "temperature:\n  Trend: y = ")
	assert.Contains(t, errOut, "    +10 (2033): ")
	assert.Contains(t, errOut, "wrote plot")

	plot, err := os.ReadFile(plotPath)
	require.Nil(t, err)
	assert.Contains(t, string(plot), "Temperature Prediction in Brno")

	f, err := os.Open(modelPath)
	require.Nil(t, err)
	defer f.Close()
	models, err := trendline.ReadModels(f)
	require.Nil(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, climate.LabelTemperature, models[0].Name)
	require.Len(t, models[0].Results.Predictions, 2)
	assert.Equal(t, 2023.0, models[0].Results.Predictions[0].X)
	// the synthetic temperature ramps from 8.0 to 10.5 over 123 years
	assert.InDelta(t, 2.5/123.0, models[0].Results.Slope, 0.005)
}

func TestRootCmdModelSummaryOnlyAtDebug(t *testing.T) {
	_, errOut, err := execute(t, "--seed", "42", "--variables", "temperature")
	require.Nil(t, err)
	assert.NotContains(t, errOut, "Trend: y = ")
}

func TestRootCmdSeedIsReproducible(t *testing.T) {
	first, _, err := execute(t, "--seed", "7")
	require.Nil(t, err)
	second, _, err := execute(t, "--seed", "7")
	require.Nil(t, err)
	assert.Equal(t, first, second)
}

func TestRootCmdConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Nil(t, os.WriteFile(path, []byte("location: Praha\nseed: 3\nvariables: [wind_speed]\nhorizons: [1]\n"), 0o644))

	out, _, err := execute(t, "--config", path)
	require.Nil(t, err)
	assert.Contains(t, out, "Wind Speed Prediction, Praha")
	assert.Contains(t, out, "Year 2024:")
}

func TestRootCmdErrors(t *testing.T) {
	testData := map[string][]string{
		"unknown variable": {"--variables", "humidity"},
		"negative horizon": {"--horizons=-10"},
		"bad log level":    {"--log-level", "loud"},
		"missing config":   {"--config", filepath.Join(t.TempDir(), "missing.yaml")},
	}

	for name, args := range testData {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, args...)
			assert.Error(t, err)
		})
	}
}
