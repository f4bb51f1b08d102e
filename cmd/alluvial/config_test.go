package main

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/alluvial-go/pkg/alluvial"
	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
	"github.com/ukaji3/alluvial-go/pkg/alluvial/render"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Output", cfg.Output, ""},
		{"Format", cfg.Format, ""},
		{"Pretty", cfg.Pretty, false},
		{"CategoryColumn", cfg.CategoryColumn, "Topic"},
		{"YearColumn", cfg.YearColumn, "Publication Year"},
		{"Opacity", cfg.Opacity, alluvial.DefaultOpacity},
		{"Hue", cfg.Hue, 210.0},
		{"Verbose", cfg.Verbose, false},
		{"Debounce", cfg.Debounce, 250 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.Equal(t, alluvial.DefaultBoundaries, cfg.Boundaries)
	assert.Equal(t, render.DefaultStyle(), cfg.Style)
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	t.Setenv("ALLUVIAL_SHEET", "Papers")
	t.Setenv("ALLUVIAL_CATEGORY_COLUMN", "Field")
	t.Setenv("ALLUVIAL_BOUNDARIES", "2000,2010,2020")
	t.Setenv("ALLUVIAL_VERBOSE", "true")
	t.Setenv("ALLUVIAL_DEBOUNCE", "1s")
	require.NoError(t, initConfig(""))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Papers", cfg.Sheet)
	assert.Equal(t, "Field", cfg.CategoryColumn)
	assert.Equal(t, "Publication Year", cfg.YearColumn)
	assert.Equal(t, []int{2000, 2010, 2020}, cfg.Boundaries)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, time.Second, cfg.Debounce)
}

func TestLoad_ConfigFile(t *testing.T) {
	resetViper(t)
	path := writeFile(t, "alluvial.yaml", `format: svg
boundaries: [2015, 2020]
style:
  dpi: 150
  x_title: Year
`)
	require.NoError(t, initConfig(path))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "svg", cfg.Format)
	assert.Equal(t, []int{2015, 2020}, cfg.Boundaries)
	assert.Equal(t, 150.0, cfg.Style.DPI)
	assert.Equal(t, "Year", cfg.Style.XTitle)
	// Unset style keys keep their defaults.
	assert.Equal(t, render.DefaultStyle().YTitle, cfg.Style.YTitle)
}

func TestInitConfig_MissingExplicitFile(t *testing.T) {
	resetViper(t)
	assert.Error(t, initConfig("/nonexistent/alluvial.yaml"))
}

func TestConfigOptions(t *testing.T) {
	cfg := Config{
		Range:          "Papers!B2:C40",
		CategoryColumn: "Field",
		YearColumn:     "Year",
		Opacity:        0.5,
		Hue:            120,
	}
	opts, err := cfg.Options(nil)
	require.NoError(t, err)

	assert.Equal(t, alluvial.DefaultBoundaries, opts.Boundaries)
	assert.Equal(t, 0.5, opts.Opacity)
	assert.Equal(t, 120.0, opts.Colors.Hue)
	assert.Equal(t, "Field", opts.Read.Columns.Category)
	assert.Equal(t, "Year", opts.Read.Columns.Year)
	assert.Equal(t, "Papers", opts.Read.Sheet)
	assert.Equal(t, &models.CellRange{R1: 2, C1: 2, R2: 40, C2: 3}, opts.Read.Range)

	// An explicit sheet wins over the one in the range reference.
	cfg.Sheet = "Other"
	opts, err = cfg.Options(nil)
	require.NoError(t, err)
	assert.Equal(t, "Other", opts.Read.Sheet)

	cfg.Range = "not a range"
	_, err = cfg.Options(nil)
	assert.Error(t, err)
}
