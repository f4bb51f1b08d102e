package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/output"
)

const surveyCSV = `Title,Topic,Publication Year
a,Energy,2011
b,Energy,2016
c,Water,2012
d,Air,2021
e,Air,1999
`

func TestRootCommandJSON(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	input := writeFile(t, "papers.csv", surveyCSV)
	out := filepath.Join(t.TempDir(), "layout.json")

	cmd := newRootCmd()
	cmd.SetArgs([]string{input, "-o", out, "--boundaries", "2010,2015,2020,2025"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	d, err := output.FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"2010-2014", "2015-2019", "2020-2024"}, d.BucketLabels)
	require.NotNil(t, d.Summary)
	assert.Equal(t, 5, d.Summary.Records)
	assert.Equal(t, 4, d.Summary.Kept)
	assert.Equal(t, 1, d.Summary.OutOfRange)
}

func TestRootCommandDefaultImageName(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(".alluvial.yaml", []byte("style:\n  dpi: 20\n  width_inches: 4\n  height_inches: 3\n"), 0644))

	input := writeFile(t, "papers.csv", surveyCSV)
	cmd := newRootCmd()
	cmd.SetArgs([]string{input})
	require.NoError(t, cmd.Execute())

	matches, err := filepath.Glob(filepath.Join(dir, "literature_topic_trend_*.png"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestRootCommandErrors(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	cmd.SetArgs([]string{"missing.csv"})
	cmd.SetErr(new(discard))
	assert.Error(t, cmd.Execute())

	resetViper(t)
	input := writeFile(t, "papers.csv", surveyCSV)
	cmd = newRootCmd()
	cmd.SetArgs([]string{input, "--boundaries", "2020,2010", "--format", "json"})
	cmd.SetErr(new(discard))
	assert.Error(t, cmd.Execute())
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }
