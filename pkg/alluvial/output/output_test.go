package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

func sampleDiagram() *models.Diagram {
	path := models.Path{
		{Op: models.MoveTo, Points: []models.Point{{X: 0, Y: 0}}},
		{Op: models.LineTo, Points: []models.Point{{X: 1, Y: 2}}},
		{Op: models.Close},
	}
	return &models.Diagram{
		Bands: []models.Band{{
			Category: "A", From: 0, To: 1,
			X0: 0, X1: 1, YB0: 0, YT0: 2, YB1: 0, YT1: 3,
			Color: "#d4e6f7", Opacity: 0.8,
			Path: path, PathSpec: path.SVG(),
		}},
		Anchors:      []models.CategoryAnchor{{Category: "A", X: -0.05, Y: 1, Color: "#d4e6f7"}},
		BucketLabels: []string{"2010-2014", "2015-2019"},
		BucketX:      []float64{0, 1},
		Totals:       []float64{2, 3},
		YMax:         3.3,
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleDiagram(), false)
	require.NoError(t, err)

	s := string(data)
	for _, key := range []string{
		`"bands"`, `"bucket_from_index":0`, `"bucket_to_index":1`,
		`"category_anchors"`, `"x_margin":-0.05`, `"y_anchor":1`,
		`"bucket_axis_labels":["2010-2014","2015-2019"]`,
		`"total_height_per_bucket":[2,3]`,
		`"path_spec":"M0 0 L1 2 Z"`,
	} {
		assert.Contains(t, s, key)
	}
	assert.NotContains(t, s, `"summary"`)

	back, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, sampleDiagram(), back)
}

func TestToJSONPretty(t *testing.T) {
	data, err := ToJSON(sampleDiagram(), true)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"bands\""))
}

func TestToYAML(t *testing.T) {
	data, err := ToYAML(sampleDiagram())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, []interface{}{"2010-2014", "2015-2019"}, decoded["bucket_axis_labels"])
	assert.Equal(t, 3.3, decoded["y_max"])

	bands := decoded["bands"].([]interface{})
	require.Len(t, bands, 1)
	band := bands[0].(map[string]interface{})
	assert.Equal(t, "M0 0 L1 2 Z", band["path_spec"])
	assert.Equal(t, "#d4e6f7", band["color"])
}
