// Package output serializes diagrams for external renderers.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

// ToJSON serializes a diagram to JSON.
func ToJSON(d *models.Diagram, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(d, "", "  ")
	}
	return json.Marshal(d)
}

// ToYAML serializes a diagram to YAML.
func ToYAML(d *models.Diagram) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// FromJSON decodes a diagram produced by ToJSON.
func FromJSON(data []byte) (*models.Diagram, error) {
	var d models.Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
