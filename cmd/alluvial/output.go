package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
	"github.com/ukaji3/alluvial-go/pkg/alluvial/output"
	"github.com/ukaji3/alluvial-go/pkg/alluvial/render"
)

// outputPrefix is the stem of generated image names.
const outputPrefix = "literature_topic_trend"

// resolveFormat picks the output format from the explicit format name,
// else from the output file extension, else png.
func resolveFormat(format, outputPath string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(outputPath), ".")
	}
	switch strings.ToLower(format) {
	case "":
		return "png", nil
	case "png", "svg", "json", "yaml":
		return strings.ToLower(format), nil
	case "yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be png, svg, json, or yaml)", format)
	}
}

func isImage(format string) bool {
	return format == "png" || format == "svg"
}

// defaultOutputName returns the timestamped image name for a run at now.
func defaultOutputName(now time.Time, format string) string {
	return fmt.Sprintf("%s_%s.%s", outputPrefix, now.Format("20060102_150405"), format)
}

// writeDiagram writes d in format to outputPath, or to stdout when
// outputPath is empty.
func writeDiagram(d *models.Diagram, format, outputPath string, c Config) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = output.ToJSON(d, c.Pretty)
	case "yaml":
		data, err = output.ToYAML(d)
	default:
		return writeImage(d, format, outputPath, c.Style)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath == "" {
		fmt.Println(strings.TrimRight(string(data), "\n"))
		return nil
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func writeImage(d *models.Diagram, format, outputPath string, style render.Style) error {
	r, err := render.ForFormat(format, style)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := r.Render(bw, d); err != nil {
		f.Close()
		return fmt.Errorf("render failed: %w", err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	return f.Close()
}
