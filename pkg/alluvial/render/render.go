package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

// ErrUnknownFormat indicates an image format with no renderer.
var ErrUnknownFormat = errors.New("unknown image format")

// Renderer draws a diagram to w.
type Renderer interface {
	Render(w io.Writer, d *models.Diagram) error
}

// ForFormat returns the renderer for an image format name ("svg" or "png").
func ForFormat(format string, style Style) (Renderer, error) {
	switch strings.ToLower(format) {
	case "svg":
		return &SVG{Style: style}, nil
	case "png":
		return &PNG{Style: style}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// errWriter remembers the first write error so that drawing code does
// not have to check every call.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// parseColor parses a hex color, falling back to black.
func parseColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
