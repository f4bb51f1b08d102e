package alluvial

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
	"github.com/ukaji3/alluvial-go/pkg/alluvial/parser"
)

// GenerateFromFile reads records from an .xlsx or .csv file and lays them
// out.
func GenerateFromFile(path string, opts Options) (*models.Diagram, error) {
	// Validate boundaries before touching the file.
	if _, err := NewBuckets(opts.Boundaries); err != nil {
		return nil, err
	}

	records, err := parser.Read(path, opts.Read)
	if err != nil {
		return nil, err
	}
	opts.logger().Info("read records", zap.String("path", path), zap.Int("records", len(records)))
	return Generate(records, opts)
}

// Generate buckets, counts and lays out records. Records with missing or
// unparseable fields and records outside the bucket range are dropped;
// if nothing is left, Generate returns ErrInvalidInput.
func Generate(records []models.Record, opts Options) (*models.Diagram, error) {
	log := opts.logger()

	bucketer, err := NewBucketer(opts.Boundaries)
	if err != nil {
		return nil, err
	}

	res := bucketer.Assign(records)
	for _, verr := range res.Invalid {
		log.Debug("dropped record",
			zap.Int("row", verr.Row),
			zap.String("field", verr.Field),
			zap.String("value", verr.Value),
			zap.Error(verr.Err))
	}
	if len(res.Tagged) == 0 {
		return nil, fmt.Errorf("%w: no usable records (%d read, %d invalid, %d out of range)",
			ErrInvalidInput, len(records), len(res.Invalid), res.OutOfRange)
	}

	table, err := Aggregate(res.Tagged, bucketer.Buckets())
	if err != nil {
		return nil, err
	}

	d, err := GenerateFromTable(table, opts)
	if err != nil {
		return nil, err
	}
	d.Summary = &models.Summary{
		Records:    len(records),
		Kept:       len(res.Tagged),
		Invalid:    len(res.Invalid),
		OutOfRange: res.OutOfRange,
		Categories: table.Order().Len(),
		Buckets:    len(table.Buckets()),
	}
	log.Info("laid out diagram",
		zap.Int("records", d.Summary.Records),
		zap.Int("kept", d.Summary.Kept),
		zap.Int("invalid", d.Summary.Invalid),
		zap.Int("out_of_range", d.Summary.OutOfRange),
		zap.Int("categories", d.Summary.Categories),
		zap.Int("bands", len(d.Bands)))
	return d, nil
}

// GenerateFromTable lays out an already aggregated table.
func GenerateFromTable(t *CountTable, opts Options) (*models.Diagram, error) {
	layout, err := ComputeLayout(t)
	if err != nil {
		return nil, err
	}
	order := layout.Order()
	colors := AssignColors(order, opts.Colors)

	buckets := layout.Buckets()
	xs := XPositions(len(buckets))
	bands, err := BuildBands(layout, colors, xs, opts.Opacity)
	if err != nil {
		return nil, err
	}

	d := &models.Diagram{
		Bands:        bands,
		Anchors:      make([]models.CategoryAnchor, order.Len()),
		BucketLabels: make([]string, len(buckets)),
		BucketX:      xs,
		Totals:       make([]float64, len(buckets)),
	}
	for c := range d.Anchors {
		d.Anchors[c] = models.CategoryAnchor{
			Category: order.Name(c),
			X:        opts.LabelX,
			Y:        layout.Anchor(c),
			Color:    colors[c].Hex,
		}
	}
	tallest := 0
	for b, bucket := range buckets {
		d.BucketLabels[b] = bucket.Label
		d.Totals[b] = float64(layout.Total(b))
		if layout.Total(b) > tallest {
			tallest = layout.Total(b)
		}
	}
	d.YMax = float64(tallest) + opts.Headroom*float64(t.MaxCount())
	return d, nil
}
