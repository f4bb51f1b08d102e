package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

// ReadCSVFile reads records from a CSV file.
func ReadCSVFile(path string, cols Columns) ([]models.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open CSV file %s: %w", path, err)
	}
	defer file.Close()

	return ReadCSV(file, cols)
}

// ReadCSV reads records from CSV data with a header row.
func ReadCSV(r io.Reader, cols Columns) ([]models.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []sheetRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, sheetRow{num: line, cells: record})
	}

	return toRecords(rows, cols)
}
