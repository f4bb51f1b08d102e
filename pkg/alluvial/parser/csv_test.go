package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

func TestReadCSV(t *testing.T) {
	data := "Publication Year,Topic,Title\n" +
		"2012, Energy ,a\n" +
		"\n" +
		"2019.0,Water,b\n" +
		",Water,c\n" +
		"2021\n"

	records, err := ReadCSV(strings.NewReader(data), DefaultColumns())
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	want := []models.Record{
		{Row: 2, Category: "Energy", Year: "2012"},
		{Row: 4, Category: "Water", Year: "2019.0"},
		{Row: 5, Category: "Water", Year: ""},
		{Row: 6, Category: "", Year: "2021"},
	}
	if len(records) != len(want) {
		t.Fatalf("Expected %d records, got %d: %v", len(want), len(records), records)
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d = %+v, expected %+v", i, records[i], want[i])
		}
	}
}

func TestReadCSVCustomColumns(t *testing.T) {
	data := "Year,Region\n2015,Asia\n"
	records, err := ReadCSV(strings.NewReader(data), Columns{Category: "region", Year: "year"})
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(records) != 1 || records[0].Category != "Asia" || records[0].Year != "2015" {
		t.Errorf("unexpected records %v", records)
	}
}

func TestReadCSVNoHeader(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("\n\n"), DefaultColumns())
	if !errors.Is(err, ErrNoHeader) {
		t.Errorf("Expected ErrNoHeader, got %v", err)
	}
}

func TestReadDispatchesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.CSV")
	if err := os.WriteFile(path, []byte("Topic,Publication Year\nEnergy,2014\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	records, err := Read(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 1 || records[0].Category != "Energy" {
		t.Errorf("unexpected records %v", records)
	}
}
