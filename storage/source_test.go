package storage

import (
	"path/filepath"
	"testing"

	"shelter-cost/config"
)

func TestOpenSourceCSV(t *testing.T) {
	csv := sampleCSVSource(t)
	cfg := &config.Config{
		DataSource:          SourceCSV,
		HotelDataPath:       csv.HotelPath,
		HomelessDataPath:    csv.HomelessPath,
		MinimumWageDataPath: csv.MinimumWagePath,
	}

	src, closeFn, err := OpenSource(cfg)
	if err != nil {
		t.Fatalf("OpenSource: %v", err)
	}
	defer closeFn()

	if _, ok := src.(*CSVSource); !ok {
		t.Fatalf("expected *CSVSource, got %T", src)
	}
	ds, err := src.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Len() != 3 {
		t.Errorf("Len: got %d, want 3", ds.Len())
	}
}

func TestOpenSourceSQLite(t *testing.T) {
	cfg := &config.Config{
		DataSource: SourceSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "shelter.db"),
	}

	src, closeFn, err := OpenSource(cfg)
	if err != nil {
		t.Fatalf("OpenSource: %v", err)
	}
	if _, ok := src.(*SQLSource); !ok {
		t.Errorf("expected *SQLSource, got %T", src)
	}
	if err := closeFn(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestOpenSourceUnknownKind(t *testing.T) {
	if _, _, err := OpenSource(&config.Config{DataSource: "excel"}); err == nil {
		t.Error("expected error for unknown data source")
	}
}
