package storage

import (
	"database/sql"
	"errors"
	"testing"

	"shelter-cost/models"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedSQLite(t *testing.T, db *sql.DB) {
	t.Helper()
	stmts := []string{
		`CREATE TABLE hotel_data (state TEXT PRIMARY KEY, num_hotels INTEGER, num_avail_rooms INTEGER NOT NULL)`,
		`CREATE TABLE homeless_data (state TEXT PRIMARY KEY, tot_homeless_population INTEGER NOT NULL)`,
		`CREATE TABLE minimum_wage (state TEXT PRIMARY KEY, minimum_wage REAL NOT NULL)`,
		`INSERT INTO hotel_data VALUES ('Alaska', 12, 50), ('Ohio', 80, 1300), ('Texas', 400, 1000)`,
		`INSERT INTO homeless_data VALUES ('Ohio', 90), ('Texas', 400)`,
		`INSERT INTO minimum_wage VALUES ('Alaska', 9.89), ('Texas', 7.25)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("seed %q: %v", s, err)
		}
	}
}

func TestSQLSourceMatchesCSVSource(t *testing.T) {
	db := openSQLite(t)
	seedSQLite(t, db)

	fromSQL, err := NewSQLSource(db, DefaultTables()).Load()
	if err != nil {
		t.Fatalf("SQL Load: %v", err)
	}
	fromCSV, err := sampleCSVSource(t).Load()
	if err != nil {
		t.Fatalf("CSV Load: %v", err)
	}

	if fromSQL.Len() != fromCSV.Len() {
		t.Fatalf("Len: sql %d, csv %d", fromSQL.Len(), fromCSV.Len())
	}
	for i := range fromSQL.Records {
		if fromSQL.Records[i] != fromCSV.Records[i] {
			t.Errorf("record %d: sql %+v, csv %+v", i, fromSQL.Records[i], fromCSV.Records[i])
		}
	}
}

func TestSQLSourceMissingTable(t *testing.T) {
	db := openSQLite(t)
	if _, err := db.Exec(`CREATE TABLE hotel_data (state TEXT, num_avail_rooms INTEGER)`); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := NewSQLSource(db, DefaultTables()).Load()
	var loadErr *models.DataLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected DataLoadError, got %v", err)
	}
	if loadErr.Source != models.DatasetHomeless {
		t.Errorf("Source: got %q, want %q", loadErr.Source, models.DatasetHomeless)
	}
}

func TestSQLSourceNullCell(t *testing.T) {
	db := openSQLite(t)
	seedSQLite(t, db)
	if _, err := db.Exec(`CREATE TABLE wages_with_null (state TEXT, minimum_wage REAL)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO wages_with_null VALUES ('Texas', NULL)`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	tables := DefaultTables()
	tables.MinimumWage = "wages_with_null"
	_, err := NewSQLSource(db, tables).Load()
	if !errors.Is(err, models.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for NULL wage, got %v", err)
	}
}

func TestSQLSourceRejectsNegativeValues(t *testing.T) {
	tests := []struct {
		name   string
		stmt   string
		column string
	}{
		{"rooms", `UPDATE hotel_data SET num_avail_rooms = -1000 WHERE state = 'Texas'`, "num_avail_rooms"},
		{"population", `UPDATE homeless_data SET tot_homeless_population = -400 WHERE state = 'Texas'`, "tot_homeless_population"},
		{"wage", `UPDATE minimum_wage SET minimum_wage = -7.25 WHERE state = 'Texas'`, "minimum_wage"},
	}
	for _, tt := range tests {
		db := openSQLite(t)
		seedSQLite(t, db)
		if _, err := db.Exec(tt.stmt); err != nil {
			t.Fatalf("%s: update: %v", tt.name, err)
		}

		ds, err := NewSQLSource(db, DefaultTables()).Load()
		if !errors.Is(err, models.ErrInvalidValue) {
			t.Errorf("%s: expected ErrInvalidValue, got err=%v dataset=%+v", tt.name, err, ds)
			continue
		}
		var loadErr *models.DataLoadError
		if errors.As(err, &loadErr) && loadErr.Column != tt.column {
			t.Errorf("%s: column: got %q, want %q", tt.name, loadErr.Column, tt.column)
		}
	}
}

func TestOpenSQLSourceSQLite(t *testing.T) {
	src, err := OpenSQLSource("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("OpenSQLSource: %v", err)
	}
	defer src.Close()

	if _, err := src.Load(); err == nil {
		t.Error("expected an error loading from an empty database")
	}
}
