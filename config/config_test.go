package config

import (
	"testing"

	"shelter-cost/models"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"DATA_SOURCE", "RENDER_IMAGES", "OUTPUT_DIR",
		"AVG_HOTEL_RATE", "PERCENT_OF_AVG_NIGHTLY_FEE", "PEOPLE_PER_ROOM",
		"NUM_EMPLOYEES_PER_10_ROOMS", "MIN_WAGE_INFLATION_PERCENTAGE", "WORK_DAY_HRS",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	if cfg.DataSource != "csv" {
		t.Errorf("DataSource: got %q, want %q", cfg.DataSource, "csv")
	}
	if cfg.Params != models.DefaultCostParams() {
		t.Errorf("Params: got %+v, want defaults", cfg.Params)
	}
	if cfg.RenderImages {
		t.Error("RenderImages should default to false")
	}
	if cfg.OutputDir != "./img" {
		t.Errorf("OutputDir: got %q, want ./img", cfg.OutputDir)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DATA_SOURCE", "SQLite")
	t.Setenv("PEOPLE_PER_ROOM", "3")
	t.Setenv("AVG_HOTEL_RATE", "150.5")
	t.Setenv("MIN_WAGE_INFLATION_PERCENTAGE", "0.25")
	t.Setenv("RENDER_IMAGES", "true")
	t.Setenv("WORK_DAY_HRS", "not-a-number")

	cfg := FromEnv()
	if cfg.DataSource != "sqlite" {
		t.Errorf("DataSource: got %q, want sqlite", cfg.DataSource)
	}
	if cfg.Params.PeoplePerRoom != 3 {
		t.Errorf("PeoplePerRoom: got %d, want 3", cfg.Params.PeoplePerRoom)
	}
	if cfg.Params.AvgHotelRate != 150.5 {
		t.Errorf("AvgHotelRate: got %.2f, want 150.5", cfg.Params.AvgHotelRate)
	}
	if cfg.Params.MinWageInflationPercentage != 0.25 {
		t.Errorf("MinWageInflationPercentage: got %.2f, want 0.25", cfg.Params.MinWageInflationPercentage)
	}
	if !cfg.RenderImages {
		t.Error("RenderImages should be true")
	}
	if cfg.Params.WorkDayHrs != 8 {
		t.Errorf("WorkDayHrs should fall back to 8 on bad input, got %d", cfg.Params.WorkDayHrs)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		PostgresHost: "db", PostgresPort: "5433", PostgresUser: "u",
		PostgresPassword: "p", PostgresDB: "d", PostgresSSLMode: "disable",
	}
	want := "host=db port=5433 user=u password=p dbname=d sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN: got %q, want %q", got, want)
	}
}
