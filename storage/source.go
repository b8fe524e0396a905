package storage

import (
	"fmt"

	"shelter-cost/config"
)

// Data source kinds accepted in DATA_SOURCE.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

// OpenSource returns the DatasetSource selected by cfg.DataSource together
// with a function releasing whatever it holds open.
func OpenSource(cfg *config.Config) (DatasetSource, func() error, error) {
	noop := func() error { return nil }

	switch cfg.DataSource {
	case SourceCSV, "":
		return NewCSVSource(cfg.HotelDataPath, cfg.HomelessDataPath, cfg.MinimumWageDataPath), noop, nil
	case SourcePostgres:
		src, err := OpenSQLSource("postgres", cfg.DSN())
		if err != nil {
			return nil, noop, err
		}
		return src, src.Close, nil
	case SourceSQLite:
		src, err := OpenSQLSource("sqlite3", cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return src, src.Close, nil
	}
	return nil, noop, fmt.Errorf("storage: unknown data source %q (want csv, postgres or sqlite)", cfg.DataSource)
}
