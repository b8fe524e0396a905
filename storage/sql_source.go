package storage

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"shelter-cost/models"
)

// Tables names the three dataset tables read by SQLSource.
type Tables struct {
	Hotel       string
	Homeless    string
	MinimumWage string
}

// DefaultTables uses the dataset names as table names.
func DefaultTables() Tables {
	return Tables{
		Hotel:       models.DatasetHotel,
		Homeless:    models.DatasetHomeless,
		MinimumWage: models.DatasetMinimumWage,
	}
}

// SQLSource loads the datasets from a PostgreSQL or SQLite database.
// Rows are read in state order.
type SQLSource struct {
	db     *sql.DB
	tables Tables
}

// OpenSQLSource opens a connection with the given driver ("postgres" or
// "sqlite3") and checks it once. There is no retry; a failed ping is a
// DataLoadError.
func OpenSQLSource(driver, dsn string) (*SQLSource, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, &models.DataLoadError{Source: driver, Err: fmt.Errorf("open: %w", err)}
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, &models.DataLoadError{Source: driver, Err: fmt.Errorf("ping: %w", err)}
	}
	return NewSQLSource(db, DefaultTables()), nil
}

// NewSQLSource wraps an existing connection.
func NewSQLSource(db *sql.DB, tables Tables) *SQLSource {
	return &SQLSource{db: db, tables: tables}
}

// Load reads all three tables and joins them.
func (s *SQLSource) Load() (*models.Dataset, error) {
	var hotels []models.HotelCapacity
	err := s.query(s.tables.Hotel, "num_avail_rooms", func(rows *sql.Rows) error {
		var h models.HotelCapacity
		if err := rows.Scan(&h.State, &h.NumAvailRooms); err != nil {
			return err
		}
		h.State = normaliseState(h.State)
		hotels = append(hotels, h)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var homeless []models.HomelessCount
	err = s.query(s.tables.Homeless, "tot_homeless_population", func(rows *sql.Rows) error {
		var h models.HomelessCount
		if err := rows.Scan(&h.State, &h.TotHomelessPopulation); err != nil {
			return err
		}
		h.State = normaliseState(h.State)
		homeless = append(homeless, h)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var wages []models.MinimumWage
	err = s.query(s.tables.MinimumWage, "minimum_wage", func(rows *sql.Rows) error {
		var w models.MinimumWage
		if err := rows.Scan(&w.State, &w.MinimumWage); err != nil {
			return err
		}
		w.State = normaliseState(w.State)
		wages = append(wages, w)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return Join(hotels, homeless, wages)
}

func (s *SQLSource) query(table, column string, scan func(*sql.Rows) error) error {
	q := fmt.Sprintf("SELECT state, %s FROM %s ORDER BY state",
		pq.QuoteIdentifier(column), pq.QuoteIdentifier(table))

	rows, err := s.db.Query(q)
	if err != nil {
		return &models.DataLoadError{Source: table, Err: fmt.Errorf("query: %w", err)}
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return &models.DataLoadError{Source: table, Column: column, Err: fmt.Errorf("%w: %v", models.ErrInvalidValue, err)}
		}
	}
	if err := rows.Err(); err != nil {
		return &models.DataLoadError{Source: table, Err: err}
	}
	return nil
}

// Close closes the underlying connection.
func (s *SQLSource) Close() error {
	return s.db.Close()
}
