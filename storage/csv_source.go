package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"shelter-cost/models"
)

// CSVSource loads the three datasets from CSV files with header rows.
// Columns are located by exact header name; extra columns are ignored.
type CSVSource struct {
	HotelPath       string
	HomelessPath    string
	MinimumWagePath string
}

// NewCSVSource returns a CSVSource reading the given files.
func NewCSVSource(hotelPath, homelessPath, minimumWagePath string) *CSVSource {
	return &CSVSource{
		HotelPath:       hotelPath,
		HomelessPath:    homelessPath,
		MinimumWagePath: minimumWagePath,
	}
}

// Load reads and joins all three files. Any failure is a *models.DataLoadError.
func (s *CSVSource) Load() (*models.Dataset, error) {
	hotels, err := openAndRead(s.HotelPath, ReadHotels)
	if err != nil {
		return nil, err
	}
	homeless, err := openAndRead(s.HomelessPath, ReadHomeless)
	if err != nil {
		return nil, err
	}
	wages, err := openAndRead(s.MinimumWagePath, ReadMinimumWages)
	if err != nil {
		return nil, err
	}
	return Join(hotels, homeless, wages)
}

func openAndRead[T any](path string, read func(io.Reader, string) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &models.DataLoadError{Source: path, Err: err}
	}
	defer f.Close()
	return read(f, path)
}

// ReadHotels parses hotel rows (state, num_avail_rooms) from r.
func ReadHotels(r io.Reader, source string) ([]models.HotelCapacity, error) {
	const col = "num_avail_rooms"
	var out []models.HotelCapacity
	err := readRows(r, source, []string{"state", col}, func(state string, cells []string) error {
		n, err := parseCount(cells[0])
		if err != nil {
			return &models.DataLoadError{Source: source, Column: col, Err: err}
		}
		out = append(out, models.HotelCapacity{State: state, NumAvailRooms: n})
		return nil
	})
	return out, err
}

// ReadHomeless parses homeless rows (state, tot_homeless_population) from r.
func ReadHomeless(r io.Reader, source string) ([]models.HomelessCount, error) {
	const col = "tot_homeless_population"
	var out []models.HomelessCount
	err := readRows(r, source, []string{"state", col}, func(state string, cells []string) error {
		n, err := parseCount(cells[0])
		if err != nil {
			return &models.DataLoadError{Source: source, Column: col, Err: err}
		}
		out = append(out, models.HomelessCount{State: state, TotHomelessPopulation: n})
		return nil
	})
	return out, err
}

// ReadMinimumWages parses wage rows (state, minimum_wage) from r.
func ReadMinimumWages(r io.Reader, source string) ([]models.MinimumWage, error) {
	const col = "minimum_wage"
	var out []models.MinimumWage
	err := readRows(r, source, []string{"state", col}, func(state string, cells []string) error {
		w, err := parseAmount(cells[0])
		if err != nil {
			return &models.DataLoadError{Source: source, Column: col, Err: err}
		}
		out = append(out, models.MinimumWage{State: state, MinimumWage: w})
		return nil
	})
	return out, err
}

// readRows reads the header, resolves the required columns and calls fn for
// each data row with the normalised state and the remaining required cells.
func readRows(r io.Reader, source string, required []string, fn func(state string, cells []string) error) error {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return &models.DataLoadError{Source: source, Err: errors.New("empty file")}
	}
	if err != nil {
		return &models.DataLoadError{Source: source, Err: fmt.Errorf("read header: %w", err)}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	positions := make([]int, len(required))
	for i, name := range required {
		pos, ok := index[name]
		if !ok {
			return &models.DataLoadError{Source: source, Column: name, Err: models.ErrMissingColumn}
		}
		positions[i] = pos
	}

	cells := make([]string, len(required)-1)
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &models.DataLoadError{Source: source, Err: err}
		}
		for i, pos := range positions[1:] {
			cells[i] = rec[pos]
		}
		if err := fn(normaliseState(rec[positions[0]]), cells); err != nil {
			return err
		}
	}
}
