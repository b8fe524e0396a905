package storage

import (
	"database/sql"
	"fmt"
	"math"

	"shelter-cost/models"
)

// Join left-joins hotel rows with the homeless and minimum wage rows on the
// exact state name. Hotel order is kept. States missing from either right
// side keep null fields. Duplicate or empty state keys, and negative or
// non-finite values, in any input fail the join with a DataLoadError.
func Join(hotels []models.HotelCapacity, homeless []models.HomelessCount, wages []models.MinimumWage) (*models.Dataset, error) {
	seen := make(map[string]struct{}, len(hotels))
	for _, h := range hotels {
		if err := checkKey(models.DatasetHotel, h.State, seen); err != nil {
			return nil, err
		}
		if h.NumAvailRooms < 0 {
			return nil, valueError(models.DatasetHotel, "num_avail_rooms", h.State, h.NumAvailRooms)
		}
	}

	population := make(map[string]int64, len(homeless))
	for _, h := range homeless {
		if _, dup := population[h.State]; dup || h.State == "" {
			return nil, keyError(models.DatasetHomeless, h.State)
		}
		if h.TotHomelessPopulation < 0 {
			return nil, valueError(models.DatasetHomeless, "tot_homeless_population", h.State, h.TotHomelessPopulation)
		}
		population[h.State] = h.TotHomelessPopulation
	}

	wage := make(map[string]float64, len(wages))
	for _, w := range wages {
		if _, dup := wage[w.State]; dup || w.State == "" {
			return nil, keyError(models.DatasetMinimumWage, w.State)
		}
		if w.MinimumWage < 0 || math.IsNaN(w.MinimumWage) || math.IsInf(w.MinimumWage, 0) {
			return nil, valueError(models.DatasetMinimumWage, "minimum_wage", w.State, w.MinimumWage)
		}
		wage[w.State] = w.MinimumWage
	}

	ds := &models.Dataset{Records: make([]models.StateRecord, 0, len(hotels))}
	for _, h := range hotels {
		rec := models.StateRecord{State: h.State, NumAvailRooms: h.NumAvailRooms}
		if pop, ok := population[h.State]; ok {
			rec.TotHomelessPopulation = sql.NullInt64{Int64: pop, Valid: true}
		}
		if w, ok := wage[h.State]; ok {
			rec.MinimumWage = sql.NullFloat64{Float64: w, Valid: true}
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}

func checkKey(source, state string, seen map[string]struct{}) error {
	if _, dup := seen[state]; dup || state == "" {
		return keyError(source, state)
	}
	seen[state] = struct{}{}
	return nil
}

func keyError(source, state string) error {
	if state == "" {
		return &models.DataLoadError{Source: source, Column: "state", Err: fmt.Errorf("%w: empty state", models.ErrInvalidValue)}
	}
	return &models.DataLoadError{Source: source, Column: "state", Err: fmt.Errorf("%w: %q", models.ErrDuplicateState, state)}
}

func valueError(source, column, state string, v any) error {
	return &models.DataLoadError{Source: source, Column: column, Err: fmt.Errorf("%w: %v for %q", models.ErrInvalidValue, v, state)}
}
