package models

import (
	"database/sql"
	"math"
)

// Dataset names double as default CSV file stems and SQL table names.
const (
	DatasetHotel       = "hotel_data"
	DatasetHomeless    = "homeless_data"
	DatasetMinimumWage = "minimum_wage"
)

// HotelCapacity is one row of the hotel dataset.
type HotelCapacity struct {
	State         string
	NumAvailRooms int64
}

// HomelessCount is one row of the homeless population dataset.
type HomelessCount struct {
	State                 string
	TotHomelessPopulation int64
}

// MinimumWage is one row of the minimum wage dataset.
type MinimumWage struct {
	State       string
	MinimumWage float64
}

// StateRecord is the joined view of a single state. Fields sourced from the
// homeless and minimum wage datasets are null when the state has no row there.
type StateRecord struct {
	State                 string
	NumAvailRooms         int64
	TotHomelessPopulation sql.NullInt64
	MinimumWage           sql.NullFloat64
}

// Dataset is the joined table in hotel data order. It is built once and
// treated as read-only afterwards.
type Dataset struct {
	Records []StateRecord
}

// Len returns the number of states in the dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Occupancy is the share of a state's available rooms needed to shelter its
// homeless population. The value is not clamped and may exceed 1.
type Occupancy struct {
	State       string
	PercentComp sql.NullFloat64
}

// Undefined reports whether the fraction is the zero-rooms sentinel
// (+Inf, or NaN when the population is also zero).
func (o Occupancy) Undefined() bool {
	if !o.PercentComp.Valid {
		return false
	}
	return math.IsInf(o.PercentComp.Float64, 0) || math.IsNaN(o.PercentComp.Float64)
}

// ReservedRooms is the integer room count allocated to a state.
type ReservedRooms struct {
	State            string
	NumReservedRooms sql.NullInt64
}

// EmployeeCost holds the staffing derivation for one state.
type EmployeeCost struct {
	State                string
	NumEmployeesNeeded   sql.NullInt64
	FinalHrlyWage        sql.NullFloat64
	TotDailyEmployeeCost sql.NullFloat64
}

// GuestFee is the nightly amount paid to hotels for a state's reserved rooms.
type GuestFee struct {
	State    string
	GuestFee sql.NullFloat64
}

// TotalCost combines employee cost and guest fee for one state.
type TotalCost struct {
	State                string
	TotDailyEmployeeCost sql.NullFloat64
	GuestFee             sql.NullFloat64
	Total                sql.NullFloat64
}

// Durations are the day counts the daily total is projected over.
var Durations = []int{1, 15, 30, 45, 60}

// DurationalCost is a state's daily total projected across Durations.
// Costs is index-aligned with Durations.
type DurationalCost struct {
	State string
	Costs []sql.NullFloat64
}

// Cost returns the projected cost for the given day count.
func (d DurationalCost) Cost(days int) (sql.NullFloat64, bool) {
	for i, n := range Durations {
		if n == days && i < len(d.Costs) {
			return d.Costs[i], true
		}
	}
	return sql.NullFloat64{}, false
}
