package models

import "fmt"

// CostParams holds every tunable constant used by the pipeline stages.
type CostParams struct {
	// 2017 average nightly hotel rate in the US.
	AvgHotelRate float64
	// Share of the average nightly rate paid per reserved room.
	PercentOfAvgNightlyFee float64
	// People sheltered in a single room.
	PeoplePerRoom int
	// Staff required per 10 reserved rooms.
	NumEmployeesPer10Rooms int
	// Premium paid on top of minimum wage, as a fraction.
	MinWageInflationPercentage float64
	// Paid hours per employee per day.
	WorkDayHrs int
}

// DefaultCostParams returns the reference constants.
func DefaultCostParams() CostParams {
	return CostParams{
		AvgHotelRate:               180.12,
		PercentOfAvgNightlyFee:     0.40,
		PeoplePerRoom:              2,
		NumEmployeesPer10Rooms:     1,
		MinWageInflationPercentage: 0.10,
		WorkDayHrs:                 8,
	}
}

// NightlyFee is the per-room, per-night amount paid to a hotel.
func (p CostParams) NightlyFee() float64 {
	return p.AvgHotelRate * p.PercentOfAvgNightlyFee
}

// Validate rejects parameter sets the formulas cannot work with.
func (p CostParams) Validate() error {
	switch {
	case p.PeoplePerRoom <= 0:
		return fmt.Errorf("params: people per room must be positive, got %d", p.PeoplePerRoom)
	case p.NumEmployeesPer10Rooms < 0:
		return fmt.Errorf("params: employees per 10 rooms must not be negative, got %d", p.NumEmployeesPer10Rooms)
	case p.WorkDayHrs < 0:
		return fmt.Errorf("params: work day hours must not be negative, got %d", p.WorkDayHrs)
	case p.AvgHotelRate < 0:
		return fmt.Errorf("params: average hotel rate must not be negative, got %.2f", p.AvgHotelRate)
	case p.PercentOfAvgNightlyFee < 0:
		return fmt.Errorf("params: nightly fee percentage must not be negative, got %.2f", p.PercentOfAvgNightlyFee)
	case p.MinWageInflationPercentage < -1:
		return fmt.Errorf("params: wage inflation below -100%%, got %.2f", p.MinWageInflationPercentage)
	}
	return nil
}
