package services

import (
	"database/sql"

	"shelter-cost/models"
)

// EmployeeCosts derives staffing and daily wage cost per state, and the
// national sum over states with a known cost.
//
//	num_employees_needed    = ceil(num_employees_per_10_rooms / 10 × num_reserved_rooms)
//	final_hrly_wage         = round((1 + inflation) × minimum_wage, 2)
//	tot_daily_employee_cost = work_day_hrs × final_hrly_wage × num_employees_needed
func EmployeeCosts(ds *models.Dataset, p models.CostParams) ([]models.EmployeeCost, float64) {
	return employeeCostsFrom(ds, ReserveRooms(ds, p), p)
}

func employeeCostsFrom(ds *models.Dataset, reserved []models.ReservedRooms, p models.CostParams) ([]models.EmployeeCost, float64) {
	out := make([]models.EmployeeCost, 0, len(reserved))
	var sum float64
	for i, r := range reserved {
		c := models.EmployeeCost{State: r.State}
		if r.NumReservedRooms.Valid {
			n := ceilDiv10(int64(p.NumEmployeesPer10Rooms) * r.NumReservedRooms.Int64)
			c.NumEmployeesNeeded = sql.NullInt64{Int64: n, Valid: true}
		}
		if wage := ds.Records[i].MinimumWage; wage.Valid {
			final := round2((1 + p.MinWageInflationPercentage) * wage.Float64)
			c.FinalHrlyWage = sql.NullFloat64{Float64: final, Valid: true}
		}
		if c.NumEmployeesNeeded.Valid && c.FinalHrlyWage.Valid {
			cost := float64(p.WorkDayHrs) * c.FinalHrlyWage.Float64 * float64(c.NumEmployeesNeeded.Int64)
			c.TotDailyEmployeeCost = sql.NullFloat64{Float64: cost, Valid: true}
			sum += cost
		}
		out = append(out, c)
	}
	return out, sum
}

// GuestFees derives the nightly hotel fee per state and the national sum:
//
//	guest_fee = round(num_reserved_rooms × avg_hotel_rate × percent_of_avg_nightly_fee, 2)
func GuestFees(ds *models.Dataset, p models.CostParams) ([]models.GuestFee, float64) {
	return guestFeesFrom(ReserveRooms(ds, p), p)
}

func guestFeesFrom(reserved []models.ReservedRooms, p models.CostParams) ([]models.GuestFee, float64) {
	nightly := p.NightlyFee()
	out := make([]models.GuestFee, 0, len(reserved))
	var sum float64
	for _, r := range reserved {
		g := models.GuestFee{State: r.State}
		if r.NumReservedRooms.Valid {
			fee := round2(float64(r.NumReservedRooms.Int64) * nightly)
			g.GuestFee = sql.NullFloat64{Float64: fee, Valid: true}
			sum += fee
		}
		out = append(out, g)
	}
	return out, sum
}
