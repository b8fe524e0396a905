package services

import (
	"database/sql"

	"shelter-cost/models"
)

// CostSums are national column sums of the total cost table. Null cells are skipped.
type CostSums struct {
	Employee float64
	Guest    float64
	Total    float64
}

// TotalCosts sums employee cost and guest fee per state.
func TotalCosts(ds *models.Dataset, p models.CostParams) ([]models.TotalCost, CostSums) {
	reserved := ReserveRooms(ds, p)
	employee, _ := employeeCostsFrom(ds, reserved, p)
	guest, _ := guestFeesFrom(reserved, p)
	rows := CombineCosts(employee, guest)
	return rows, SumTotals(rows)
}

// CombineCosts joins employee and guest rows on state, in employee order.
// A state missing from the guest side, or null on either side, gets a null
// total; missing values are never treated as zero.
func CombineCosts(employee []models.EmployeeCost, guest []models.GuestFee) []models.TotalCost {
	fees := make(map[string]sql.NullFloat64, len(guest))
	for _, g := range guest {
		if _, dup := fees[g.State]; !dup {
			fees[g.State] = g.GuestFee
		}
	}

	out := make([]models.TotalCost, 0, len(employee))
	for _, e := range employee {
		t := models.TotalCost{
			State:                e.State,
			TotDailyEmployeeCost: e.TotDailyEmployeeCost,
			GuestFee:             fees[e.State],
		}
		if t.TotDailyEmployeeCost.Valid && t.GuestFee.Valid {
			t.Total = sql.NullFloat64{Float64: t.TotDailyEmployeeCost.Float64 + t.GuestFee.Float64, Valid: true}
		}
		out = append(out, t)
	}
	return out
}

// SumTotals adds up each column of a total cost table.
func SumTotals(rows []models.TotalCost) CostSums {
	var s CostSums
	for _, r := range rows {
		if r.TotDailyEmployeeCost.Valid {
			s.Employee += r.TotDailyEmployeeCost.Float64
		}
		if r.GuestFee.Valid {
			s.Guest += r.GuestFee.Float64
		}
		if r.Total.Valid {
			s.Total += r.Total.Float64
		}
	}
	return s
}

// DurationalCosts projects every state's daily total over models.Durations.
// The returned sums are index-aligned with models.Durations.
func DurationalCosts(ds *models.Dataset, p models.CostParams) ([]models.DurationalCost, []float64) {
	totals, _ := TotalCosts(ds, p)
	rows := ProjectDurations(totals)

	sums := make([]float64, len(models.Durations))
	for _, r := range rows {
		for i, c := range r.Costs {
			if c.Valid {
				sums[i] += c.Float64
			}
		}
	}
	return rows, sums
}

// ProjectDurations multiplies each total by every day count. Null totals stay null.
func ProjectDurations(totals []models.TotalCost) []models.DurationalCost {
	out := make([]models.DurationalCost, 0, len(totals))
	for _, t := range totals {
		d := models.DurationalCost{State: t.State, Costs: make([]sql.NullFloat64, len(models.Durations))}
		if t.Total.Valid {
			for i, days := range models.Durations {
				d.Costs[i] = sql.NullFloat64{Float64: t.Total.Float64 * float64(days), Valid: true}
			}
		}
		out = append(out, d)
	}
	return out
}
