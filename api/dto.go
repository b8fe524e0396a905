package api

import (
	"database/sql"
	"strconv"

	"shelter-cost/models"
	"shelter-cost/services"
)

// Null database values are encoded as JSON null.

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

type occupancyRow struct {
	State       string   `json:"state"`
	PercentComp *float64 `json:"percent_comp"`
	Undefined   bool     `json:"undefined,omitempty"`
}

type reservedRoomsRow struct {
	State            string `json:"state"`
	NumReservedRooms *int64 `json:"num_reserved_rooms"`
}

type employeeCostRow struct {
	State                string   `json:"state"`
	NumEmployeesNeeded   *int64   `json:"num_employees_needed"`
	FinalHrlyWage        *float64 `json:"final_hrly_wage"`
	TotDailyEmployeeCost *float64 `json:"tot_daily_employee_cost"`
}

type guestFeeRow struct {
	State    string   `json:"state"`
	GuestFee *float64 `json:"guest_fee"`
}

type totalCostRow struct {
	State                string   `json:"state"`
	TotDailyEmployeeCost *float64 `json:"tot_daily_employee_cost"`
	GuestFee             *float64 `json:"guest_fee"`
	Total                *float64 `json:"total"`
}

type durationalCostRow struct {
	State string              `json:"state"`
	Costs map[string]*float64 `json:"costs"`
}

// JSON cannot carry +Inf or NaN, so undefined occupancy is sent as null with a flag.
func toOccupancy(rows []models.Occupancy) []occupancyRow {
	out := make([]occupancyRow, 0, len(rows))
	for _, o := range rows {
		r := occupancyRow{State: o.State, Undefined: o.Undefined()}
		if !r.Undefined {
			r.PercentComp = nullFloat(o.PercentComp)
		}
		out = append(out, r)
	}
	return out
}

func toReservedRooms(rows []models.ReservedRooms) []reservedRoomsRow {
	out := make([]reservedRoomsRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, reservedRoomsRow{State: r.State, NumReservedRooms: nullInt(r.NumReservedRooms)})
	}
	return out
}

func toEmployeeCost(r models.EmployeeCost) employeeCostRow {
	return employeeCostRow{
		State:                r.State,
		NumEmployeesNeeded:   nullInt(r.NumEmployeesNeeded),
		FinalHrlyWage:        nullFloat(r.FinalHrlyWage),
		TotDailyEmployeeCost: nullFloat(r.TotDailyEmployeeCost),
	}
}

func toEmployeeCosts(rows []models.EmployeeCost) []employeeCostRow {
	out := make([]employeeCostRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, toEmployeeCost(r))
	}
	return out
}

func toGuestFees(rows []models.GuestFee) []guestFeeRow {
	out := make([]guestFeeRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, guestFeeRow{State: r.State, GuestFee: nullFloat(r.GuestFee)})
	}
	return out
}

func toTotalCosts(rows []models.TotalCost) []totalCostRow {
	out := make([]totalCostRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, totalCostRow{
			State:                r.State,
			TotDailyEmployeeCost: nullFloat(r.TotDailyEmployeeCost),
			GuestFee:             nullFloat(r.GuestFee),
			Total:                nullFloat(r.Total),
		})
	}
	return out
}

func toDurationalCosts(rows []models.DurationalCost) []durationalCostRow {
	out := make([]durationalCostRow, 0, len(rows))
	for _, r := range rows {
		row := durationalCostRow{State: r.State, Costs: make(map[string]*float64, len(models.Durations))}
		for _, days := range models.Durations {
			c, _ := r.Cost(days)
			row.Costs[strconv.Itoa(days)] = nullFloat(c)
		}
		out = append(out, row)
	}
	return out
}

func durationSums(sums []float64) map[string]float64 {
	out := make(map[string]float64, len(sums))
	for i, days := range models.Durations {
		if i < len(sums) {
			out[strconv.Itoa(days)] = sums[i]
		}
	}
	return out
}

type costSums struct {
	Employee float64 `json:"employee"`
	Guest    float64 `json:"guest"`
	Total    float64 `json:"total"`
}

func toCostSums(s services.CostSums) costSums {
	return costSums{Employee: s.Employee, Guest: s.Guest, Total: s.Total}
}
