package report

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"shelter-cost/models"
	"shelter-cost/services"
)

// Fixed artifact names, one per stage visualization.
const (
	OccupancyChart     = "all_homeless_in_all_rooms_percentage"
	ReservedRoomsChart = "num_reserved_rooms"
	EmployeeCostChart  = "daily_employee_cost"
	EmployeeCostTable  = "daily_employee_cost_table"
	GuestFeeChart      = "daily_guest_fee_cost"
	GuestFeeTable      = "daily_guest_fee_table"
	TotalCostChart     = "total_daily_cost"
	TotalCostTable     = "total_daily_cost_table"
	DurationalTable    = "durational_total_costs_table"
)

func moneyBar(state string, v sql.NullFloat64) Bar {
	return Bar{Label: state, Value: v.Float64, Display: FormatNullMoney(v), Missing: !v.Valid}
}

func nationalNote(sum float64) string {
	return "Total National Daily Cost = " + FormatMoney(sum)
}

func employeeSubtitle(p models.CostParams) string {
	return fmt.Sprintf("%d employees per 10 rooms - %s%% Minimum Wage Inflation",
		p.NumEmployeesPer10Rooms, formatPercent(p.MinWageInflationPercentage))
}

func guestSubtitle(p models.CostParams) string {
	return fmt.Sprintf("Nightly Rate = %s (Avg National Nightly Rate = %s)",
		FormatMoney(p.NightlyFee()), FormatMoney(p.AvgHotelRate))
}

// BuildOccupancyChart charts percent_comp per state. Undefined fractions
// (zero available rooms) are drawn as missing bars.
func BuildOccupancyChart(rows []models.Occupancy, p models.CostParams) *BarChart {
	c := &BarChart{
		Title:  fmt.Sprintf("The Effect of Sheltering the Homeless Population into All Available Hotel Rooms (%d people per room)", p.PeoplePerRoom),
		XLabel: "State",
		YLabel: "Percent of Rooms Occupied By Homeless Population",
	}
	for _, o := range rows {
		b := Bar{Label: o.State, Missing: !o.PercentComp.Valid || o.Undefined()}
		if !b.Missing {
			b.Value = o.PercentComp.Float64
			b.Display = strconv.FormatFloat(o.PercentComp.Float64, 'f', 4, 64)
		} else {
			b.Display = Missing
		}
		c.Bars = append(c.Bars, b)
	}
	return c
}

// BuildReservedRoomsChart charts num_reserved_rooms per state.
func BuildReservedRoomsChart(rows []models.ReservedRooms) *BarChart {
	c := &BarChart{
		Title:  "Number of Reserved Rooms Per State by Homeless Population Composition",
		XLabel: "State",
		YLabel: "Number of Rooms",
	}
	for _, r := range rows {
		c.Bars = append(c.Bars, Bar{
			Label:   r.State,
			Value:   float64(r.NumReservedRooms.Int64),
			Display: FormatCount(r.NumReservedRooms),
			Missing: !r.NumReservedRooms.Valid,
		})
	}
	return c
}

// BuildEmployeeCostChart charts the daily employee cost with the national sum.
func BuildEmployeeCostChart(rows []models.EmployeeCost, sum float64, p models.CostParams) *BarChart {
	c := &BarChart{
		Title:      "Employee Cost Per Day",
		Subtitle:   employeeSubtitle(p),
		XLabel:     "State",
		YLabel:     "Cost ($)",
		Annotation: nationalNote(sum),
	}
	for _, r := range rows {
		c.Bars = append(c.Bars, moneyBar(r.State, r.TotDailyEmployeeCost))
	}
	return c
}

// BuildEmployeeCostTable tabulates the daily employee cost with a TOTAL row.
func BuildEmployeeCostTable(rows []models.EmployeeCost, sum float64, p models.CostParams) *Table {
	t := &Table{
		Title:    "Employee Cost Per Day",
		Subtitle: employeeSubtitle(p),
		Columns:  []string{"State", "Employee Cost Per Day"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.State, FormatNullMoney(r.TotDailyEmployeeCost)})
	}
	t.Rows = append(t.Rows, []string{TotalLabel, FormatMoney(sum)})
	return t
}

// BuildGuestFeeChart charts the daily guest fee with the national sum.
func BuildGuestFeeChart(rows []models.GuestFee, sum float64, p models.CostParams) *BarChart {
	c := &BarChart{
		Title:      "Guest Fee Per Day",
		Subtitle:   guestSubtitle(p),
		XLabel:     "State",
		YLabel:     "Cost ($)",
		Annotation: nationalNote(sum),
	}
	for _, r := range rows {
		c.Bars = append(c.Bars, moneyBar(r.State, r.GuestFee))
	}
	return c
}

// BuildGuestFeeTable tabulates the daily guest fee with a TOTAL row.
func BuildGuestFeeTable(rows []models.GuestFee, sum float64, p models.CostParams) *Table {
	t := &Table{
		Title:    "Guest Fee Per Day",
		Subtitle: guestSubtitle(p),
		Columns:  []string{"State", "Guest Fee Per Day"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.State, FormatNullMoney(r.GuestFee)})
	}
	t.Rows = append(t.Rows, []string{TotalLabel, FormatMoney(sum)})
	return t
}

func totalSubtitle(p models.CostParams) string {
	return fmt.Sprintf("%s - Nightly Rate = %s (%s%% of National Avg)",
		employeeSubtitle(p), FormatMoney(p.NightlyFee()), formatPercent(p.PercentOfAvgNightlyFee))
}

// BuildTotalCostChart charts the combined daily cost with the national sum.
func BuildTotalCostChart(rows []models.TotalCost, sums services.CostSums, p models.CostParams) *BarChart {
	c := &BarChart{
		Title:      "Total Daily Cost",
		Subtitle:   totalSubtitle(p),
		XLabel:     "State",
		YLabel:     "Cost ($)",
		Annotation: nationalNote(sums.Total),
	}
	for _, r := range rows {
		c.Bars = append(c.Bars, moneyBar(r.State, r.Total))
	}
	return c
}

// BuildTotalCostTable tabulates both components and the total, with a TOTAL row.
func BuildTotalCostTable(rows []models.TotalCost, sums services.CostSums, p models.CostParams) *Table {
	t := &Table{
		Title:    "Total Daily Cost",
		Subtitle: totalSubtitle(p),
		Columns:  []string{"State", "Employee Cost Per Day", "Guest Fee Per Day", "Total Daily Cost"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.State,
			FormatNullMoney(r.TotDailyEmployeeCost),
			FormatNullMoney(r.GuestFee),
			FormatNullMoney(r.Total),
		})
	}
	t.Rows = append(t.Rows, []string{TotalLabel, FormatMoney(sums.Employee), FormatMoney(sums.Guest), FormatMoney(sums.Total)})
	return t
}

// DurationLabels names each projection column after the date it ends on,
// e.g. "1 Night (Oct 15)" and "15 Nights (Oct 29)" for today = Oct 14.
func DurationLabels(today time.Time) []string {
	labels := make([]string, len(models.Durations))
	for i, days := range models.Durations {
		unit := "Nights"
		if days == 1 {
			unit = "Night"
		}
		labels[i] = fmt.Sprintf("%d %s (%s)", days, unit, today.AddDate(0, 0, days).Format("Jan 02"))
	}
	return labels
}

// BuildDurationalTable tabulates the projections with a TOTAL row.
func BuildDurationalTable(rows []models.DurationalCost, sums []float64, today time.Time) *Table {
	t := &Table{
		Title:    "Total Durational Costs",
		Subtitle: "Today: " + today.Format("Jan 02, 2006"),
		Columns:  append([]string{"State"}, DurationLabels(today)...),
	}
	for _, r := range rows {
		row := []string{r.State}
		for _, c := range r.Costs {
			row = append(row, FormatNullMoney(c))
		}
		t.Rows = append(t.Rows, row)
	}
	total := []string{TotalLabel}
	for _, s := range sums {
		total = append(total, FormatMoney(s))
	}
	t.Rows = append(t.Rows, total)
	return t
}
