package report

import (
	"fmt"
	"time"

	"shelter-cost/models"
	"shelter-cost/services"
	"shelter-cost/utils"
)

// Artifact is one named visualization: either a table or a bar chart.
type Artifact struct {
	Name  string
	Table *Table
	Chart *BarChart
}

func (a Artifact) emit(s Sink) error {
	switch {
	case a.Table != nil:
		return s.Table(a.Name, a.Table)
	case a.Chart != nil:
		return s.BarChart(a.Name, a.Chart)
	}
	return fmt.Errorf("report: artifact %s has no content", a.Name)
}

// Reporter runs estimator queries and pushes the requested visualizations
// to a Sink. The numeric rows are always returned to the caller.
type Reporter struct {
	est     *services.Estimator
	sink    Sink
	logger  *utils.Logger
	workers int
}

// NewReporter renders through sink with up to workers artifacts in flight.
func NewReporter(est *services.Estimator, sink Sink, logger *utils.Logger, workers int) *Reporter {
	return &Reporter{est: est, sink: sink, logger: logger, workers: workers}
}

// Occupancy returns percent_comp per state, optionally charting it.
func (r *Reporter) Occupancy(bar bool) ([]models.Occupancy, error) {
	rows := r.est.Occupancy()
	var out []Artifact
	if bar {
		out = append(out, Artifact{Name: OccupancyChart, Chart: BuildOccupancyChart(rows, r.est.Params())})
	}
	return rows, r.Emit(out)
}

// ReservedRooms returns reserved rooms per state, optionally charting them.
func (r *Reporter) ReservedRooms(bar bool) ([]models.ReservedRooms, error) {
	rows := r.est.ReservedRooms()
	var out []Artifact
	if bar {
		out = append(out, Artifact{Name: ReservedRoomsChart, Chart: BuildReservedRoomsChart(rows)})
	}
	return rows, r.Emit(out)
}

// EmployeeCost returns the daily employee cost per state.
func (r *Reporter) EmployeeCost(table, bar bool) ([]models.EmployeeCost, error) {
	rows, sum := r.est.EmployeeCosts()
	p := r.est.Params()
	var out []Artifact
	if bar {
		out = append(out, Artifact{Name: EmployeeCostChart, Chart: BuildEmployeeCostChart(rows, sum, p)})
	}
	if table {
		out = append(out, Artifact{Name: EmployeeCostTable, Table: BuildEmployeeCostTable(rows, sum, p)})
	}
	return rows, r.Emit(out)
}

// GuestFee returns the daily guest fee per state.
func (r *Reporter) GuestFee(table, bar bool) ([]models.GuestFee, error) {
	rows, sum := r.est.GuestFees()
	p := r.est.Params()
	var out []Artifact
	if bar {
		out = append(out, Artifact{Name: GuestFeeChart, Chart: BuildGuestFeeChart(rows, sum, p)})
	}
	if table {
		out = append(out, Artifact{Name: GuestFeeTable, Table: BuildGuestFeeTable(rows, sum, p)})
	}
	return rows, r.Emit(out)
}

// TotalCost returns the combined daily cost per state.
func (r *Reporter) TotalCost(table, bar bool) ([]models.TotalCost, error) {
	rows, sums := r.est.TotalCosts()
	p := r.est.Params()
	var out []Artifact
	if bar {
		out = append(out, Artifact{Name: TotalCostChart, Chart: BuildTotalCostChart(rows, sums, p)})
	}
	if table {
		out = append(out, Artifact{Name: TotalCostTable, Table: BuildTotalCostTable(rows, sums, p)})
	}
	return rows, r.Emit(out)
}

// DurationalCost returns the projected totals, labelling columns from today.
func (r *Reporter) DurationalCost(table bool, today time.Time) ([]models.DurationalCost, error) {
	rows, sums := r.est.DurationalCosts()
	var out []Artifact
	if table {
		out = append(out, Artifact{Name: DurationalTable, Table: BuildDurationalTable(rows, sums, today)})
	}
	return rows, r.Emit(out)
}

// DailyCostForState formats one state's daily employee cost.
func (r *Reporter) DailyCostForState(state string) (string, error) {
	row, err := r.est.DailyCostForState(state)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Daily cost for the state of %s = %s", state, FormatNullMoney(row.TotDailyEmployeeCost)), nil
}

// Artifacts builds every stage visualization.
func (r *Reporter) Artifacts(today time.Time) []Artifact {
	p := r.est.Params()
	employee, employeeSum := r.est.EmployeeCosts()
	guest, guestSum := r.est.GuestFees()
	totals, sums := r.est.TotalCosts()
	durational, durationalSums := r.est.DurationalCosts()

	return []Artifact{
		{Name: OccupancyChart, Chart: BuildOccupancyChart(r.est.Occupancy(), p)},
		{Name: ReservedRoomsChart, Chart: BuildReservedRoomsChart(r.est.ReservedRooms())},
		{Name: EmployeeCostChart, Chart: BuildEmployeeCostChart(employee, employeeSum, p)},
		{Name: EmployeeCostTable, Table: BuildEmployeeCostTable(employee, employeeSum, p)},
		{Name: GuestFeeChart, Chart: BuildGuestFeeChart(guest, guestSum, p)},
		{Name: GuestFeeTable, Table: BuildGuestFeeTable(guest, guestSum, p)},
		{Name: TotalCostChart, Chart: BuildTotalCostChart(totals, sums, p)},
		{Name: TotalCostTable, Table: BuildTotalCostTable(totals, sums, p)},
		{Name: DurationalTable, Table: BuildDurationalTable(durational, durationalSums, today)},
	}
}

// RenderAll emits every stage visualization.
func (r *Reporter) RenderAll(today time.Time) error {
	return r.Emit(r.Artifacts(today))
}

// Emit sends artifacts to the sink on a worker pool. Duplicate names are rejected.
func (r *Reporter) Emit(artifacts []Artifact) error {
	if len(artifacts) == 0 {
		return nil
	}

	names := utils.NewNameSet()
	for _, a := range artifacts {
		if !names.Add(a.Name) {
			return fmt.Errorf("report: duplicate artifact name %q", a.Name)
		}
	}

	pool := utils.NewWorkerPool(r.workers)
	for _, a := range artifacts {
		a := a
		pool.Submit(func() error {
			if err := a.emit(r.sink); err != nil {
				r.logger.Error("[report] %s failed: %v", a.Name, err)
				return err
			}
			r.logger.Debug("[report] Rendered %s", a.Name)
			return nil
		})
	}
	err := pool.Wait()
	r.logger.Info("[report] Rendered %d/%d artifacts", names.Size()-countErrors(err), len(artifacts))
	return err
}

func countErrors(err error) int {
	if err == nil {
		return 0
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return len(joined.Unwrap())
	}
	return 1
}
