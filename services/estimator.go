package services

import (
	"fmt"
	"io"
	"strings"

	"shelter-cost/models"
	"shelter-cost/storage"
	"shelter-cost/utils"
)

// Estimator holds the joined dataset and the cost constants, and answers
// every pipeline query. The dataset is loaded once by NewEstimator and never
// modified, so an Estimator is safe for concurrent readers. Each query
// recomputes its stage chain from the dataset.
type Estimator struct {
	data   *models.Dataset
	params models.CostParams
	logger *utils.Logger
}

// NewEstimator validates params and loads the dataset from src. A load
// failure is returned unchanged so callers can match *models.DataLoadError.
func NewEstimator(src storage.DatasetSource, params models.CostParams, logger *utils.Logger) (*Estimator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	ds, err := src.Load()
	if err != nil {
		return nil, err
	}

	e := NewEstimatorFromDataset(ds, params, logger)
	e.reportGaps()
	return e, nil
}

// NewEstimatorFromDataset builds an Estimator over an already joined dataset.
func NewEstimatorFromDataset(ds *models.Dataset, params models.CostParams, logger *utils.Logger) *Estimator {
	if ds == nil {
		ds = &models.Dataset{}
	}
	if logger == nil {
		logger = utils.NewLoggerTo(io.Discard)
	}
	return &Estimator{data: ds, params: params, logger: logger}
}

// reportGaps logs states whose derived values will be null or undefined.
func (e *Estimator) reportGaps() {
	e.logger.Info("[estimator] Loaded %d states", e.data.Len())
	for i, o := range EstimateOccupancy(e.data, e.params) {
		rec := e.data.Records[i]
		switch {
		case !rec.TotHomelessPopulation.Valid:
			e.logger.Warn("[estimator] %s has no homeless population row; costs will be null", rec.State)
		case o.Undefined():
			e.logger.Warn("[estimator] %s has zero available rooms; occupancy is undefined (%v)", rec.State, o.PercentComp.Float64)
		}
		if !rec.MinimumWage.Valid {
			e.logger.Warn("[estimator] %s has no minimum wage row; employee cost will be null", rec.State)
		}
	}
}

// Params returns the constants the estimator was built with.
func (e *Estimator) Params() models.CostParams {
	return e.params
}

// States lists the state keys in dataset order.
func (e *Estimator) States() []string {
	out := make([]string, 0, e.data.Len())
	for _, rec := range e.data.Records {
		out = append(out, rec.State)
	}
	return out
}

// Occupancy returns percent_comp per state.
func (e *Estimator) Occupancy() []models.Occupancy {
	return EstimateOccupancy(e.data, e.params)
}

// ReservedRooms returns the reserved room count per state.
func (e *Estimator) ReservedRooms() []models.ReservedRooms {
	return ReserveRooms(e.data, e.params)
}

// EmployeeCosts returns the daily employee cost per state and the national sum.
func (e *Estimator) EmployeeCosts() ([]models.EmployeeCost, float64) {
	return EmployeeCosts(e.data, e.params)
}

// GuestFees returns the daily guest fee per state and the national sum.
func (e *Estimator) GuestFees() ([]models.GuestFee, float64) {
	return GuestFees(e.data, e.params)
}

// TotalCosts returns the combined daily cost per state and the column sums.
func (e *Estimator) TotalCosts() ([]models.TotalCost, CostSums) {
	return TotalCosts(e.data, e.params)
}

// DurationalCosts returns the projected totals per state and per-duration sums.
func (e *Estimator) DurationalCosts() ([]models.DurationalCost, []float64) {
	return DurationalCosts(e.data, e.params)
}

// DailyCostForState looks up one state's employee cost row. The name must
// match exactly apart from letter case. Unknown names yield a *models.StateNotFoundError.
func (e *Estimator) DailyCostForState(state string) (models.EmployeeCost, error) {
	rows, _ := e.EmployeeCosts()
	for _, r := range rows {
		if strings.EqualFold(r.State, state) {
			return r, nil
		}
	}
	return models.EmployeeCost{}, fmt.Errorf("estimator: daily cost: %w", &models.StateNotFoundError{State: state})
}
