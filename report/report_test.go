package report

import (
	"database/sql"
	"io"

	"shelter-cost/models"
	"shelter-cost/services"
	"shelter-cost/utils"
)

func quietLogger() *utils.Logger { return utils.NewLoggerTo(io.Discard) }

func sampleEstimator() *services.Estimator {
	ds := &models.Dataset{Records: []models.StateRecord{
		{
			State:                 "Texas",
			NumAvailRooms:         1000,
			TotHomelessPopulation: sql.NullInt64{Int64: 400, Valid: true},
			MinimumWage:           sql.NullFloat64{Float64: 10.00, Valid: true},
		},
		{
			State:                 "Ohio",
			NumAvailRooms:         300,
			TotHomelessPopulation: sql.NullInt64{Int64: 90, Valid: true},
		},
		{
			State:                 "Guam",
			NumAvailRooms:         0,
			TotHomelessPopulation: sql.NullInt64{Int64: 10, Valid: true},
			MinimumWage:           sql.NullFloat64{Float64: 8.25, Valid: true},
		},
	}}
	return services.NewEstimatorFromDataset(ds, models.DefaultCostParams(), quietLogger())
}
