package services

import (
	"database/sql"
	"math"

	"shelter-cost/models"
)

// EstimateOccupancy computes, per state, the fraction of available rooms
// needed to shelter the homeless population:
//
//	percent_comp = (tot_homeless_population / people_per_room) / num_avail_rooms
//
// The value is null when the state has no population row. With zero
// available rooms it is +Inf (NaN if the population is also zero); see
// models.Occupancy.Undefined.
func EstimateOccupancy(ds *models.Dataset, p models.CostParams) []models.Occupancy {
	out := make([]models.Occupancy, 0, ds.Len())
	for _, rec := range ds.Records {
		o := models.Occupancy{State: rec.State}
		if rec.TotHomelessPopulation.Valid {
			rooms := float64(rec.NumAvailRooms)
			people := float64(rec.TotHomelessPopulation.Int64) / float64(p.PeoplePerRoom)
			o.PercentComp = sql.NullFloat64{Float64: people / rooms, Valid: true}
		}
		out = append(out, o)
	}
	return out
}

// ReserveRooms converts occupancy into a whole number of rooms per state:
// round(percent_comp × num_avail_rooms). The result is not capped at the
// available rooms. States with a null or undefined fraction get a null count.
func ReserveRooms(ds *models.Dataset, p models.CostParams) []models.ReservedRooms {
	return reserveFrom(ds, EstimateOccupancy(ds, p))
}

func reserveFrom(ds *models.Dataset, occupancy []models.Occupancy) []models.ReservedRooms {
	out := make([]models.ReservedRooms, 0, len(occupancy))
	for i, o := range occupancy {
		r := models.ReservedRooms{State: o.State}
		if o.PercentComp.Valid && !o.Undefined() {
			n := roundRooms(o.PercentComp.Float64 * float64(ds.Records[i].NumAvailRooms))
			if n >= 0 && n < math.MaxInt64 {
				r.NumReservedRooms = sql.NullInt64{Int64: int64(n), Valid: true}
			}
		}
		out = append(out, r)
	}
	return out
}
