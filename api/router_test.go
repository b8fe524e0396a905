package api

import (
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"shelter-cost/models"
	"shelter-cost/services"
	"shelter-cost/utils"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
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
	logger := utils.NewLoggerTo(io.Discard)
	est := services.NewEstimatorFromDataset(ds, models.DefaultCostParams(), logger)
	return NewRouter(est, logger)
}

func get(t *testing.T, r *gin.Engine, path string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("%s: decode body: %v\n%s", path, err, w.Body.String())
		}
	}
	return w.Code
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter()

	var body struct {
		Status string `json:"status"`
		States int    `json:"states"`
	}
	if code := get(t, r, "/health", &body); code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if body.Status != "ok" || body.States != 3 {
		t.Errorf("body: got %+v", body)
	}
}

func TestEveryRouteResponds(t *testing.T) {
	r := newTestRouter()
	paths := []string{
		"/occupancy", "/reserved-rooms", "/employee-cost", "/guest-fee",
		"/total-cost", "/durational-cost", "/states/Texas/daily-cost",
	}
	for _, p := range paths {
		if code := get(t, r, p, nil); code != http.StatusOK {
			t.Errorf("%s: got status %d, want 200", p, code)
		}
	}
}

func TestOccupancyEncodesUndefinedAsNull(t *testing.T) {
	r := newTestRouter()

	var body struct {
		Rows []occupancyRow `json:"rows"`
	}
	if code := get(t, r, "/occupancy", &body); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if len(body.Rows) != 3 {
		t.Fatalf("rows: got %d, want 3", len(body.Rows))
	}
	if body.Rows[0].PercentComp == nil || *body.Rows[0].PercentComp != 0.2 {
		t.Errorf("Texas percent_comp: got %v", body.Rows[0].PercentComp)
	}
	guam := body.Rows[2]
	if guam.PercentComp != nil || !guam.Undefined {
		t.Errorf("Guam: got %+v, want null and undefined", guam)
	}
}

func TestEmployeeCostNulls(t *testing.T) {
	r := newTestRouter()

	var body struct {
		Rows          []employeeCostRow `json:"rows"`
		NationalTotal float64           `json:"national_total"`
	}
	get(t, r, "/employee-cost", &body)

	tx := body.Rows[0]
	if tx.NumEmployeesNeeded == nil || *tx.NumEmployeesNeeded != 20 {
		t.Errorf("Texas employees: got %v, want 20", tx.NumEmployeesNeeded)
	}
	if tx.TotDailyEmployeeCost == nil || *tx.TotDailyEmployeeCost != 1760 {
		t.Errorf("Texas cost: got %v, want 1760", tx.TotDailyEmployeeCost)
	}
	if body.Rows[1].FinalHrlyWage != nil || body.Rows[1].TotDailyEmployeeCost != nil {
		t.Errorf("Ohio has no wage row; got %+v", body.Rows[1])
	}
	if body.NationalTotal != 1760 {
		t.Errorf("national_total: got %v, want 1760", body.NationalTotal)
	}
}

func TestDurationalCostKeys(t *testing.T) {
	r := newTestRouter()

	var body struct {
		Durations []int               `json:"durations"`
		Rows      []durationalCostRow `json:"rows"`
	}
	get(t, r, "/durational-cost", &body)

	if len(body.Durations) != 5 {
		t.Fatalf("durations: got %v", body.Durations)
	}
	tx := body.Rows[0].Costs
	if tx["1"] == nil || tx["60"] == nil {
		t.Fatalf("Texas costs: got %v", tx)
	}
	if got := *tx["60"]; got < 970175.99 || got > 970176.01 {
		t.Errorf("Texas 60 nights: got %v, want 970176", got)
	}
	if body.Rows[1].Costs["15"] != nil {
		t.Errorf("Ohio total is null, projections should be too")
	}
}

func TestDailyCostForState(t *testing.T) {
	r := newTestRouter()

	var row employeeCostRow
	if code := get(t, r, "/states/tExAs/daily-cost", &row); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if row.State != "Texas" || row.TotDailyEmployeeCost == nil || *row.TotDailyEmployeeCost != 1760 {
		t.Errorf("row: got %+v", row)
	}

	if code := get(t, r, "/states/Atlantis/daily-cost", nil); code != http.StatusNotFound {
		t.Errorf("unknown state: got %d, want 404", code)
	}
}
