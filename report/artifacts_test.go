package report

import (
	"reflect"
	"testing"
	"time"
)

var today = time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)

func TestDurationLabels(t *testing.T) {
	want := []string{
		"1 Night (Oct 15)",
		"15 Nights (Oct 29)",
		"30 Nights (Nov 13)",
		"45 Nights (Nov 28)",
		"60 Nights (Dec 13)",
	}
	if got := DurationLabels(today); !reflect.DeepEqual(got, want) {
		t.Errorf("DurationLabels: got %v, want %v", got, want)
	}
}

func TestEmployeeCostTable(t *testing.T) {
	est := sampleEstimator()
	rows, sum := est.EmployeeCosts()
	tbl := BuildEmployeeCostTable(rows, sum, est.Params())

	if tbl.Subtitle != "1 employees per 10 rooms - 10.0% Minimum Wage Inflation" {
		t.Errorf("Subtitle: got %q", tbl.Subtitle)
	}
	if len(tbl.Rows) != 4 {
		t.Fatalf("rows: got %d, want 3 states + TOTAL", len(tbl.Rows))
	}
	if !reflect.DeepEqual(tbl.Rows[0], []string{"Texas", "$1,760.00"}) {
		t.Errorf("Texas row: got %v", tbl.Rows[0])
	}
	if tbl.Rows[1][1] != Missing {
		t.Errorf("Ohio has no wage; got %q", tbl.Rows[1][1])
	}
	if !reflect.DeepEqual(tbl.Rows[3], []string{TotalLabel, "$1,760.00"}) {
		t.Errorf("TOTAL row: got %v", tbl.Rows[3])
	}
}

func TestGuestFeeChart(t *testing.T) {
	est := sampleEstimator()
	rows, sum := est.GuestFees()
	c := BuildGuestFeeChart(rows, sum, est.Params())

	if c.Subtitle != "Nightly Rate = $72.05 (Avg National Nightly Rate = $180.12)" {
		t.Errorf("Subtitle: got %q", c.Subtitle)
	}
	if c.Bars[0].Display != "$14,409.60" {
		t.Errorf("Texas bar: got %q", c.Bars[0].Display)
	}
	if !c.Bars[2].Missing {
		t.Error("Guam bar should be missing")
	}
	if c.Annotation != "Total National Daily Cost = "+FormatMoney(sum) {
		t.Errorf("Annotation: got %q", c.Annotation)
	}
}

func TestOccupancyChartSkipsUndefined(t *testing.T) {
	est := sampleEstimator()
	c := BuildOccupancyChart(est.Occupancy(), est.Params())

	if c.Bars[0].Value != 0.2 || c.Bars[0].Display != "0.2000" {
		t.Errorf("Texas bar: got %+v", c.Bars[0])
	}
	if !c.Bars[2].Missing || c.Bars[2].Display != Missing {
		t.Errorf("Guam bar should be missing, got %+v", c.Bars[2])
	}
	if c.MaxValue() != 0.2 {
		t.Errorf("MaxValue ignores missing bars: got %v", c.MaxValue())
	}
}

func TestTotalAndDurationalTables(t *testing.T) {
	est := sampleEstimator()
	totals, sums := est.TotalCosts()
	tbl := BuildTotalCostTable(totals, sums, est.Params())

	if len(tbl.Columns) != 4 || tbl.Columns[3] != "Total Daily Cost" {
		t.Errorf("Columns: got %v", tbl.Columns)
	}
	if tbl.Rows[0][3] != "$16,169.60" {
		t.Errorf("Texas total: got %q", tbl.Rows[0][3])
	}

	durational, dsums := est.DurationalCosts()
	dt := BuildDurationalTable(durational, dsums, today)
	if dt.Subtitle != "Today: Oct 14, 2026" {
		t.Errorf("Subtitle: got %q", dt.Subtitle)
	}
	if dt.Columns[2] != "15 Nights (Oct 29)" {
		t.Errorf("Columns: got %v", dt.Columns)
	}
	if dt.Rows[0][5] != "$970,176.00" {
		t.Errorf("Texas 60 nights: got %q", dt.Rows[0][5])
	}
	last := dt.Rows[len(dt.Rows)-1]
	if last[0] != TotalLabel || len(last) != 6 {
		t.Errorf("TOTAL row: got %v", last)
	}
}
