package report

import (
	"database/sql"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1760, "$1,760.00"},
		{14409.6, "$14,409.60"},
		{0, "$0.00"},
		{72.048, "$72.05"},
		{1234567.891, "$1,234,567.89"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNullable(t *testing.T) {
	if got := FormatNullMoney(sql.NullFloat64{}); got != Missing {
		t.Errorf("null money: got %q, want %q", got, Missing)
	}
	if got := FormatCount(sql.NullInt64{Int64: 12345, Valid: true}); got != "12,345" {
		t.Errorf("count: got %q, want 12,345", got)
	}
	if got := FormatCount(sql.NullInt64{}); got != Missing {
		t.Errorf("null count: got %q, want %q", got, Missing)
	}
}
