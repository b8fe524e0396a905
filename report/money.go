package report

import (
	"database/sql"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Missing is shown for null cells.
const Missing = "N/A"

var printer = message.NewPrinter(language.English)

// FormatMoney renders v as dollars with thousands separators, e.g. $1,760.00.
func FormatMoney(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// FormatNullMoney is FormatMoney for nullable amounts.
func FormatNullMoney(v sql.NullFloat64) string {
	if !v.Valid {
		return Missing
	}
	return FormatMoney(v.Float64)
}

// FormatCount renders a whole number with thousands separators.
func FormatCount(v sql.NullInt64) string {
	if !v.Valid {
		return Missing
	}
	return printer.Sprintf("%d", v.Int64)
}

// formatPercent renders a fraction as a percentage with one decimal, e.g. 0.1 -> "10.0".
func formatPercent(f float64) string {
	return strconv.FormatFloat(100*f, 'f', 1, 64)
}
