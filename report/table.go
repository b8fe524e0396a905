package report

// TotalLabel is the state cell of the national sum row.
const TotalLabel = "TOTAL"

// Table is a rendered, fully formatted table. The national TOTAL row, when
// present, is the last row.
type Table struct {
	Title    string
	Subtitle string
	Columns  []string
	Rows     [][]string
}

// Bar is one bar of a BarChart. Missing bars have no plottable value.
type Bar struct {
	Label   string
	Value   float64
	Display string
	Missing bool
}

// BarChart is a per-state bar chart with an optional boxed annotation.
type BarChart struct {
	Title      string
	Subtitle   string
	XLabel     string
	YLabel     string
	Annotation string
	Bars       []Bar
}

// MaxValue returns the largest non-missing bar value, or 0.
func (c *BarChart) MaxValue() float64 {
	var max float64
	for _, b := range c.Bars {
		if !b.Missing && b.Value > max {
			max = b.Value
		}
	}
	return max
}
