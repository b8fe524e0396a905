package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const pageStyle = `
body { font-family: Helvetica, Arial, sans-serif; margin: 24px; background: #fff; }
h1 { font-size: 22px; text-align: center; margin: 0; }
h2 { font-size: 15px; font-weight: normal; text-align: center; margin: 6px 0 18px; }
table { border-collapse: collapse; width: 100%; font-size: 14px; }
th { background: #40466e; color: #fff; font-weight: bold; padding: 8px; }
td { padding: 6px 8px; text-align: right; }
td:first-child { text-align: left; }
tr:nth-child(odd) td { background: #f1f1f2; }
tr.total td { font-weight: bold; }
.note { fill: #ffcccc; stroke: #ff8080; }
`

var tableTmpl = template.Must(template.New("table").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>{{.Title}}</title><style>{{.Style}}</style></head>
<body>
<h1>{{.Title}}</h1>
{{if .Subtitle}}<h2>{{.Subtitle}}</h2>{{end}}
<table>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr{{if .Total}} class="total"{{end}}>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body></html>
`))

var chartTmpl = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>{{.Title}}</title><style>{{.Style}}</style></head>
<body>
<h1>{{.Title}}</h1>
{{if .Subtitle}}<h2>{{.Subtitle}}</h2>{{end}}
<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
<line x1="{{.Left}}" y1="{{.Top}}" x2="{{.Left}}" y2="{{.Bottom}}" stroke="#333"/>
<line x1="{{.Left}}" y1="{{.Bottom}}" x2="{{.Right}}" y2="{{.Bottom}}" stroke="#333"/>
<text x="16" y="{{.MidY}}" transform="rotate(-90 16 {{.MidY}})" text-anchor="middle" font-size="13">{{.YLabel}}</text>
<text x="{{.MidX}}" y="{{.XLabelY}}" text-anchor="middle" font-size="13">{{.XLabel}}</text>
{{range .Bars}}<g class="bar" data-state="{{.Label}}" data-value="{{.Display}}">
{{if not .Missing}}<rect x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}" fill="#1f77b4"><title>{{.Label}}: {{.Display}}</title></rect>{{end}}
<text x="{{.LabelX}}" y="{{.LabelY}}" transform="rotate(-90 {{.LabelX}} {{.LabelY}})" text-anchor="end" font-size="11">{{.Label}}</text>
</g>
{{end}}{{if .Annotation}}<rect class="note" x="{{.NoteX}}" y="{{.Top}}" rx="8" width="380" height="36"/>
<text x="{{.NoteTextX}}" y="{{.NoteTextY}}" text-anchor="middle" font-size="15">{{.Annotation}}</text>
{{end}}</svg>
</body></html>
`))

type tableRow struct {
	Cells []string
	Total bool
}

type tableView struct {
	*Table
	Style template.CSS
	Rows  []tableRow
}

// RenderTableHTML writes t as a standalone HTML document.
func RenderTableHTML(w io.Writer, t *Table) error {
	view := tableView{Table: t, Style: template.CSS(pageStyle)}
	for _, r := range t.Rows {
		view.Rows = append(view.Rows, tableRow{Cells: r, Total: len(r) > 0 && r[0] == TotalLabel})
	}
	return tableTmpl.Execute(w, view)
}

type svgBar struct {
	Bar
	X, Y, W, H     float64
	LabelX, LabelY float64
}

type chartView struct {
	*BarChart
	Style                       template.CSS
	Width, Height               float64
	Left, Right, Top, Bottom    float64
	MidX, MidY, XLabelY         float64
	NoteX, NoteTextX, NoteTextY float64
	Bars                        []svgBar
}

const (
	chartSlot   = 26.0
	chartPlotH  = 420.0
	chartLeft   = 70.0
	chartTop    = 20.0
	chartLabels = 170.0
)

func layoutChart(c *BarChart) chartView {
	v := chartView{BarChart: c, Style: template.CSS(pageStyle)}
	v.Left = chartLeft
	v.Top = chartTop
	v.Bottom = chartTop + chartPlotH
	v.Right = chartLeft + chartSlot*float64(len(c.Bars)) + 10
	if v.Right < chartLeft+420 {
		v.Right = chartLeft + 420
	}
	v.Width = v.Right + 20
	v.Height = v.Bottom + chartLabels + 30
	v.MidX = (v.Left + v.Right) / 2
	v.MidY = (v.Top + v.Bottom) / 2
	v.XLabelY = v.Height - 10
	v.NoteX = v.Right - 400
	v.NoteTextX = v.NoteX + 190
	v.NoteTextY = v.Top + 23

	max := c.MaxValue()
	if max <= 0 {
		max = 1
	}
	for i, b := range c.Bars {
		sb := svgBar{Bar: b, W: chartSlot * 0.7}
		sb.X = chartLeft + 5 + chartSlot*float64(i)
		if !b.Missing {
			sb.H = b.Value / max * (chartPlotH - 40)
			if sb.H < 0 {
				sb.H = 0
			}
		}
		sb.Y = v.Bottom - sb.H
		sb.LabelX = sb.X + sb.W/2 + 4
		sb.LabelY = v.Bottom + 8
		v.Bars = append(v.Bars, sb)
	}
	return v
}

// RenderChartHTML writes c as a standalone HTML document with an inline SVG chart.
func RenderChartHTML(w io.Writer, c *BarChart) error {
	return chartTmpl.Execute(w, layoutChart(c))
}

// HTMLSink writes each artifact as <dir>/<name>.html.
type HTMLSink struct {
	dir string
}

// NewHTMLSink creates dir if needed.
func NewHTMLSink(dir string) (*HTMLSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("report: create output dir: %w", err)
	}
	return &HTMLSink{dir: dir}, nil
}

// Path returns where the artifact called name is written.
func (s *HTMLSink) Path(name string) string {
	return filepath.Join(s.dir, name+".html")
}

func (s *HTMLSink) Table(name string, t *Table) error {
	return s.write(name, func(w io.Writer) error { return RenderTableHTML(w, t) })
}

func (s *HTMLSink) BarChart(name string, c *BarChart) error {
	return s.write(name, func(w io.Writer) error { return RenderChartHTML(w, c) })
}

func (s *HTMLSink) write(name string, render func(io.Writer) error) error {
	var b strings.Builder
	if err := render(&b); err != nil {
		return fmt.Errorf("report: render %s: %w", name, err)
	}
	if err := os.WriteFile(s.Path(name), []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("report: write %s: %w", name, err)
	}
	return nil
}
