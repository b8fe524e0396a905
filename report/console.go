package report

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"
)

const barWidth = 40

// ConsoleSink prints artifacts to a terminal.
type ConsoleSink struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

// NewConsoleSink prints to w; color enables ANSI styling.
func NewConsoleSink(w io.Writer, color bool) *ConsoleSink {
	return &ConsoleSink{w: w, color: color}
}

func (s *ConsoleSink) style(code, text string) string {
	if !s.color {
		return text
	}
	return "\033[" + code + "m" + text + "\033[0m"
}

func (s *ConsoleSink) header(title, subtitle string) {
	sep := strings.Repeat("═", 72)
	fmt.Fprintf(s.w, "\n%s\n", s.style("1;35", sep))
	fmt.Fprintf(s.w, "  %s\n", s.style("1;35", title))
	if subtitle != "" {
		fmt.Fprintf(s.w, "  %s\n", subtitle)
	}
	fmt.Fprintf(s.w, "%s\n\n", s.style("1;35", sep))
}

func (s *ConsoleSink) Table(name string, t *Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.header(t.Title, t.Subtitle)

	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = utf8.RuneCountInString(c)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && utf8.RuneCountInString(cell) > widths[i] {
				widths[i] = utf8.RuneCountInString(cell)
			}
		}
	}

	fmt.Fprintf(s.w, "  %s\n", s.style("1;33", formatRow(t.Columns, widths)))
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	fmt.Fprintf(s.w, "  %s\n", strings.Repeat("─", total))
	for _, row := range t.Rows {
		line := formatRow(row, widths)
		if len(row) > 0 && row[0] == TotalLabel {
			line = s.style("1", line)
		}
		fmt.Fprintf(s.w, "  %s\n", line)
	}
	fmt.Fprintln(s.w)
	return nil
}

// formatRow left-aligns the first column and right-aligns the rest.
func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		pad := 0
		if i < len(widths) {
			pad = widths[i] - utf8.RuneCountInString(c)
		}
		if pad < 0 {
			pad = 0
		}
		if i == 0 {
			parts[i] = c + strings.Repeat(" ", pad)
		} else {
			parts[i] = strings.Repeat(" ", pad) + c
		}
	}
	return strings.Join(parts, "  ")
}

func (s *ConsoleSink) BarChart(name string, c *BarChart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.header(c.Title, c.Subtitle)
	fmt.Fprintf(s.w, "  %s\n", s.style("1;33", c.YLabel))

	max := c.MaxValue()
	for _, b := range c.Bars {
		bar := ""
		if !b.Missing && max > 0 {
			bar = strings.Repeat("█", int(b.Value/max*barWidth+0.5))
		}
		fmt.Fprintf(s.w, "  %-24s %-*s %s\n", truncate(b.Label, 24), barWidth, bar, b.Display)
	}
	if c.Annotation != "" {
		fmt.Fprintf(s.w, "\n  %s\n", s.style("1;32", c.Annotation))
	}
	fmt.Fprintln(s.w)
	return nil
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}
