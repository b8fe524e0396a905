package report

import (
	"fmt"
	"path/filepath"

	"shelter-cost/storage"
)

// CSVSink writes each artifact's data as <dir>/<name>.csv.
type CSVSink struct {
	dir  string
	open func(path string, header []string) (storage.RowWriter, error)
}

// NewCSVSink writes into dir, creating it on first use.
func NewCSVSink(dir string) *CSVSink {
	return &CSVSink{
		dir: dir,
		open: func(path string, header []string) (storage.RowWriter, error) {
			w, err := storage.NewCSVWriter(path, header)
			if err != nil {
				return nil, err
			}
			return w, nil
		},
	}
}

func (s *CSVSink) Table(name string, t *Table) error {
	return s.write(name, t.Columns, t.Rows)
}

func (s *CSVSink) BarChart(name string, c *BarChart) error {
	rows := make([][]string, 0, len(c.Bars))
	for _, b := range c.Bars {
		rows = append(rows, []string{b.Label, b.Display})
	}
	return s.write(name, []string{c.XLabel, c.YLabel}, rows)
}

func (s *CSVSink) write(name string, header []string, rows [][]string) error {
	w, err := s.open(filepath.Join(s.dir, name+".csv"), header)
	if err != nil {
		return fmt.Errorf("report: %s: %w", name, err)
	}
	if err := w.WriteRows(rows); err != nil {
		_ = w.Close()
		return fmt.Errorf("report: %s: %w", name, err)
	}
	return w.Close()
}
