package report

import "errors"

// Sink receives rendered artifacts under their fixed names.
// Implementations must be safe for concurrent use.
type Sink interface {
	Table(name string, t *Table) error
	BarChart(name string, c *BarChart) error
}

// MultiSink fans every artifact out to each of its sinks.
type MultiSink []Sink

func (m MultiSink) Table(name string, t *Table) error {
	var errs []error
	for _, s := range m {
		if err := s.Table(name, t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m MultiSink) BarChart(name string, c *BarChart) error {
	var errs []error
	for _, s := range m {
		if err := s.BarChart(name, c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
