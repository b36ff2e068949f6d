package schedule

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/osse101/etwmath/internal/domain"
	"github.com/osse101/etwmath/internal/formula"
)

// MaxRows bounds a single table
const MaxRows = 100000

// Output formats
const (
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// Row is one level of an upgrade track
type Row struct {
	Level           int     `csv:"level" yaml:"level"`
	LevelCost       float64 `csv:"level_cost" yaml:"level_cost"`
	TotalInvestment float64 `csv:"total_investment" yaml:"total_investment"`
	RangeFromStart  float64 `csv:"range_from_start" yaml:"range_from_start"`
}

// Build returns one row per level in [from, to] for a track.
// RangeFromStart is the cost of going from `from` to the row's level.
func Build(track domain.Track, from, to int) ([]Row, error) {
	if from < 1 || to < from {
		return nil, fmt.Errorf("%w: level range %d..%d", domain.ErrInvalidInput, from, to)
	}
	if to-from+1 > MaxRows {
		return nil, fmt.Errorf("%w: %d rows exceeds the limit of %d", domain.ErrInvalidInput, to-from+1, MaxRows)
	}

	rows := make([]Row, 0, to-from+1)
	for level := from; level <= to; level++ {
		l := float64(level)

		cost, err := formula.LevelCost(track, l)
		if err != nil {
			return nil, fmt.Errorf("level %d cost: %w", level, err)
		}
		total, err := formula.TotalInvestment(track, l)
		if err != nil {
			return nil, fmt.Errorf("level %d investment: %w", level, err)
		}
		spent, err := formula.RangeCost(track, float64(from), l)
		if err != nil {
			return nil, fmt.Errorf("level %d range: %w", level, err)
		}

		rows = append(rows, Row{
			Level:           level,
			LevelCost:       cost,
			TotalInvestment: total,
			RangeFromStart:  spent,
		})
	}
	return rows, nil
}

// Write renders rows in the named format
func Write(w io.Writer, rows []Row, format string) error {
	switch strings.ToLower(format) {
	case FormatCSV:
		return WriteCSV(w, rows)
	case FormatYAML:
		return WriteYAML(w, rows)
	default:
		return fmt.Errorf("%w: unknown table format %q", domain.ErrInvalidInput, format)
	}
}

// WriteCSV writes rows with a header line
func WriteCSV(w io.Writer, rows []Row) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// WriteYAML writes rows as a YAML sequence
func WriteYAML(w io.Writer, rows []Row) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("writing yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("writing yaml: %w", err)
	}
	return nil
}
