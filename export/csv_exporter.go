package export

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"show-scheduler/models"
	"show-scheduler/schedule"
)

const (
	scheduleCSVName = "schedule.csv"
	gridCSVName     = "availability_grid.csv"
)

// CSVExporter writes the tabular snapshots under a fixed output directory.
type CSVExporter struct {
	dir string
}

func NewCSVExporter(dir string) *CSVExporter {
	return &CSVExporter{dir: dir}
}

// WriteScheduleCSV snapshots the canonical scheduled table, history included.
func (e *CSVExporter) WriteScheduleCSV(canonical [][]string) error {
	return e.writeCSV(scheduleCSVName, canonical)
}

// WriteGridCSV flattens the grid: one row per candidate date, one column per
// guest, each cell the rendered status label.
func (e *CSVExporter) WriteGridCSV(grid *schedule.Grid) error {
	rows := make([][]string, 0, len(grid.Dates)+1)
	rows = append(rows, append([]string{"Date"}, grid.Guests...))
	for _, date := range grid.Dates {
		row := make([]string, 0, len(grid.Guests)+1)
		row = append(row, date.Format(models.DateFormat))
		for _, guest := range grid.Guests {
			row = append(row, grid.Label(guest, date).String())
		}
		rows = append(rows, row)
	}
	return e.writeCSV(gridCSVName, rows)
}

func (e *CSVExporter) writeCSV(name string, rows [][]string) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return err
	}
	file, err := os.Create(filepath.Join(e.dir, name))
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
