package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"show-scheduler/models"
	"show-scheduler/schedule"
)

const (
	availabilityChartName = "availability_heatmap.html"
	interactiveChartName  = "availability_interactive.html"
)

// Numeric codes driving the visual map palette. Zero (unavailable) cells are
// omitted so the background shows through.
const (
	codeAvailable = 1
	codePreferred = 2
	codeScheduled = 3
)

var statusPalette = []string{"#e8e8e8", "#91cc75", "#fac858", "#5470c6"}

// Plotter renders the availability grid as HTML heatmaps, one axis dates,
// the other guests, color = status.
type Plotter struct {
	dir string
}

func NewPlotter(dir string) *Plotter {
	return &Plotter{dir: dir}
}

// PlotAvailability renders the non-interactive planning chart: unscheduled
// guests only (their slot is still open), future dates only, one series per
// signal so overlapping signals stay visually layered.
func (p *Plotter) PlotAvailability(grid *schedule.Grid) error {
	guests := grid.Unscheduled()
	dates := dateLabels(grid)

	heatmap := charts.NewHeatMap()
	heatmap.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Guest Availability",
			Width:     "1400px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Guest availability by show date"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: dates}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: guests}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        codeScheduled,
			InRange:    &opts.VisualMapInRange{Color: statusPalette},
		}),
	)
	heatmap.SetXAxis(dates)

	available := make([]opts.HeatMapData, 0)
	preferred := make([]opts.HeatMapData, 0)
	scheduled := make([]opts.HeatMapData, 0)
	for y, guest := range guests {
		for x, date := range grid.Dates {
			signals := grid.Signals(guest, date)
			if signals.Available {
				available = append(available, heatCell(x, y, codeAvailable))
			}
			if signals.Preferred {
				preferred = append(preferred, heatCell(x, y, codePreferred))
			}
			if signals.Scheduled {
				scheduled = append(scheduled, heatCell(x, y, codeScheduled))
			}
		}
	}
	heatmap.AddSeries("Available", available)
	heatmap.AddSeries("Preferred", preferred)
	heatmap.AddSeries("Scheduled", scheduled)

	return p.render(heatmap, availabilityChartName)
}

// PlotInteractive renders the full grid with per-cell hover detail: guest,
// date, resolved status, and whether the guest is already booked elsewhere.
func (p *Plotter) PlotInteractive(grid *schedule.Grid) error {
	dates := dateLabels(grid)

	heatmap := charts.NewHeatMap()
	heatmap.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Guest Availability (interactive)",
			Width:     "1400px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Guest availability, hover for detail"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: dates}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: grid.Guests}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        codeScheduled,
			InRange:    &opts.VisualMapInRange{Color: statusPalette},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}",
		}),
	)
	heatmap.SetXAxis(dates)

	data := make([]opts.HeatMapData, 0, len(grid.Guests)*len(grid.Dates))
	for y, guest := range grid.Guests {
		for x, date := range grid.Dates {
			label := grid.Label(guest, date)
			detail := fmt.Sprintf("%s — %s: %s", guest, date.Format(models.DateFormat), label)
			if grid.IsScheduled(guest) {
				detail += " (guest already booked)"
			}
			data = append(data, opts.HeatMapData{
				Name:  detail,
				Value: [3]interface{}{x, y, int(label)},
			})
		}
	}
	heatmap.AddSeries("availability", data)

	return p.render(heatmap, interactiveChartName)
}

func heatCell(x, y, code int) opts.HeatMapData {
	return opts.HeatMapData{Value: [3]interface{}{x, y, code}}
}

func dateLabels(grid *schedule.Grid) []string {
	labels := make([]string, 0, len(grid.Dates))
	for _, date := range grid.Dates {
		labels = append(labels, date.Format(models.DateFormat))
	}
	return labels
}

func (p *Plotter) render(heatmap *charts.HeatMap, name string) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return err
	}
	file, err := os.Create(filepath.Join(p.dir, name))
	if err != nil {
		return err
	}
	defer file.Close()

	return heatmap.Render(file)
}
