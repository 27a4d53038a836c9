package schedule

import (
	"time"

	"github.com/rs/zerolog"

	"show-scheduler/models"
)

// Grid is the per guest × per candidate-date reconciliation of every
// availability signal. Cells keep all signals so renderers can layer them;
// the single-label view is derived per cell, never stored.
type Grid struct {
	Dates  []time.Time
	Guests []string

	cells  map[cellKey]models.CellSignals
	booked map[string]bool
}

type cellKey struct {
	guest string
	date  time.Time
}

// BuildGrid computes the three signals for every (guest, date) pair.
// Scheduled derives only from the slot table, never from self-report. A
// preference for a date the guest did not also mark available is dropped
// (and logged) rather than rendered. Slots dated outside the window are
// ignored here but stay on the canonical table for export and backup.
func BuildGrid(
	window []time.Time,
	guests []models.Guest,
	availability map[string][]time.Time,
	preference map[string]time.Time,
	slots []models.ScheduledSlot,
	log zerolog.Logger,
) *Grid {
	dates := make([]time.Time, 0, len(window))
	inWindow := make(map[time.Time]bool, len(window))
	for _, d := range window {
		d = dateOnly(d)
		dates = append(dates, d)
		inWindow[d] = true
	}

	booked := map[string]bool{}
	scheduledOn := map[cellKey]bool{}
	for _, slot := range slots {
		if slot.Name == "" {
			continue
		}
		booked[slot.Name] = true
		if !slot.HasDate() {
			continue
		}
		date := dateOnly(slot.Date)
		if !inWindow[date] {
			continue
		}
		scheduledOn[cellKey{guest: slot.Name, date: date}] = true
	}

	names := make([]string, 0, len(guests))
	cells := make(map[cellKey]models.CellSignals, len(guests)*len(dates))
	for _, guest := range guests {
		names = append(names, guest.Name)

		available := map[time.Time]bool{}
		for _, d := range availability[guest.Name] {
			available[dateOnly(d)] = true
		}
		preferred, hasPreferred := preference[guest.Name]
		if hasPreferred {
			preferred = dateOnly(preferred)
		}

		for _, date := range dates {
			key := cellKey{guest: guest.Name, date: date}
			signals := models.CellSignals{
				Available: available[date],
				Scheduled: scheduledOn[key],
			}
			if hasPreferred && preferred.Equal(date) {
				if signals.Available {
					signals.Preferred = true
				} else {
					log.Warn().Str("guest", guest.Name).Str("date", date.Format(models.DateFormat)).
						Msg("preference without matching availability, ignoring")
				}
			}
			cells[key] = signals
		}
	}

	return &Grid{Dates: dates, Guests: names, cells: cells, booked: booked}
}

// Signals returns the layered per-cell record.
func (g *Grid) Signals(guest string, date time.Time) models.CellSignals {
	return g.cells[cellKey{guest: guest, date: dateOnly(date)}]
}

// Label returns the single rendered status for a cell.
func (g *Grid) Label(guest string, date time.Time) models.Status {
	return g.Signals(guest, date).Label()
}

// IsScheduled reports whether the guest holds any non-empty slot on the
// scheduled table, regardless of date.
func (g *Grid) IsScheduled(guest string) bool {
	return g.booked[guest]
}

// Unscheduled lists guests with no slot of their own, in row order. These are
// the rows guest-facing visualizations show; a booked guest's slot is already
// fixed.
func (g *Grid) Unscheduled() []string {
	out := make([]string, 0, len(g.Guests))
	for _, guest := range g.Guests {
		if !g.booked[guest] {
			out = append(out, guest)
		}
	}
	return out
}

// Prune drops candidate dates not strictly after today. Scheduled history
// survives on the canonical table, not in the live grid.
func (g *Grid) Prune(today time.Time) {
	cutoff := dateOnly(today)
	kept := make([]time.Time, 0, len(g.Dates))
	for _, date := range g.Dates {
		if date.After(cutoff) {
			kept = append(kept, date)
			continue
		}
		for _, guest := range g.Guests {
			delete(g.cells, cellKey{guest: guest, date: date})
		}
	}
	g.Dates = kept
}
