package models

import "time"

// DateFormat is the single canonical date rendering used on the published
// sheet and in every export, so table comparisons never mix formats.
const DateFormat = "2006-01-02"

// ScheduledSlot is one row of the scheduled-guests sheet. Name may be empty
// for a slot with no guest assigned yet; a zero Date marks a row that is not
// confirmed.
type ScheduledSlot struct {
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Showtime string    `json:"showtime"`
	Dept     string    `json:"dept"`
	Hosts    string    `json:"hosts"`
}

func (s ScheduledSlot) HasDate() bool { return !s.Date.IsZero() }

// DateString renders the slot date canonically, empty when unset.
func (s ScheduledSlot) DateString() string {
	if s.Date.IsZero() {
		return ""
	}
	return s.Date.Format(DateFormat)
}
