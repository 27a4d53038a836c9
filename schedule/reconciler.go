package schedule

import (
	"sort"
	"time"

	"show-scheduler/models"
)

// ScheduleHeader is the canonical column set of the published sheet.
var ScheduleHeader = []string{"Name", "Date", "Showtime", "Dept", "Hosts"}

const (
	schedColName = iota
	schedColDate
	schedColShowtime
	schedColDept
	schedColHosts
)

var slotDateLayouts = []string{
	models.DateFormat,
	"1/2/2006",
	"1/2/06",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseScheduledRows converts published sheet rows (header included) into
// slots. A row whose date cell is empty or unparseable keeps a zero Date and
// counts as unconfirmed.
func ParseScheduledRows(rows [][]string) []models.ScheduledSlot {
	slots := make([]models.ScheduledSlot, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		slot := models.ScheduledSlot{
			Name:     cell(row, schedColName),
			Showtime: cell(row, schedColShowtime),
			Dept:     cell(row, schedColDept),
			Hosts:    cell(row, schedColHosts),
		}
		if raw := cell(row, schedColDate); raw != "" {
			slot.Date = parseSlotDate(raw)
		}
		if slot == (models.ScheduledSlot{}) {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

func parseSlotDate(raw string) time.Time {
	for _, layout := range slotDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return dateOnly(parsed)
		}
	}
	return time.Time{}
}

// Reconcile merges the published scheduled table with the signup set:
// unconfirmed (dateless) rows are dropped, an empty Dept is carried over from
// the signup guest with the exact same Name, rows are sorted by date
// ascending, and the result is projected onto ScheduleHeader with canonical
// date formatting.
//
// changed reports whether the canonical table differs by value from what is
// currently published; it gates the backup+republish side effect so an
// identical table never churns the remote sheet.
func Reconcile(published [][]string, signups []models.Guest) (slots []models.ScheduledSlot, canonical [][]string, changed bool) {
	deptByName := map[string]string{}
	for _, guest := range signups {
		if guest.Department != "" {
			deptByName[guest.Name] = guest.Department
		}
	}

	for _, slot := range ParseScheduledRows(published) {
		if !slot.HasDate() {
			continue
		}
		if slot.Dept == "" && slot.Name != "" {
			if dept, ok := deptByName[slot.Name]; ok {
				slot.Dept = dept
			}
		}
		slots = append(slots, slot)
	}
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Date.Before(slots[j].Date) })

	canonical = make([][]string, 0, len(slots)+1)
	canonical = append(canonical, append([]string(nil), ScheduleHeader...))
	for _, slot := range slots {
		canonical = append(canonical, []string{slot.Name, slot.DateString(), slot.Showtime, slot.Dept, slot.Hosts})
	}

	changed = !tablesEqual(canonical, projectTable(published))
	return slots, canonical, changed
}

// projectTable trims every cell and pads rows to the canonical width so the
// comparison sees the same shape the republish would write.
func projectTable(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		projected := make([]string, len(ScheduleHeader))
		for i := range projected {
			projected[i] = cell(row, i)
		}
		out = append(out, projected)
	}
	return out
}

func tablesEqual(a, b [][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
