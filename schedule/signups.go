package schedule

import (
	"fmt"
	"strings"
	"time"

	"show-scheduler/models"
)

// Signup sheet column order: Timestamp, Name, Email, Department/Program,
// Advisor, Degree, Availability, Preference, Description.
const (
	signupColTimestamp = iota
	signupColName
	signupColEmail
	signupColDepartment
	signupColAdvisor
	signupColDegree
	signupColAvailability
	signupColPreference
	signupColDescription
)

var signupTimestampLayouts = []string{
	"1/2/2006 15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseSignups converts raw signup rows into guests. Rows without a name are
// skipped. Duplicate display names get a positional suffix (".1", ".2", ...)
// so every guest keys a distinct grid row.
func ParseSignups(rows [][]string) []models.Guest {
	guests := make([]models.Guest, 0, len(rows))
	seen := map[string]int{}

	for _, row := range rows {
		name := cell(row, signupColName)
		if name == "" {
			continue
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n)
		} else {
			seen[name] = 1
		}

		guests = append(guests, models.Guest{
			Name:            name,
			Email:           cell(row, signupColEmail),
			Department:      cell(row, signupColDepartment),
			Advisor:         cell(row, signupColAdvisor),
			Degree:          cell(row, signupColDegree),
			Description:     cell(row, signupColDescription),
			RawAvailability: cell(row, signupColAvailability),
			RawPreference:   cell(row, signupColPreference),
			SignedUpAt:      parseTimestamp(cell(row, signupColTimestamp)),
		})
	}
	return guests
}

// parseTimestamp returns the zero time when the timestamp cell does not
// parse; the signup is still usable without it.
func parseTimestamp(raw string) time.Time {
	for _, layout := range signupTimestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
