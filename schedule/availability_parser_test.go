package schedule

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// window anchored on Sunday 2026-03-01, one year out.
func testWindow() []time.Time {
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	return DateWindow(now, time.Sunday, 52)
}

func TestParseAvailability_SkipsBadTokens(t *testing.T) {
	parser := NewAvailabilityParser(testWindow(), zerolog.Nop())

	dates := parser.ParseAvailability("Ada", "3/1, 3/8, not-a-date, 3/15")

	want := []time.Time{
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	if len(dates) != len(want) {
		t.Fatalf("expected %d dates, got %d (%v)", len(want), len(dates), dates)
	}
	for i := range want {
		if !dates[i].Equal(want[i]) {
			t.Errorf("dates[%d] = %s; want %s", i, dates[i], want[i])
		}
	}
}

func TestParseAvailability_ExplicitYearLayouts(t *testing.T) {
	parser := NewAvailabilityParser(testWindow(), zerolog.Nop())

	dates := parser.ParseAvailability("Ada", "3/8/2026; 2026-03-15 and March 22, 2026")

	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %d (%v)", len(dates), dates)
	}
}

func TestParseAvailability_OffWindowDayIgnored(t *testing.T) {
	parser := NewAvailabilityParser(testWindow(), zerolog.Nop())

	// 2026-03-10 is a Tuesday: a real date but never a candidate slot.
	dates := parser.ParseAvailability("Ada", "3/10, 3/8")

	if len(dates) != 1 {
		t.Fatalf("expected 1 date, got %d (%v)", len(dates), dates)
	}
	if !dates[0].Equal(time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("dates[0] = %s; want 2026-03-08", dates[0])
	}
}

func TestParseAvailability_EmptyInput(t *testing.T) {
	parser := NewAvailabilityParser(testWindow(), zerolog.Nop())

	if got := parser.ParseAvailability("Ada", ""); len(got) != 0 {
		t.Errorf("expected empty set, got %v", got)
	}
	if got := parser.ParseAvailability("Ada", "whenever works!"); len(got) != 0 {
		t.Errorf("expected empty set, got %v", got)
	}
}

func TestParseAvailability_Deduplicates(t *testing.T) {
	parser := NewAvailabilityParser(testWindow(), zerolog.Nop())

	dates := parser.ParseAvailability("Ada", "3/8, 3/8/2026, March 8, 2026")

	if len(dates) != 1 {
		t.Fatalf("expected 1 date, got %d (%v)", len(dates), dates)
	}
}

func TestParsePreference(t *testing.T) {
	parser := NewAvailabilityParser(testWindow(), zerolog.Nop())

	date, ok := parser.ParsePreference("Ada", "3/15")
	if !ok {
		t.Fatal("expected a preference")
	}
	if !date.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %s; want 2026-03-15", date)
	}

	if _, ok := parser.ParsePreference("Ada", ""); ok {
		t.Error("expected no preference for empty input")
	}
	if _, ok := parser.ParsePreference("Ada", "no preference"); ok {
		t.Error("expected no preference for unparseable input")
	}
}
