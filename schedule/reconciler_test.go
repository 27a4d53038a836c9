package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"show-scheduler/models"
)

func testSignups() []models.Guest {
	return []models.Guest{
		{Name: "A. Lee", Department: "Physics"},
		{Name: "Grace Hopper", Department: "CS"},
	}
}

func TestReconcile_FillsDeptSortsAndDropsDateless(t *testing.T) {
	published := [][]string{
		{"Name", "Date", "Showtime", "Dept", "Hosts"},
		{"Grace Hopper", "2026-03-15", "5pm", "CS", "J+K"},
		{"A. Lee", "2026-03-08", "5pm", "", "J+K"},
		{"Maybe Someday", "", "", "", ""},
	}

	slots, canonical, changed := Reconcile(published, testSignups())

	assert.True(t, changed)
	assert.Len(t, slots, 2)

	// sorted ascending by date, dateless row dropped
	assert.Equal(t, "A. Lee", slots[0].Name)
	assert.Equal(t, "Grace Hopper", slots[1].Name)

	// empty Dept carried over from the matching signup
	assert.Equal(t, "Physics", slots[0].Dept)

	want := [][]string{
		{"Name", "Date", "Showtime", "Dept", "Hosts"},
		{"A. Lee", "2026-03-08", "5pm", "Physics", "J+K"},
		{"Grace Hopper", "2026-03-15", "5pm", "CS", "J+K"},
	}
	assert.Equal(t, want, canonical)
}

func TestReconcile_IdempotentOnCanonicalTable(t *testing.T) {
	published := [][]string{
		{"Name", "Date", "Showtime", "Dept", "Hosts"},
		{"Grace Hopper", "2026-03-15", "5pm", "CS", "J+K"},
		{"A. Lee", "3/8/2026", "5pm", "", "J+K"},
	}

	_, canonical, changed := Reconcile(published, testSignups())
	assert.True(t, changed, "first pass normalizes formatting and dept")

	_, canonical2, changed2 := Reconcile(canonical, testSignups())
	assert.False(t, changed2, "second pass must see no difference")
	assert.Equal(t, canonical, canonical2)
}

func TestReconcile_DateFormatNormalized(t *testing.T) {
	published := [][]string{
		{"Name", "Date", "Showtime", "Dept", "Hosts"},
		{"Grace Hopper", "3/15/2026", "5pm", "CS", "J+K"},
	}

	_, canonical, changed := Reconcile(published, nil)

	assert.True(t, changed)
	assert.Equal(t, "2026-03-15", canonical[1][1])
}

func TestReconcile_UnknownGuestKeepsEmptyDept(t *testing.T) {
	published := [][]string{
		{"Name", "Date", "Showtime", "Dept", "Hosts"},
		{"Walk-In Guest", "2026-03-15", "5pm", "", "J+K"},
	}

	slots, _, _ := Reconcile(published, testSignups())

	assert.Len(t, slots, 1)
	assert.Equal(t, "", slots[0].Dept)
}

func TestParseScheduledRows_UnparseableDateIsUnconfirmed(t *testing.T) {
	rows := [][]string{
		{"Name", "Date", "Showtime", "Dept", "Hosts"},
		{"Grace Hopper", "sometime in spring", "5pm", "CS", "J+K"},
	}

	slots := ParseScheduledRows(rows)

	assert.Len(t, slots, 1)
	assert.False(t, slots[0].HasDate())
}
