package sheets

import (
	"context"
	"fmt"
)

// SheetsApiClientMock is an in-memory SheetsAPI used outside prod and in
// tests. Mutating calls are recorded in order so tests can assert that the
// backup happens before the overwrite, or that neither happened at all.
type SheetsApiClientMock struct {
	values  map[string][][]string
	Backups map[string]int
	Calls   []string
}

// NewSheetsApiClientMock creates a new instance of SheetsApiClientMock
func NewSheetsApiClientMock() *SheetsApiClientMock {
	return &SheetsApiClientMock{
		values:  map[string][][]string{},
		Backups: map[string]int{},
	}
}

func mockKey(spreadsheetID, cellRange string) string {
	return spreadsheetID + "|" + cellRange
}

// Seed installs values for a (spreadsheet, range) pair.
func (m *SheetsApiClientMock) Seed(spreadsheetID, cellRange string, values [][]string) {
	m.values[mockKey(spreadsheetID, cellRange)] = cloneTable(values)
}

func (m *SheetsApiClientMock) GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	values, ok := m.values[mockKey(spreadsheetID, readRange)]
	if !ok {
		return nil, fmt.Errorf("no values seeded for %s %s", spreadsheetID, readRange)
	}
	return cloneTable(values), nil
}

func (m *SheetsApiClientMock) UpdateValues(ctx context.Context, spreadsheetID, writeRange string, values [][]string) error {
	m.Calls = append(m.Calls, "update:"+writeRange)
	m.values[mockKey(spreadsheetID, writeRange)] = cloneTable(values)
	return nil
}

func (m *SheetsApiClientMock) ClearValues(ctx context.Context, spreadsheetID, clearRange string) error {
	m.Calls = append(m.Calls, "clear:"+clearRange)
	m.values[mockKey(spreadsheetID, clearRange)] = nil
	return nil
}

func (m *SheetsApiClientMock) BackupSheet(ctx context.Context, spreadsheetID string, sourceSheetID int64, backupTitle string) error {
	m.Calls = append(m.Calls, "backup:"+backupTitle)
	m.Backups[backupTitle]++
	return nil
}

func cloneTable(values [][]string) [][]string {
	if values == nil {
		return nil
	}
	out := make([][]string, len(values))
	for i, row := range values {
		out[i] = append([]string(nil), row...)
	}
	return out
}
