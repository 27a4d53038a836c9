package sheets

import "context"

// SheetsAPI defines the narrow spreadsheet surface the scheduler needs: read
// a cell range, republish a cell range, and back up the published sheet.
type SheetsAPI interface {
	GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
	UpdateValues(ctx context.Context, spreadsheetID, writeRange string, values [][]string) error
	ClearValues(ctx context.Context, spreadsheetID, clearRange string) error
	BackupSheet(ctx context.Context, spreadsheetID string, sourceSheetID int64, backupTitle string) error
}
