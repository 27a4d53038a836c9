package sheets

import (
	"context"
	"fmt"
	"net/url"

	"show-scheduler/api"
)

// SheetsApiClient talks to the Sheets v4 REST surface through the shared
// HTTPClient. Credentials ride on the underlying *http.Client (oauth2).
type SheetsApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewSheetsApiClient creates a new instance of SheetsApiClient
func NewSheetsApiClient(httpClient *api.HTTPClient) *SheetsApiClient {
	return &SheetsApiClient{
		HTTPClient: httpClient,
	}
}

type valueRange struct {
	Range  string     `json:"range,omitempty"`
	Values [][]string `json:"values"`
}

type sheetProperties struct {
	SheetID int64  `json:"sheetId"`
	Title   string `json:"title"`
}

type spreadsheetMeta struct {
	Sheets []struct {
		Properties sheetProperties `json:"properties"`
	} `json:"sheets"`
}

type batchUpdateRequest struct {
	Requests []map[string]interface{} `json:"requests"`
}

// GetValues reads a cell range. Formatted cell values come back as strings.
func (c *SheetsApiClient) GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	var response valueRange
	endpoint := fmt.Sprintf("/spreadsheets/%s/values/%s", spreadsheetID, url.PathEscape(readRange))
	if err := c.Request(ctx, "GET", endpoint, nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Values, nil
}

// UpdateValues overwrites a cell range with RAW input (no re-interpretation
// by the spreadsheet service).
func (c *SheetsApiClient) UpdateValues(ctx context.Context, spreadsheetID, writeRange string, values [][]string) error {
	endpoint := fmt.Sprintf("/spreadsheets/%s/values/%s", spreadsheetID, url.PathEscape(writeRange))
	params := url.Values{}
	params.Set("valueInputOption", "RAW")
	return c.Request(ctx, "PUT", endpoint, params, valueRange{Values: values}, nil)
}

// ClearValues empties a cell range so a shrunken table leaves no stale rows.
func (c *SheetsApiClient) ClearValues(ctx context.Context, spreadsheetID, clearRange string) error {
	endpoint := fmt.Sprintf("/spreadsheets/%s/values/%s:clear", spreadsheetID, url.PathEscape(clearRange))
	return c.Request(ctx, "POST", endpoint, nil, struct{}{}, nil)
}

// BackupSheet duplicates the source sheet under backupTitle, deleting any
// prior sheet with that title first, so exactly one backup generation exists.
func (c *SheetsApiClient) BackupSheet(ctx context.Context, spreadsheetID string, sourceSheetID int64, backupTitle string) error {
	meta, err := c.getMetadata(ctx, spreadsheetID)
	if err != nil {
		return err
	}

	requests := make([]map[string]interface{}, 0, 2)
	for _, sheet := range meta.Sheets {
		if sheet.Properties.Title == backupTitle {
			requests = append(requests, map[string]interface{}{
				"deleteSheet": map[string]interface{}{"sheetId": sheet.Properties.SheetID},
			})
			break
		}
	}
	requests = append(requests, map[string]interface{}{
		"duplicateSheet": map[string]interface{}{
			"sourceSheetId": sourceSheetID,
			"newSheetName":  backupTitle,
		},
	})

	endpoint := fmt.Sprintf("/spreadsheets/%s:batchUpdate", spreadsheetID)
	return c.Request(ctx, "POST", endpoint, nil, batchUpdateRequest{Requests: requests}, nil)
}

func (c *SheetsApiClient) getMetadata(ctx context.Context, spreadsheetID string) (*spreadsheetMeta, error) {
	var response spreadsheetMeta
	params := url.Values{}
	params.Set("fields", "sheets.properties")
	endpoint := fmt.Sprintf("/spreadsheets/%s", spreadsheetID)
	if err := c.Request(ctx, "GET", endpoint, params, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
