package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_DefaultsOutsideProd(t *testing.T) {
	t.Setenv("SHOWSCHED_ENV", "test")

	cfg, err := Load("")

	assert.NoError(t, err)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "https://sheets.googleapis.com/v4", cfg.Sheets.BaseURL)
	assert.Equal(t, "Form Responses 1!A2:I", cfg.Sheets.SignupRange)
	assert.Equal(t, "Schedule!A1:E", cfg.Sheets.ScheduleRange)
	assert.Equal(t, "Schedule (backup)", cfg.Sheets.BackupTitle)
	assert.Equal(t, "friday", cfg.Window.AnchorWeekday)
	assert.Equal(t, 52, cfg.Window.HorizonWeeks)
	assert.Equal(t, filepath.Join("out", "dossiers"), cfg.Output.DossierDir)
}

func TestLoad_EnvOverridesNestedKeys(t *testing.T) {
	t.Setenv("SHOWSCHED_ENV", "test")
	t.Setenv("SHOWSCHED_SHEETS__SIGNUP_SPREADSHEET_ID", "sig-123")
	t.Setenv("SHOWSCHED_WINDOW__ANCHOR_WEEKDAY", "sunday")

	cfg, err := Load("")

	assert.NoError(t, err)
	assert.Equal(t, "sig-123", cfg.Sheets.SignupSpreadsheetID)
	anchor, err := cfg.Window.Anchor()
	assert.NoError(t, err)
	assert.Equal(t, time.Sunday, anchor)
}

func TestLoad_YAMLFile(t *testing.T) {
	t.Setenv("SHOWSCHED_ENV", "test")
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "window:\n  anchor_weekday: monday\n  horizon_weeks: 8\noutput:\n  dir: reports\n"
	assert.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)

	assert.NoError(t, err)
	assert.Equal(t, "monday", cfg.Window.AnchorWeekday)
	assert.Equal(t, 8, cfg.Window.HorizonWeeks)
	assert.Equal(t, "reports", cfg.Output.Dir)
	assert.Equal(t, filepath.Join("reports", "dossiers"), cfg.Output.DossierDir)
}

func TestLoad_MissingFileTolerated(t *testing.T) {
	t.Setenv("SHOWSCHED_ENV", "test")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.NoError(t, err)
}

func TestValidate_ProdRequiresCredentials(t *testing.T) {
	t.Setenv("SHOWSCHED_ENV", "prod")

	_, err := Load("")

	assert.ErrorContains(t, err, "access_token")
}

func TestValidate_BadAnchorWeekday(t *testing.T) {
	t.Setenv("SHOWSCHED_ENV", "test")
	t.Setenv("SHOWSCHED_WINDOW__ANCHOR_WEEKDAY", "someday")

	_, err := Load("")

	assert.ErrorContains(t, err, "unknown anchor weekday")
}
