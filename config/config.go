package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SheetsConfig locates the two source spreadsheets and the backup target.
type SheetsConfig struct {
	BaseURL               string `koanf:"base_url"`
	AccessToken           string `koanf:"access_token"`
	SignupSpreadsheetID   string `koanf:"signup_spreadsheet_id"`
	SignupRange           string `koanf:"signup_range"`
	ScheduleSpreadsheetID string `koanf:"schedule_spreadsheet_id"`
	ScheduleSheetID       int64  `koanf:"schedule_sheet_id"`
	ScheduleRange         string `koanf:"schedule_range"`
	BackupTitle           string `koanf:"backup_title"`
}

// WindowConfig shapes the candidate date window: weekly slots on the anchor
// weekday across the horizon.
type WindowConfig struct {
	AnchorWeekday string `koanf:"anchor_weekday"`
	HorizonWeeks  int    `koanf:"horizon_weeks"`
}

type OutputConfig struct {
	Dir        string `koanf:"dir"`
	DossierDir string `koanf:"dossier_dir"`
}

type Config struct {
	Env    string       `koanf:"env"`
	Sheets SheetsConfig `koanf:"sheets"`
	Window WindowConfig `koanf:"window"`
	Output OutputConfig `koanf:"output"`
}

// Load reads the optional YAML config file, then applies SHOWSCHED_
// environment overrides (SHOWSCHED_SHEETS__ACCESS_TOKEN -> sheets.access_token).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config file: %w", err)
			}
		}
	}
	if err := k.Load(env.Provider("SHOWSCHED_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "showsched_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) SetDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}
	if c.Sheets.BaseURL == "" {
		c.Sheets.BaseURL = "https://sheets.googleapis.com/v4"
	}
	if c.Sheets.SignupRange == "" {
		c.Sheets.SignupRange = "Form Responses 1!A2:I"
	}
	if c.Sheets.ScheduleRange == "" {
		c.Sheets.ScheduleRange = "Schedule!A1:E"
	}
	if c.Sheets.BackupTitle == "" {
		c.Sheets.BackupTitle = "Schedule (backup)"
	}
	if c.Window.AnchorWeekday == "" {
		c.Window.AnchorWeekday = "friday"
	}
	if c.Window.HorizonWeeks == 0 {
		c.Window.HorizonWeeks = 52
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "out"
	}
	if c.Output.DossierDir == "" {
		c.Output.DossierDir = filepath.Join(c.Output.Dir, "dossiers")
	}
}

func (c *Config) Validate() error {
	if _, err := c.Window.Anchor(); err != nil {
		return err
	}
	if c.Window.HorizonWeeks <= 0 {
		return errors.New("window.horizon_weeks must be positive")
	}
	if c.Env == "prod" {
		if c.Sheets.AccessToken == "" {
			return errors.New("sheets.access_token is required")
		}
		if c.Sheets.SignupSpreadsheetID == "" || c.Sheets.ScheduleSpreadsheetID == "" {
			return errors.New("sheets spreadsheet ids are required")
		}
	}
	return nil
}

// Anchor resolves the configured weekday name.
func (w WindowConfig) Anchor() (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(w.AnchorWeekday)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return 0, fmt.Errorf("unknown anchor weekday: %q", w.AnchorWeekday)
}
