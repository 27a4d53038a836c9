package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"show-scheduler/api/sheets"
	"show-scheduler/config"
	"show-scheduler/dossier"
	"show-scheduler/export"
	"show-scheduler/schedule"
)

// SchedulerService runs one end-to-end scheduling pass: pull both sheets,
// reconcile the scheduled table, back it up and republish it when it changed,
// then emit the CSV snapshots, charts and dossiers.
//
// Operating assumption: at most one run executes at a time. The remote sheet
// is protected only by the copy-then-overwrite backup discipline, not by a
// lock.
type SchedulerService struct {
	cfg       *config.Config
	sheetsAPI sheets.SheetsAPI
	exporter  *export.CSVExporter
	plotter   *export.Plotter
	dossiers  *dossier.Generator
	log       zerolog.Logger
}

// NewSchedulerService constructs the orchestrator with its collaborators.
func NewSchedulerService(
	cfg *config.Config,
	sheetsAPI sheets.SheetsAPI,
	exporter *export.CSVExporter,
	plotter *export.Plotter,
	dossiers *dossier.Generator,
	log zerolog.Logger,
) *SchedulerService {
	return &SchedulerService{
		cfg:       cfg,
		sheetsAPI: sheetsAPI,
		exporter:  exporter,
		plotter:   plotter,
		dossiers:  dossiers,
		log:       log,
	}
}

// Run executes the batch. now is explicit so the candidate window and the
// pruning cutoff are replayable.
func (s *SchedulerService) Run(ctx context.Context, now time.Time) error {
	log := s.log.With().Str("run_id", uuid.NewString()).Logger()

	// Both sources must be readable before anything is written; a partial
	// view of the world produces untrustworthy reports.
	signupRows, err := s.sheetsAPI.GetValues(ctx, s.cfg.Sheets.SignupSpreadsheetID, s.cfg.Sheets.SignupRange)
	if err != nil {
		return fmt.Errorf("fetch signups: %w", err)
	}
	scheduleRows, err := s.sheetsAPI.GetValues(ctx, s.cfg.Sheets.ScheduleSpreadsheetID, s.cfg.Sheets.ScheduleRange)
	if err != nil {
		return fmt.Errorf("fetch schedule: %w", err)
	}

	guests := schedule.ParseSignups(signupRows)
	log.Info().Int("guests", len(guests)).Int("schedule_rows", len(scheduleRows)).Msg("sources fetched")

	slots, canonical, changed := schedule.Reconcile(scheduleRows, guests)
	if changed {
		if err := s.republish(ctx, canonical, log); err != nil {
			return err
		}
	} else {
		log.Info().Msg("schedule unchanged, skipping backup and republish")
	}

	anchor, err := s.cfg.Window.Anchor()
	if err != nil {
		return err
	}
	window := schedule.DateWindow(now, anchor, s.cfg.Window.HorizonWeeks)

	parser := schedule.NewAvailabilityParser(window, log)
	availability := make(map[string][]time.Time, len(guests))
	preference := make(map[string]time.Time)
	for _, guest := range guests {
		availability[guest.Name] = parser.ParseAvailability(guest.Name, guest.RawAvailability)
		if date, ok := parser.ParsePreference(guest.Name, guest.RawPreference); ok {
			preference[guest.Name] = date
		}
	}

	grid := schedule.BuildGrid(window, guests, availability, preference, slots, log)
	grid.Prune(now)

	if err := s.exporter.WriteScheduleCSV(canonical); err != nil {
		return fmt.Errorf("schedule csv: %w", err)
	}
	if err := s.exporter.WriteGridCSV(grid); err != nil {
		return fmt.Errorf("grid csv: %w", err)
	}
	if err := s.plotter.PlotAvailability(grid); err != nil {
		return fmt.Errorf("availability chart: %w", err)
	}
	if err := s.plotter.PlotInteractive(grid); err != nil {
		return fmt.Errorf("interactive chart: %w", err)
	}
	if err := s.dossiers.Generate(guests, availability); err != nil {
		return fmt.Errorf("dossiers: %w", err)
	}

	log.Info().Bool("schedule_changed", changed).Int("slots", len(slots)).
		Int("unscheduled", len(grid.Unscheduled())).Msg("run completed")
	return nil
}

// republish takes the backup copy first so the prior state stays recoverable
// if the overwrite is interrupted.
func (s *SchedulerService) republish(ctx context.Context, canonical [][]string, log zerolog.Logger) error {
	log.Info().Msg("schedule changed, backing up published sheet")
	if err := s.sheetsAPI.BackupSheet(ctx, s.cfg.Sheets.ScheduleSpreadsheetID, s.cfg.Sheets.ScheduleSheetID, s.cfg.Sheets.BackupTitle); err != nil {
		return fmt.Errorf("backup schedule sheet: %w", err)
	}
	if err := s.sheetsAPI.ClearValues(ctx, s.cfg.Sheets.ScheduleSpreadsheetID, s.cfg.Sheets.ScheduleRange); err != nil {
		return fmt.Errorf("clear schedule sheet: %w", err)
	}
	if err := s.sheetsAPI.UpdateValues(ctx, s.cfg.Sheets.ScheduleSpreadsheetID, s.cfg.Sheets.ScheduleRange, canonical); err != nil {
		return fmt.Errorf("republish schedule sheet: %w", err)
	}
	log.Info().Int("rows", len(canonical)).Msg("schedule republished")
	return nil
}
