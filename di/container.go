package di

import (
	"context"

	"golang.org/x/oauth2"

	"show-scheduler/api"
	"show-scheduler/api/sheets"
	"show-scheduler/config"
	"show-scheduler/dossier"
	"show-scheduler/export"
	"show-scheduler/logger"
	"show-scheduler/service"
)

// Container holds all application dependencies.
type Container struct {
	Config           *config.Config
	SheetsAPI        sheets.SheetsAPI
	CSVExporter      *export.CSVExporter
	Plotter          *export.Plotter
	DossierGenerator *dossier.Generator
	SchedulerService *service.SchedulerService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) *Container {
	log := logger.New("di")
	log.Info().Str("env", cfg.Env).Msg("initializing container")

	var sheetsAPI sheets.SheetsAPI
	if cfg.Env != "prod" {
		log.Info().Msg("using in-memory sheets client")
		sheetsAPI = sheets.NewSheetsApiClientMock()
	} else {
		tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Sheets.AccessToken})
		authClient := oauth2.NewClient(context.Background(), tokenSource)
		sheetsAPI = sheets.NewSheetsApiClient(api.NewHTTPClient(cfg.Sheets.BaseURL, authClient))
	}

	csvExporter := export.NewCSVExporter(cfg.Output.Dir)
	plotter := export.NewPlotter(cfg.Output.Dir)
	dossierGenerator := dossier.NewGenerator(cfg.Output.DossierDir, logger.New("dossier"))

	schedulerService := service.NewSchedulerService(
		cfg,
		sheetsAPI,
		csvExporter,
		plotter,
		dossierGenerator,
		logger.New("scheduler"),
	)

	return &Container{
		Config:           cfg,
		SheetsAPI:        sheetsAPI,
		CSVExporter:      csvExporter,
		Plotter:          plotter,
		DossierGenerator: dossierGenerator,
		SchedulerService: schedulerService,
	}
}
