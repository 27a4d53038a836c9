package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"

	"show-scheduler/config"
	"show-scheduler/di"
	"show-scheduler/logger"
)

const defaultConfigPath = "config.yaml"

func main() {
	// .env is optional; deployments can set the environment directly.
	_ = godotenv.Load()

	log := logger.New("main")

	cfg, err := config.Load(defaultConfigPath)
	if err != nil {
		log.Error().Err(err).Msg("config load failed")
		os.Exit(1)
	}

	container := di.NewContainer(cfg)

	if err := container.SchedulerService.Run(context.Background(), time.Now()); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
	log.Info().Msg("run finished")
}
