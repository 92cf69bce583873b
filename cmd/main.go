package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"tunetutor/internal/services"
	"tunetutor/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	configPath := "config.toml"
	if _, err := os.Stat(configPath); err == nil {
		if loadedConfig, err := shared.LoadConfig(configPath); err == nil {
			config = loadedConfig
		}
	}

	musicbrainz := services.NewMusicBrainzService(
		config.Lookup.MusicBrainzURL,
		config.Lookup.UserAgent,
		config.Lookup.PageSize,
		config.Lookup.RateLimit,
	)
	vagalume := services.NewVagalumeService(
		config.Lookup.VagalumeURL,
		config.Lookup.UserAgent,
		config.Lookup.RateLimit,
	)

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Discoverer: musicbrainz,
		Lookup:     vagalume,
		Logger:     logger,
	})
	defer runner.Close()

	app := &cli.Command{
		Name:     "tunetutor",
		Usage:    "Learn the art of the playlist from your terminal",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
