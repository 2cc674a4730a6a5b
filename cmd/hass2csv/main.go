package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jkaflik/hass2csv/internal/cli"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)

	if err := cli.Run(ctx, os.Stdout, os.Args); err != nil {
		log.Err(err).Msg("Conversion failed")
		cancel()
		os.Exit(1)
	}

	cancel()
}
